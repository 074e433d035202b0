package gears

import (
	"math"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
)

// Hand-tuned manual gearbox ratios taken from stock FS25 configurations.
// Other gear counts fall back to a linear ramp.
var (
	manual6 = []float64{4.784, 2.423, 1.443, 1.000, 0.826, 0.643}
	manual7 = []float64{5.0, 2.8, 1.8, 1.2, 1.0, 0.8, 0.6}
)

// Calculate builds the forward and reverse ratio tables for a transmission.
// Forward ratios step down from a type-specific first gear; reverse ratios
// are derived from the first forward gear. Every ratio is rounded to
// 3 decimals.
func Calculate(t models.TransmissionSpec) (models.GearRatioTable, error) {
	if t.ForwardGears <= 0 {
		return models.GearRatioTable{}, &models.InvalidInputError{Field: "num_forward", Reason: "number of forward gears must be greater than 0"}
	}
	if t.ReverseGears < 0 {
		return models.GearRatioTable{}, &models.InvalidInputError{Field: "num_reverse", Reason: "number of reverse gears cannot be negative"}
	}
	if t.TopSpeed <= 0 {
		return models.GearRatioTable{}, &models.InvalidInputError{Field: "top_speed", Reason: "top speed must be greater than 0"}
	}
	if t.LowGearBoost < 0 {
		return models.GearRatioTable{}, &models.InvalidInputError{Field: "low_gear_boost", Reason: "low gear boost cannot be negative"}
	}

	// Lowest quarter of the gears (rounded down) gets the low gearing boost.
	boosted := 0
	if t.LowGearing {
		boosted = t.ForwardGears / 4
	}
	boostFactor := 1.0 + t.LowGearBoost/100.0

	table := models.GearRatioTable{
		Forward: make([]float64, t.ForwardGears),
		Reverse: make([]float64, t.ReverseGears),
	}

	for i := 0; i < t.ForwardGears; i++ {
		ratio := baseRatio(t.Type, i, t.ForwardGears)
		if i < boosted {
			ratio *= boostFactor
		}
		table.Forward[i] = round3(ratio)
	}

	for i := 0; i < t.ReverseGears; i++ {
		table.Reverse[i] = round3(table.Forward[0] * (1.2 + 0.3*float64(i)))
	}

	return table, nil
}

func baseRatio(typ models.TransmissionType, i, n int) float64 {
	if n == 1 {
		switch typ {
		case models.CVT:
			return 4.2
		case models.Automatic:
			return 4.5
		case models.PowerShift:
			return 4.8
		default:
			return 4.784
		}
	}

	step := float64(i) / float64(n-1)

	switch typ {
	case models.CVT:
		return 4.2 - 3.0*step
	case models.Automatic:
		return 4.5 - 3.2*step
	case models.PowerShift:
		return 4.8 - 3.5*step
	default: // Manual
		switch n {
		case 6:
			return manual6[i]
		case 7:
			return manual7[i]
		default:
			return 4.8 - 3.5*step
		}
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
