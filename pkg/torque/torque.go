package torque

import (
	"math"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
)

// Samples is the fixed number of RPM samples in a generated curve.
const Samples = 10

// Curve holds a generated torque curve before normalization. RPM and Torque
// run in parallel, lowest RPM first.
type Curve struct {
	MinRPM  float64
	MaxRPM  float64
	PeakRPM float64
	RPM     []float64
	Torque  []float64
}

// Generate builds a synthetic torque curve from the engine's rated power and
// RPM band. Peak torque sits at 65% of the band; turbocharged engines get a
// flatter curve with a softened threshold at 80% of the peak.
func Generate(hp, minRPM, maxRPM float64, turbocharged bool) (*Curve, error) {
	if hp <= 0 {
		return nil, &models.InvalidInputError{Field: "horsepower", Reason: "horsepower must be greater than 0"}
	}
	if minRPM < 0 {
		return nil, &models.InvalidInputError{Field: "min_rpm", Reason: "minimum RPM cannot be negative"}
	}
	if maxRPM <= minRPM {
		return nil, &models.InvalidInputError{Field: "max_rpm", Reason: "maximum RPM must be greater than minimum RPM"}
	}

	peakRPM := minRPM + (maxRPM-minRPM)*0.65
	if peakRPM <= 0 {
		return nil, &models.InvalidInputError{Field: "max_rpm", Reason: "peak RPM calculation resulted in zero or negative value"}
	}

	// Torque = (HP x 9549) / Peak RPM
	baseTorque := hp * 9549 / peakRPM

	c := &Curve{
		MinRPM:  minRPM,
		MaxRPM:  maxRPM,
		PeakRPM: peakRPM,
		RPM:     make([]float64, Samples),
		Torque:  make([]float64, Samples),
	}

	for i := 0; i < Samples; i++ {
		rpm := minRPM + (maxRPM-minRPM)*float64(i)/float64(Samples-1)
		c.RPM[i] = rpm
		c.Torque[i] = baseTorque * shapeFactor(rpm, peakRPM, maxRPM, turbocharged)
	}

	return c, nil
}

// FromSpec generates the curve for a validated engine spec
func FromSpec(e models.EngineSpec) (*Curve, error) {
	return Generate(e.Horsepower, e.MinRPM, e.MaxRPM, e.Turbocharged)
}

func shapeFactor(rpm, peakRPM, maxRPM float64, turbocharged bool) float64 {
	if turbocharged {
		knee := peakRPM * 0.8
		if rpm < knee {
			return math.Pow(rpm/knee, 0.7)
		}
		factor := 1.0 - math.Pow((rpm-knee)/(maxRPM-knee), 0.5)
		return math.Max(0.7, factor)
	}

	if rpm < peakRPM {
		return math.Pow(rpm/peakRPM, 0.8)
	}
	factor := 1.0 - math.Pow((rpm-peakRPM)/(maxRPM-peakRPM), 0.3)
	return math.Max(0.5, factor)
}

// PeakTorque returns the largest raw torque value in the curve
func (c *Curve) PeakTorque() float64 {
	peak := c.Torque[0]
	for _, t := range c.Torque[1:] {
		if t > peak {
			peak = t
		}
	}
	return peak
}

// Points normalizes the curve for XML emission: RPM by the engine's max RPM
// and torque by the curve's own peak, so both ranges top out at exactly 1.0.
func (c *Curve) Points() []models.TorquePoint {
	peak := c.PeakTorque()
	points := make([]models.TorquePoint, len(c.RPM))
	for i := range c.RPM {
		points[i] = models.TorquePoint{
			NormRPM:     c.RPM[i] / c.MaxRPM,
			TorqueScale: c.Torque[i] / peak,
		}
	}
	return points
}
