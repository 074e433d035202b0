package models

// TransmissionType identifies the gearbox family, which selects the base
// ratio progression in the gear calculator.
type TransmissionType string

const (
	Manual     TransmissionType = "Manual"
	Automatic  TransmissionType = "Automatic"
	CVT        TransmissionType = "CVT"
	PowerShift TransmissionType = "PowerShift"
)

// TransmissionTypes lists all valid types in menu order.
var TransmissionTypes = []TransmissionType{Manual, Automatic, CVT, PowerShift}

// ParseTransmissionType converts a string to a TransmissionType
func ParseTransmissionType(s string) (TransmissionType, bool) {
	for _, t := range TransmissionTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// EngineSpec holds the engine parameters entered by the user.
// A spec is constructed fresh for every generation request and never
// mutated afterwards.
type EngineSpec struct {
	Name           string  `json:"name"`
	Cost           int     `json:"cost"`
	Horsepower     float64 `json:"horsepower"`
	MinRPM         float64 `json:"min_rpm"`
	MaxRPM         float64 `json:"max_rpm"`
	FuelUsageScale float64 `json:"fuel_usage_scale"`
	Turbocharged   bool    `json:"turbocharged"`
}

// Validate checks the engine parameters before any generation runs
func (e EngineSpec) Validate() error {
	if e.Name == "" {
		return &InvalidInputError{Field: "name", Reason: "engine name cannot be empty"}
	}
	if e.Cost < 0 {
		return &InvalidInputError{Field: "cost", Reason: "engine cost cannot be negative"}
	}
	if e.Horsepower <= 0 {
		return &InvalidInputError{Field: "horsepower", Reason: "horsepower must be greater than 0"}
	}
	if e.MinRPM < 0 {
		return &InvalidInputError{Field: "min_rpm", Reason: "minimum RPM cannot be negative"}
	}
	if e.MaxRPM <= e.MinRPM {
		return &InvalidInputError{Field: "max_rpm", Reason: "maximum RPM must be greater than minimum RPM"}
	}
	if e.FuelUsageScale <= 0 {
		return &InvalidInputError{Field: "fuel_usage_scale", Reason: "fuel usage scale must be greater than 0"}
	}
	return nil
}

// TransmissionSpec holds the transmission parameters entered by the user.
type TransmissionSpec struct {
	Name         string           `json:"name"`
	Cost         int              `json:"cost"`
	Type         TransmissionType `json:"type"`
	TopSpeed     float64          `json:"top_speed"`
	ForwardGears int              `json:"num_forward"`
	ReverseGears int              `json:"num_reverse"`
	LowGearing   bool             `json:"enable_low_gearing"`
	LowGearBoost float64          `json:"low_gear_boost"`
}

// Validate checks the transmission parameters before any generation runs
func (t TransmissionSpec) Validate() error {
	if t.Name == "" {
		return &InvalidInputError{Field: "name", Reason: "transmission name cannot be empty"}
	}
	if _, ok := ParseTransmissionType(string(t.Type)); !ok {
		return &InvalidInputError{Field: "type", Reason: "invalid transmission type"}
	}
	if t.Cost < 0 {
		return &InvalidInputError{Field: "cost", Reason: "transmission cost cannot be negative"}
	}
	if t.TopSpeed <= 0 {
		return &InvalidInputError{Field: "top_speed", Reason: "top speed must be greater than 0"}
	}
	if t.ForwardGears <= 0 {
		return &InvalidInputError{Field: "num_forward", Reason: "number of forward gears must be greater than 0"}
	}
	if t.ReverseGears < 0 {
		return &InvalidInputError{Field: "num_reverse", Reason: "number of reverse gears cannot be negative"}
	}
	if t.LowGearBoost < 0 {
		return &InvalidInputError{Field: "low_gear_boost", Reason: "low gear boost cannot be negative"}
	}
	return nil
}

// TorquePoint is a single sample of the normalized torque curve.
// NormRPM is the sample RPM divided by the engine's max RPM; TorqueScale is
// the torque divided by the curve's own peak, so both land in [0,1].
type TorquePoint struct {
	NormRPM     float64
	TorqueScale float64
}

// GearRatioTable holds the computed forward and reverse gear ratios,
// lowest gear first, every value rounded to 3 decimals.
type GearRatioTable struct {
	Forward []float64
	Reverse []float64
}
