package forms

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
)

// EngineForm walks the user through every engine field, prefilled from
// defaults, and returns a validated spec.
func EngineForm(defaults models.EngineSpec) (models.EngineSpec, error) {
	e := models.EngineSpec{}

	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaults.Name).
		Show("Engine name")
	e.Name = strings.TrimSpace(name)

	cost, err := askInt("Engine cost ($)", defaults.Cost, "cost")
	if err != nil {
		return models.EngineSpec{}, err
	}
	e.Cost = cost

	e.Horsepower, err = askFloat("Horsepower (HP)", defaults.Horsepower, "horsepower")
	if err != nil {
		return models.EngineSpec{}, err
	}

	e.MinRPM, err = askFloat("Minimum RPM", defaults.MinRPM, "min_rpm")
	if err != nil {
		return models.EngineSpec{}, err
	}

	e.MaxRPM, err = askFloat("Maximum RPM", defaults.MaxRPM, "max_rpm")
	if err != nil {
		return models.EngineSpec{}, err
	}

	e.FuelUsageScale, err = askFloat("Fuel usage scale", defaults.FuelUsageScale, "fuel_usage_scale")
	if err != nil {
		return models.EngineSpec{}, err
	}

	e.Turbocharged, _ = pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaults.Turbocharged).
		Show("Turbocharged?")

	if err := e.Validate(); err != nil {
		return models.EngineSpec{}, err
	}
	return e, nil
}

// TransmissionForm walks the user through every transmission field,
// prefilled from defaults, and returns a validated spec.
func TransmissionForm(defaults models.TransmissionSpec) (models.TransmissionSpec, error) {
	t := models.TransmissionSpec{}

	name, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaults.Name).
		Show("Transmission name")
	t.Name = strings.TrimSpace(name)

	cost, err := askInt("Transmission cost ($)", defaults.Cost, "cost")
	if err != nil {
		return models.TransmissionSpec{}, err
	}
	t.Cost = cost

	options := make([]string, len(models.TransmissionTypes))
	for i, typ := range models.TransmissionTypes {
		options[i] = string(typ)
	}
	selected, _ := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(string(defaults.Type)).
		Show("Transmission type")
	typ, ok := models.ParseTransmissionType(selected)
	if !ok {
		return models.TransmissionSpec{}, &models.InvalidInputError{Field: "type", Reason: "invalid transmission type"}
	}
	t.Type = typ

	t.TopSpeed, err = askFloat("Top speed (km/h)", defaults.TopSpeed, "top_speed")
	if err != nil {
		return models.TransmissionSpec{}, err
	}

	forward, err := askInt("Forward gears", defaults.ForwardGears, "num_forward")
	if err != nil {
		return models.TransmissionSpec{}, err
	}
	t.ForwardGears = forward

	reverse, err := askInt("Reverse gears", defaults.ReverseGears, "num_reverse")
	if err != nil {
		return models.TransmissionSpec{}, err
	}
	t.ReverseGears = reverse

	t.LowGearing, _ = pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaults.LowGearing).
		Show("Enable low gearing?")

	if t.LowGearing {
		t.LowGearBoost, err = askFloat("Low gear boost (%)", defaults.LowGearBoost, "low_gear_boost")
		if err != nil {
			return models.TransmissionSpec{}, err
		}
	} else {
		t.LowGearBoost = defaults.LowGearBoost
	}

	if err := t.Validate(); err != nil {
		return models.TransmissionSpec{}, err
	}
	return t, nil
}

func askInt(label string, def int, field string) (int, error) {
	input, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(strconv.Itoa(def)).
		Show(label)
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, &models.InvalidInputError{Field: field, Reason: "must be a whole number"}
	}
	return value, nil
}

func askFloat(label string, def float64, field string) (float64, error) {
	input, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(strconv.FormatFloat(def, 'g', -1, 64)).
		Show(label)
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, &models.InvalidInputError{Field: field, Reason: "must be a number"}
	}
	return value, nil
}
