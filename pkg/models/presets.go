package models

// Built-in engine presets, modeled on common US diesel truck engines.
var EnginePresets = []EngineSpec{
	{
		Name:           "7.3 Powerstroke",
		Cost:           8500,
		Horsepower:     275,
		MinRPM:         600,
		MaxRPM:         3500,
		FuelUsageScale: 1.0,
		Turbocharged:   true,
	},
	{
		Name:           "6.0 Powerstroke",
		Cost:           12000,
		Horsepower:     325,
		MinRPM:         650,
		MaxRPM:         3500,
		FuelUsageScale: 1.1,
		Turbocharged:   true,
	},
	{
		Name:           "6.7 Powerstroke",
		Cost:           18000,
		Horsepower:     475,
		MinRPM:         650,
		MaxRPM:         3500,
		FuelUsageScale: 1.3,
		Turbocharged:   true,
	},
	{
		Name:           "5.9 Cummins",
		Cost:           11000,
		Horsepower:     325,
		MinRPM:         700,
		MaxRPM:         3500,
		FuelUsageScale: 1.0,
		Turbocharged:   true,
	},
	{
		Name:           "6.7 Cummins",
		Cost:           15000,
		Horsepower:     400,
		MinRPM:         700,
		MaxRPM:         3500,
		FuelUsageScale: 1.2,
		Turbocharged:   true,
	},
}

// Built-in transmission presets.
var TransmissionPresets = []TransmissionSpec{
	{
		Name:         "10-speed Allison Automatic",
		Cost:         8000,
		Type:         Automatic,
		TopSpeed:     120,
		ForwardGears: 10,
		ReverseGears: 2,
		LowGearing:   false,
		LowGearBoost: 25.0,
	},
	{
		Name:         "13-speed Eaton Fuller",
		Cost:         12000,
		Type:         Manual,
		TopSpeed:     140,
		ForwardGears: 13,
		ReverseGears: 2,
		LowGearing:   false,
		LowGearBoost: 25.0,
	},
	{
		Name:         "4-speed with Granny Gear",
		Cost:         5000,
		Type:         Manual,
		TopSpeed:     80,
		ForwardGears: 5,
		ReverseGears: 1,
		LowGearing:   true,
		LowGearBoost: 50.0,
	},
	{
		Name:         "18-speed Eaton Fuller",
		Cost:         15000,
		Type:         Manual,
		TopSpeed:     160,
		ForwardGears: 18,
		ReverseGears: 2,
		LowGearing:   false,
		LowGearBoost: 25.0,
	},
}

// FindEnginePreset looks up a built-in engine preset by name
func FindEnginePreset(name string) (EngineSpec, bool) {
	for _, p := range EnginePresets {
		if p.Name == name {
			return p, true
		}
	}
	return EngineSpec{}, false
}

// FindTransmissionPreset looks up a built-in transmission preset by name
func FindTransmissionPreset(name string) (TransmissionSpec, bool) {
	for _, p := range TransmissionPresets {
		if p.Name == name {
			return p, true
		}
	}
	return TransmissionSpec{}, false
}
