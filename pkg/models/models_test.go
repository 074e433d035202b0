package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEngine() EngineSpec {
	return EngineSpec{
		Name:           "Test Engine",
		Cost:           10000,
		Horsepower:     300,
		MinRPM:         600,
		MaxRPM:         3500,
		FuelUsageScale: 1.0,
	}
}

func validTransmission() TransmissionSpec {
	return TransmissionSpec{
		Name:         "Test Transmission",
		Cost:         8000,
		Type:         Manual,
		TopSpeed:     120,
		ForwardGears: 6,
		ReverseGears: 1,
	}
}

func TestParseTransmissionType(t *testing.T) {
	for _, typ := range TransmissionTypes {
		got, ok := ParseTransmissionType(string(typ))
		assert.True(t, ok)
		assert.Equal(t, typ, got)
	}

	_, ok := ParseTransmissionType("DualClutch")
	assert.False(t, ok)
	_, ok = ParseTransmissionType("manual")
	assert.False(t, ok)
}

func TestEngineSpecValidate(t *testing.T) {
	assert.NoError(t, validEngine().Validate())

	cases := []struct {
		name   string
		mutate func(*EngineSpec)
		field  string
	}{
		{"empty name", func(e *EngineSpec) { e.Name = "" }, "name"},
		{"negative cost", func(e *EngineSpec) { e.Cost = -1 }, "cost"},
		{"zero horsepower", func(e *EngineSpec) { e.Horsepower = 0 }, "horsepower"},
		{"negative min rpm", func(e *EngineSpec) { e.MinRPM = -100 }, "min_rpm"},
		{"max rpm not above min", func(e *EngineSpec) { e.MaxRPM = e.MinRPM }, "max_rpm"},
		{"zero fuel scale", func(e *EngineSpec) { e.FuelUsageScale = 0 }, "fuel_usage_scale"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := validEngine()
			tc.mutate(&e)
			err := e.Validate()
			require.Error(t, err)

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.field, invalid.Field)
		})
	}
}

func TestTransmissionSpecValidate(t *testing.T) {
	assert.NoError(t, validTransmission().Validate())

	cases := []struct {
		name   string
		mutate func(*TransmissionSpec)
		field  string
	}{
		{"empty name", func(s *TransmissionSpec) { s.Name = "" }, "name"},
		{"unknown type", func(s *TransmissionSpec) { s.Type = "Hydrostatic" }, "type"},
		{"negative cost", func(s *TransmissionSpec) { s.Cost = -1 }, "cost"},
		{"zero top speed", func(s *TransmissionSpec) { s.TopSpeed = 0 }, "top_speed"},
		{"zero forward gears", func(s *TransmissionSpec) { s.ForwardGears = 0 }, "num_forward"},
		{"negative reverse gears", func(s *TransmissionSpec) { s.ReverseGears = -1 }, "num_reverse"},
		{"negative boost", func(s *TransmissionSpec) { s.LowGearBoost = -5 }, "low_gear_boost"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validTransmission()
			tc.mutate(&s)
			err := s.Validate()
			require.Error(t, err)

			var invalid *InvalidInputError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tc.field, invalid.Field)
		})
	}
}

func TestInvalidInputError(t *testing.T) {
	err := &InvalidInputError{Field: "horsepower", Reason: "must be greater than 0"}
	assert.Equal(t, `invalid input "horsepower": must be greater than 0`, err.Error())
}

func TestBuiltinPresetsAreValid(t *testing.T) {
	for _, e := range EnginePresets {
		assert.NoError(t, e.Validate(), e.Name)
	}
	for _, tr := range TransmissionPresets {
		assert.NoError(t, tr.Validate(), tr.Name)
	}
}

func TestFindPresets(t *testing.T) {
	e, ok := FindEnginePreset("7.3 Powerstroke")
	require.True(t, ok)
	assert.True(t, e.Turbocharged)

	_, ok = FindEnginePreset("V12 Quad Turbo")
	assert.False(t, ok)

	tr, ok := FindTransmissionPreset("10-speed Allison Automatic")
	require.True(t, ok)
	assert.Equal(t, Automatic, tr.Type)

	_, ok = FindTransmissionPreset("CVT 9000")
	assert.False(t, ok)
}
