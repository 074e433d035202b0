package torque

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
)

func TestGenerate(t *testing.T) {
	t.Run("turbocharged 275hp", func(t *testing.T) {
		c, err := Generate(275, 600, 3500, true)
		require.NoError(t, err)

		assert.Len(t, c.RPM, Samples)
		assert.Len(t, c.Torque, Samples)
		assert.Equal(t, 600.0, c.RPM[0])
		assert.Equal(t, 3500.0, c.RPM[Samples-1])

		// Peak sits at 65% of the RPM band.
		assert.InDelta(t, 2485.0, c.PeakRPM, 1e-9)

		// Above the knee the turbo profile never drops below 70% of base.
		base := 275 * 9549 / c.PeakRPM
		assert.InDelta(t, base*0.7, c.Torque[Samples-1], 1e-9)
	})

	t.Run("naturally aspirated floor", func(t *testing.T) {
		c, err := Generate(300, 600, 3500, false)
		require.NoError(t, err)

		// At max RPM the falloff bottoms out at half the base torque.
		base := 300 * 9549 / c.PeakRPM
		assert.InDelta(t, base*0.5, c.Torque[Samples-1], 1e-9)
	})

	t.Run("rpm samples increase", func(t *testing.T) {
		c, err := Generate(400, 800, 2800, true)
		require.NoError(t, err)

		for i := 1; i < Samples; i++ {
			assert.Greater(t, c.RPM[i], c.RPM[i-1])
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		cases := []struct {
			name   string
			hp     float64
			minRPM float64
			maxRPM float64
			field  string
		}{
			{"zero horsepower", 0, 600, 3500, "horsepower"},
			{"negative horsepower", -10, 600, 3500, "horsepower"},
			{"negative min rpm", 300, -1, 3500, "min_rpm"},
			{"max not above min", 300, 3500, 3500, "max_rpm"},
			{"max below min", 300, 3500, 600, "max_rpm"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c, err := Generate(tc.hp, tc.minRPM, tc.maxRPM, false)
				require.Error(t, err)
				assert.Nil(t, c)

				var invalid *models.InvalidInputError
				require.True(t, errors.As(err, &invalid))
				assert.Equal(t, tc.field, invalid.Field)
			})
		}
	})
}

func TestFromSpec(t *testing.T) {
	e := models.EngineSpec{
		Name:           "7.3 Powerstroke",
		Cost:           8500,
		Horsepower:     275,
		MinRPM:         600,
		MaxRPM:         3500,
		FuelUsageScale: 1.0,
		Turbocharged:   true,
	}

	c, err := FromSpec(e)
	require.NoError(t, err)
	assert.Equal(t, e.MinRPM, c.MinRPM)
	assert.Equal(t, e.MaxRPM, c.MaxRPM)
}

func TestPeakTorque(t *testing.T) {
	c, err := Generate(275, 600, 3500, true)
	require.NoError(t, err)

	peak := c.PeakTorque()
	assert.Greater(t, peak, 0.0)
	for _, torque := range c.Torque {
		assert.LessOrEqual(t, torque, peak)
	}
}

func TestPoints(t *testing.T) {
	c, err := Generate(275, 600, 3500, true)
	require.NoError(t, err)

	points := c.Points()
	require.Len(t, points, Samples)

	// RPM normalizes against max RPM, so the band runs min/max .. 1.0.
	assert.InDelta(t, 600.0/3500.0, points[0].NormRPM, 1e-9)
	assert.InDelta(t, 1.0, points[Samples-1].NormRPM, 1e-9)

	// Torque normalizes against the curve's own peak: the largest scale is
	// exactly 1.0 and nothing exceeds it.
	maxScale := 0.0
	for _, p := range points {
		assert.LessOrEqual(t, p.TorqueScale, 1.0)
		assert.Greater(t, p.TorqueScale, 0.0)
		if p.TorqueScale > maxScale {
			maxScale = p.TorqueScale
		}
	}
	assert.Equal(t, 1.0, maxScale)
}
