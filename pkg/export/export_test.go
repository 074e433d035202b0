package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/gears"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/torque"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestCurveToCSV(t *testing.T) {
	e := models.EngineSpec{
		Name:           "7.3 Powerstroke",
		Cost:           8500,
		Horsepower:     275,
		MinRPM:         600,
		MaxRPM:         3500,
		FuelUsageScale: 1.0,
		Turbocharged:   true,
	}
	c, err := torque.FromSpec(e)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "curve.csv")
	require.NoError(t, CurveToCSV(path, e, c))

	records := readCSV(t, path)
	// Two metadata rows and a header; the blank separator line is dropped
	// by the reader. One row per sample follows.
	require.Len(t, records, 3+torque.Samples)
	assert.Equal(t, "# 7.3 Powerstroke", records[0][0])
	assert.Equal(t, []string{"rpm", "norm_rpm", "torque_nm", "torque_scale"}, records[2])
	assert.Equal(t, "600", records[3][0])
	assert.Equal(t, "3500", records[2+torque.Samples][0])
}

func TestGearsToCSV(t *testing.T) {
	tr := models.TransmissionSpec{
		Name:         "10-speed Allison Automatic",
		Cost:         8000,
		Type:         models.Automatic,
		TopSpeed:     120,
		ForwardGears: 10,
		ReverseGears: 2,
	}
	table, err := gears.Calculate(tr)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gears.csv")
	require.NoError(t, GearsToCSV(path, tr, table))

	records := readCSV(t, path)
	require.Len(t, records, 3+12)
	assert.Equal(t, []string{"gear", "ratio"}, records[2])

	// Reverse gears come first.
	assert.Equal(t, "R1", records[3][0])
	assert.Equal(t, "R2", records[4][0])
	assert.Equal(t, "1", records[5][0])
	assert.Equal(t, "4.500", records[5][1])
}
