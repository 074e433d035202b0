package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/torque"
)

// CurveToCSV writes a torque curve to a CSV file, metadata first.
func CurveToCSV(path string, e models.EngineSpec, c *torque.Curve) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{fmt.Sprintf("# %s", e.Name)})
	writer.Write([]string{fmt.Sprintf("# %.0f HP, %.0f-%.0f RPM, turbocharged: %t", e.Horsepower, e.MinRPM, e.MaxRPM, e.Turbocharged)})
	writer.Write([]string{""})

	writer.Write([]string{"rpm", "norm_rpm", "torque_nm", "torque_scale"})
	points := c.Points()
	for i, p := range points {
		writer.Write([]string{
			fmt.Sprintf("%.0f", c.RPM[i]),
			fmt.Sprintf("%.4f", p.NormRPM),
			fmt.Sprintf("%.2f", c.Torque[i]),
			fmt.Sprintf("%.4f", p.TorqueScale),
		})
	}

	writer.Flush()
	return writer.Error()
}

// GearsToCSV writes a gear ratio table to a CSV file, reverse gears first.
func GearsToCSV(path string, t models.TransmissionSpec, table models.GearRatioTable) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{fmt.Sprintf("# %s", t.Name)})
	writer.Write([]string{fmt.Sprintf("# %s, %d forward / %d reverse, top speed %.0f km/h", t.Type, t.ForwardGears, t.ReverseGears, t.TopSpeed)})
	writer.Write([]string{""})

	writer.Write([]string{"gear", "ratio"})
	for i, ratio := range table.Reverse {
		writer.Write([]string{fmt.Sprintf("R%d", i+1), fmt.Sprintf("%.3f", ratio)})
	}
	for i, ratio := range table.Forward {
		writer.Write([]string{fmt.Sprintf("%d", i+1), fmt.Sprintf("%.3f", ratio)})
	}

	writer.Flush()
	return writer.Error()
}
