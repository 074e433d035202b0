package render

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/torque"
)

const barWidth = 40

// RenderTorqueCurve displays the generated curve as a colored bar chart.
func RenderTorqueCurve(e models.EngineSpec, c *torque.Curve) {
	title := fmt.Sprintf("%s | %.0f HP | %.0f-%.0f RPM | peak torque %.1f Nm @ %.0f RPM",
		e.Name, e.Horsepower, e.MinRPM, e.MaxRPM, c.PeakTorque(), c.PeakRPM)

	pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Println(BuildCurveString(c))
}

// BuildCurveString creates a formatted string representation of the curve
func BuildCurveString(c *torque.Curve) string {
	var result strings.Builder

	result.WriteString("   RPM   normRpm  scale  torque\n")
	result.WriteString(strings.Repeat("-", 34+barWidth) + "\n")

	points := c.Points()
	for i, p := range points {
		bar := int(p.TorqueScale*barWidth + 0.5)
		color := colorFor(p.TorqueScale)
		result.WriteString(fmt.Sprintf("  %5.0f   %5.3f   %4.2f  %7.1f ",
			c.RPM[i], p.NormRPM, p.TorqueScale, c.Torque[i]))
		result.WriteString(color.Sprint(strings.Repeat("█", bar)))
		result.WriteString("\n")
	}

	return result.String()
}

// RenderGearTable displays forward and reverse ratios as a table.
func RenderGearTable(t models.TransmissionSpec, table models.GearRatioTable) {
	pterm.Info.Printf("%s | %s | %d forward / %d reverse | top speed %.0f km/h\n",
		t.Name, t.Type, len(table.Forward), len(table.Reverse), t.TopSpeed)

	data := [][]string{{"Gear", "Ratio"}}
	for i := len(table.Reverse) - 1; i >= 0; i-- {
		data = append(data, []string{fmt.Sprintf("R%d", i+1), fmt.Sprintf("%.3f", table.Reverse[i])})
	}
	for i, ratio := range table.Forward {
		data = append(data, []string{fmt.Sprintf("%d", i+1), fmt.Sprintf("%.3f", ratio)})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if t.LowGearing {
		pterm.Info.Printf("Low gearing enabled: +%.0f%% on the lowest %d gear(s)\n",
			t.LowGearBoost, len(table.Forward)/4)
	}
}

// ListEnginePresets displays all built-in engine presets in a table
func ListEnginePresets() {
	pterm.DefaultSection.Println("Engine Presets")

	data := [][]string{{"Name", "Cost", "HP", "RPM Range", "Fuel Scale", "Turbo"}}
	for _, p := range models.EnginePresets {
		data = append(data, []string{
			p.Name,
			fmt.Sprintf("$%d", p.Cost),
			fmt.Sprintf("%.0f", p.Horsepower),
			fmt.Sprintf("%.0f-%.0f", p.MinRPM, p.MaxRPM),
			fmt.Sprintf("%.1f", p.FuelUsageScale),
			yesNo(p.Turbocharged),
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// ListTransmissionPresets displays all built-in transmission presets in a table
func ListTransmissionPresets() {
	pterm.DefaultSection.Println("Transmission Presets")

	data := [][]string{{"Name", "Cost", "Type", "Top Speed", "Fwd", "Rev", "Low Gearing"}}
	for _, p := range models.TransmissionPresets {
		lowGearing := "no"
		if p.LowGearing {
			lowGearing = fmt.Sprintf("+%.0f%%", p.LowGearBoost)
		}
		data = append(data, []string{
			p.Name,
			fmt.Sprintf("$%d", p.Cost),
			string(p.Type),
			fmt.Sprintf("%.0f km/h", p.TopSpeed),
			fmt.Sprintf("%d", p.ForwardGears),
			fmt.Sprintf("%d", p.ReverseGears),
			lowGearing,
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func colorFor(normalized float64) *pterm.Style {
	switch {
	case normalized < 0.25:
		return pterm.NewStyle(pterm.FgCyan)
	case normalized < 0.5:
		return pterm.NewStyle(pterm.FgGreen)
	case normalized < 0.75:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgRed)
	}
}
