package compare

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/torque"
)

// Engines compares the torque curves of two engine specs sample by sample
// and renders the difference with summary statistics.
func Engines(a, b models.EngineSpec) error {
	curveA, err := torque.FromSpec(a)
	if err != nil {
		return fmt.Errorf("engine %q: %w", a.Name, err)
	}
	curveB, err := torque.FromSpec(b)
	if err != nil {
		return fmt.Errorf("engine %q: %w", b.Name, err)
	}

	pterm.DefaultHeader.WithFullWidth().Println("Torque Curve Comparison")
	pterm.DefaultSection.Printf("%s vs %s\n", a.Name, b.Name)

	diff := make([]float64, torque.Samples)
	var totalDiff, maxDiff, minDiff float64
	for i := range diff {
		d := curveB.Torque[i] - curveA.Torque[i]
		diff[i] = d
		totalDiff += d
		if d > maxDiff {
			maxDiff = d
		}
		if d < minDiff {
			minDiff = d
		}
	}

	pterm.Info.Printf("Peak torque: %.1f Nm vs %.1f Nm\n", curveA.PeakTorque(), curveB.PeakTorque())
	pterm.Info.Printf("Average change: %.1f Nm\n", totalDiff/float64(torque.Samples))
	pterm.Info.Printf("Max increase: %.1f Nm\n", maxDiff)
	pterm.Info.Printf("Max decrease: %.1f Nm\n", minDiff)

	visualizeDiff(curveA, curveB, diff)
	return nil
}

func visualizeDiff(curveA, curveB *torque.Curve, diff []float64) {
	maxAbs := 0.0
	for _, d := range diff {
		if a := abs(d); a > maxAbs {
			maxAbs = a
		}
	}

	var result strings.Builder
	result.WriteString("  sample   rpm A    Nm A   rpm B    Nm B    diff\n")
	result.WriteString(strings.Repeat("-", 52) + "\n")

	for i, d := range diff {
		result.WriteString(fmt.Sprintf("    %2d   %6.0f %7.1f  %6.0f %7.1f %7.1f ",
			i+1, curveA.RPM[i], curveA.Torque[i], curveB.RPM[i], curveB.Torque[i], d))
		result.WriteString(diffSymbol(d, maxAbs))
		result.WriteString("\n")
	}

	result.WriteString("\nLegend: ")
	result.WriteString(pterm.FgBlue.Sprint("▼▼") + " Large Decrease  ")
	result.WriteString(pterm.FgCyan.Sprint("▼") + " Small Decrease  ")
	result.WriteString(pterm.FgGray.Sprint("·") + " No Change  ")
	result.WriteString(pterm.FgYellow.Sprint("▲") + " Small Increase  ")
	result.WriteString(pterm.FgRed.Sprint("▲▲") + " Large Increase")

	pterm.DefaultBox.Println(result.String())
}

func diffSymbol(val, maxAbs float64) string {
	if val == 0 || maxAbs == 0 {
		return pterm.FgGray.Sprint("·")
	}

	normalized := val / maxAbs

	switch {
	case normalized < -0.5:
		return pterm.FgBlue.Sprint("▼▼")
	case normalized < -0.1:
		return pterm.FgCyan.Sprint("▼")
	case normalized > 0.5:
		return pterm.FgRed.Sprint("▲▲")
	case normalized > 0.1:
		return pterm.FgYellow.Sprint("▲")
	}

	return pterm.FgGray.Sprint("·")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
