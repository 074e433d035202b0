package xmlgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/gears"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/torque"
)

const header = `<?xml version="1.0" encoding="utf-8" standalone="no" ?>`

// Fixed motor attributes shared by every document shape. The game engine
// reads these; the tool does not expose them as inputs.
const motorTail = `maxBackwardSpeed="22" brakeForce="2" lowBrakeForceScale="0.1" dampingRateScale="0.2"`

// Engine emits the standalone engine document. The motor block carries the
// torque curve; maxForwardSpeed is fixed at the game default of 120 because
// there is no transmission to take a top speed from.
func Engine(e models.EngineSpec) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	curve, err := torque.FromSpec(e)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString("<motorConfigurations>\n")
	fmt.Fprintf(&b, "<motorConfiguration name=\"%s\" hp=\"%s\" price=\"%d\">\n",
		escapeAttr(e.Name), num(e.Horsepower), e.Cost)
	fmt.Fprintf(&b, "<motor torqueScale=\"%s\" minRpm=\"%s\" maxRpm=\"%s\" maxForwardSpeed=\"120\" %s>\n",
		num(e.FuelUsageScale), num(e.MinRPM), num(e.MaxRPM), motorTail)
	writeTorquePoints(&b, curve.Points(), e.MaxRPM)
	b.WriteString("</motor>\n")
	b.WriteString("</motorConfiguration>\n")
	b.WriteString("</motorConfigurations>")

	return Format(b.String()), nil
}

// Transmission emits the standalone transmission document. A placeholder
// flat-torque motor block keeps the document loadable on its own.
func Transmission(t models.TransmissionSpec) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	table, err := gears.Calculate(t)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString("<motorConfigurations>\n")
	fmt.Fprintf(&b, "<motorConfiguration name=\"%s\" hp=\"0\" price=\"%d\">\n",
		escapeAttr(t.Name), t.Cost)
	fmt.Fprintf(&b, "<motor torqueScale=\"1.0\" minRpm=\"1000\" maxRpm=\"6000\" maxForwardSpeed=\"%s\" %s>\n",
		num(t.TopSpeed), motorTail)
	b.WriteString(`<torque rpm="1000" torque="1.0"/>` + "\n")
	b.WriteString(`<torque rpm="6000" torque="1.0"/>` + "\n")
	b.WriteString("</motor>\n")
	writeTransmission(&b, t, table)
	b.WriteString("</motorConfiguration>\n")
	b.WriteString("</motorConfigurations>")

	return Format(b.String()), nil
}

// Combined emits one document carrying both the engine's torque curve and
// the transmission's gear set. The motor's maxForwardSpeed is taken from the
// transmission, and the price is the sum of both costs.
func Combined(e models.EngineSpec, t models.TransmissionSpec) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	if err := t.Validate(); err != nil {
		return "", err
	}
	curve, err := torque.FromSpec(e)
	if err != nil {
		return "", err
	}
	table, err := gears.Calculate(t)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString("<motorConfigurations>\n")
	fmt.Fprintf(&b, "<motorConfiguration name=\"%s - %s\" hp=\"%s\" price=\"%d\">\n",
		escapeAttr(e.Name), escapeAttr(t.Name), num(e.Horsepower), e.Cost+t.Cost)
	fmt.Fprintf(&b, "<motor torqueScale=\"%s\" minRpm=\"%s\" maxRpm=\"%s\" maxForwardSpeed=\"%s\" %s>\n",
		num(e.FuelUsageScale), num(e.MinRPM), num(e.MaxRPM), num(t.TopSpeed), motorTail)
	writeTorquePoints(&b, curve.Points(), e.MaxRPM)
	b.WriteString("</motor>\n")
	writeTransmission(&b, t, table)
	b.WriteString("</motorConfiguration>\n")
	b.WriteString("</motorConfigurations>")

	return Format(b.String()), nil
}

func writeTorquePoints(b *strings.Builder, points []models.TorquePoint, maxRPM float64) {
	for _, p := range points {
		fmt.Fprintf(b, "<torque rpm=\"%.0f\" torque=\"%.2f\"/>\n", p.NormRPM*maxRPM, p.TorqueScale)
	}
}

func writeTransmission(b *strings.Builder, t models.TransmissionSpec, table models.GearRatioTable) {
	autoGearChangeTime := "0"
	if t.Type == models.Automatic {
		autoGearChangeTime = "1"
	}

	fmt.Fprintf(b, "<transmission autoGearChangeTime=\"%s\" gearChangeTime=\"0.3\" name=\"%s\" axleRatio=\"25\" startGearThreshold=\"0.3\">\n",
		autoGearChangeTime, escapeAttr(t.Name))
	b.WriteString(`<directionChange useGear="true"/>` + "\n")

	// Reverse gears come first, named R for a single gear, R1..Rn otherwise.
	for i, ratio := range table.Reverse {
		name := "R"
		if len(table.Reverse) > 1 {
			name = fmt.Sprintf("R%d", i+1)
		}
		fmt.Fprintf(b, "<backwardGear gearRatio=\"%.3f\" name=\"%s\"/>\n", ratio, name)
	}
	for _, ratio := range table.Forward {
		fmt.Fprintf(b, "<forwardGear gearRatio=\"%.3f\"/>\n", ratio)
	}

	b.WriteString("</transmission>\n")
}

// num renders a numeric attribute without trailing zeros
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
)

// Format re-indents an XML string by tracking nesting depth from open and
// close tag tokens. It is a display convenience, not part of the data
// contract, and is idempotent.
func Format(doc string) string {
	doc = whitespaceRe.ReplaceAllString(strings.TrimSpace(doc), " ")

	var lines []string
	depth := 0
	last := 0

	emitText := func(from, to int) {
		if text := strings.TrimSpace(doc[from:to]); text != "" {
			lines = append(lines, indent(depth)+text)
		}
	}

	for _, loc := range tagRe.FindAllStringIndex(doc, -1) {
		emitText(last, loc[0])
		last = loc[1]

		tag := doc[loc[0]:loc[1]]
		switch {
		case strings.HasPrefix(tag, "<?xml"):
			lines = append(lines, tag)
		case strings.HasPrefix(tag, "<!--"):
			lines = append(lines, indent(depth)+tag)
		case strings.HasPrefix(tag, "</"):
			if depth > 0 {
				depth--
			}
			lines = append(lines, indent(depth)+tag)
		case strings.HasSuffix(tag, "/>"):
			lines = append(lines, indent(depth)+tag)
		default:
			lines = append(lines, indent(depth)+tag)
			depth++
		}
	}
	emitText(last, len(doc))

	return strings.Join(lines, "\n")
}

func indent(depth int) string {
	return strings.Repeat(" ", depth)
}
