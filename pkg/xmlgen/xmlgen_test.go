package xmlgen

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
)

// parsed mirrors the emitted document structure for round-trip checks.
type parsed struct {
	XMLName xml.Name `xml:"motorConfigurations"`
	Config  struct {
		Name  string  `xml:"name,attr"`
		HP    float64 `xml:"hp,attr"`
		Price int     `xml:"price,attr"`
		Motor struct {
			TorqueScale     float64 `xml:"torqueScale,attr"`
			MinRPM          float64 `xml:"minRpm,attr"`
			MaxRPM          float64 `xml:"maxRpm,attr"`
			MaxForwardSpeed float64 `xml:"maxForwardSpeed,attr"`
			Torque          []struct {
				RPM    float64 `xml:"rpm,attr"`
				Torque float64 `xml:"torque,attr"`
			} `xml:"torque"`
		} `xml:"motor"`
		Transmission *struct {
			AutoGearChangeTime string `xml:"autoGearChangeTime,attr"`
			Name               string `xml:"name,attr"`
			Backward           []struct {
				Ratio float64 `xml:"gearRatio,attr"`
				Name  string  `xml:"name,attr"`
			} `xml:"backwardGear"`
			Forward []struct {
				Ratio float64 `xml:"gearRatio,attr"`
			} `xml:"forwardGear"`
		} `xml:"transmission"`
	} `xml:"motorConfiguration"`
}

func parse(t *testing.T, doc string) parsed {
	t.Helper()
	var p parsed
	require.NoError(t, xml.Unmarshal([]byte(doc), &p))
	return p
}

func testEngine() models.EngineSpec {
	return models.EngineSpec{
		Name:           "7.3 Powerstroke",
		Cost:           8500,
		Horsepower:     275,
		MinRPM:         600,
		MaxRPM:         3500,
		FuelUsageScale: 1.0,
		Turbocharged:   true,
	}
}

func testTransmission() models.TransmissionSpec {
	return models.TransmissionSpec{
		Name:         "10-speed Allison",
		Cost:         8000,
		Type:         models.Automatic,
		TopSpeed:     120,
		ForwardGears: 10,
		ReverseGears: 2,
	}
}

func TestEngine(t *testing.T) {
	doc, err := Engine(testEngine())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="utf-8" standalone="no" ?>`))

	p := parse(t, doc)
	assert.Equal(t, "7.3 Powerstroke", p.Config.Name)
	assert.Equal(t, 275.0, p.Config.HP)
	assert.Equal(t, 8500, p.Config.Price)
	assert.Equal(t, 1.0, p.Config.Motor.TorqueScale)
	assert.Equal(t, 600.0, p.Config.Motor.MinRPM)
	assert.Equal(t, 3500.0, p.Config.Motor.MaxRPM)

	// Standalone engine documents carry the game default top speed.
	assert.Equal(t, 120.0, p.Config.Motor.MaxForwardSpeed)

	require.Len(t, p.Config.Motor.Torque, 10)
	assert.Equal(t, 600.0, p.Config.Motor.Torque[0].RPM)
	assert.Equal(t, 3500.0, p.Config.Motor.Torque[9].RPM)

	maxScale := 0.0
	for _, tp := range p.Config.Motor.Torque {
		if tp.Torque > maxScale {
			maxScale = tp.Torque
		}
	}
	assert.Equal(t, 1.0, maxScale)

	assert.Nil(t, p.Config.Transmission)
}

func TestEngineInvalid(t *testing.T) {
	e := testEngine()
	e.Horsepower = 0

	doc, err := Engine(e)
	require.Error(t, err)
	assert.Empty(t, doc)
}

func TestTransmission(t *testing.T) {
	doc, err := Transmission(testTransmission())
	require.NoError(t, err)

	p := parse(t, doc)
	assert.Equal(t, "10-speed Allison", p.Config.Name)
	assert.Equal(t, 0.0, p.Config.HP)
	assert.Equal(t, 8000, p.Config.Price)

	// Placeholder motor keeps the document loadable on its own.
	assert.Equal(t, 1000.0, p.Config.Motor.MinRPM)
	assert.Equal(t, 6000.0, p.Config.Motor.MaxRPM)
	assert.Equal(t, 120.0, p.Config.Motor.MaxForwardSpeed)
	require.Len(t, p.Config.Motor.Torque, 2)

	require.NotNil(t, p.Config.Transmission)
	assert.Equal(t, "1", p.Config.Transmission.AutoGearChangeTime)
	assert.Len(t, p.Config.Transmission.Forward, 10)
	require.Len(t, p.Config.Transmission.Backward, 2)
	assert.Equal(t, "R1", p.Config.Transmission.Backward[0].Name)
	assert.Equal(t, "R2", p.Config.Transmission.Backward[1].Name)

	// Reverse gears are emitted before forward gears.
	assert.Less(t, strings.Index(doc, "<backwardGear"), strings.Index(doc, "<forwardGear"))
}

func TestTransmissionSingleReverse(t *testing.T) {
	tr := testTransmission()
	tr.Type = models.Manual
	tr.ReverseGears = 1

	doc, err := Transmission(tr)
	require.NoError(t, err)

	p := parse(t, doc)
	assert.Equal(t, "0", p.Config.Transmission.AutoGearChangeTime)
	require.Len(t, p.Config.Transmission.Backward, 1)
	assert.Equal(t, "R", p.Config.Transmission.Backward[0].Name)
}

func TestCombined(t *testing.T) {
	e := testEngine()
	tr := testTransmission()

	doc, err := Combined(e, tr)
	require.NoError(t, err)

	p := parse(t, doc)
	assert.Equal(t, "7.3 Powerstroke - 10-speed Allison", p.Config.Name)
	assert.Equal(t, 275.0, p.Config.HP)
	assert.Equal(t, 16500, p.Config.Price)

	// Combined documents take the top speed from the transmission.
	assert.Equal(t, 120.0, p.Config.Motor.MaxForwardSpeed)
	assert.Equal(t, 600.0, p.Config.Motor.MinRPM)

	require.Len(t, p.Config.Motor.Torque, 10)
	require.NotNil(t, p.Config.Transmission)
	assert.Len(t, p.Config.Transmission.Forward, 10)
}

func TestAttributeEscaping(t *testing.T) {
	e := testEngine()
	e.Name = `Big & "Loud" <Engine>`

	doc, err := Engine(e)
	require.NoError(t, err)
	assert.Contains(t, doc, "&amp;")
	assert.Contains(t, doc, "&quot;")
	assert.NotContains(t, doc, `"Loud"`)

	p := parse(t, doc)
	assert.Equal(t, e.Name, p.Config.Name)
}

func TestFormat(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		doc, err := Combined(testEngine(), testTransmission())
		require.NoError(t, err)
		assert.Equal(t, doc, Format(doc))
	})

	t.Run("indents by depth", func(t *testing.T) {
		raw := `<a><b><c/></b></a>`
		want := "<a>\n <b>\n  <c/>\n </b>\n</a>"
		assert.Equal(t, want, Format(raw))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		raw := "<a>\n\n\t  <b/>   </a>"
		assert.Equal(t, "<a>\n <b/>\n</a>", Format(raw))
	})
}

func TestSaveAllNames(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "myconfig.xml")

	paths, err := SaveAll(base, testEngine(), testTransmission())
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "myconfig_fs25.xml"), paths[0])
	assert.Equal(t, filepath.Join(dir, "myconfig_engine.xml"), paths[1])
	assert.Equal(t, filepath.Join(dir, "myconfig_transmission.xml"), paths[2])

	for _, p := range paths {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<motorConfigurations>")
	}
}
