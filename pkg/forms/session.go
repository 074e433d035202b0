package forms

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pterm/pterm"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/export"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/gears"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/preset"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/render"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/torque"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/xmlgen"
)

// Session is the interactive configuration loop. It owns the current engine
// and transmission specs and a preset store; every action reports its
// outcome and returns to the menu, so no failure ends the session.
type Session struct {
	Store        *preset.Store
	Engine       models.EngineSpec
	Transmission models.TransmissionSpec
}

// NewSession returns a session seeded with the default custom configs.
func NewSession(store *preset.Store) *Session {
	return &Session{
		Store: store,
		Engine: models.EngineSpec{
			Name:           "Custom Engine",
			Cost:           10000,
			Horsepower:     300,
			MinRPM:         600,
			MaxRPM:         3500,
			FuelUsageScale: 1.0,
		},
		Transmission: models.TransmissionSpec{
			Name:         "Custom Transmission",
			Cost:         8000,
			Type:         models.Manual,
			TopSpeed:     120,
			ForwardGears: 6,
			ReverseGears: 1,
			LowGearBoost: 25.0,
		},
	}
}

const (
	actionEngine           = "Configure engine"
	actionTransmission     = "Configure transmission"
	actionEnginePreset     = "Load built-in engine preset"
	actionTransPreset      = "Load built-in transmission preset"
	actionShowCurve        = "Show torque curve"
	actionShowGears        = "Show gear ratios"
	actionPreviewEngine    = "Preview engine XML"
	actionPreviewTrans     = "Preview transmission XML"
	actionPreviewCombined  = "Preview combined XML"
	actionSaveEngine       = "Save engine XML"
	actionSaveTrans        = "Save transmission XML"
	actionSaveCombined     = "Save combined XML"
	actionExportCurveCSV   = "Export torque curve CSV"
	actionExportGearsCSV   = "Export gear ratios CSV"
	actionSavePresetFile   = "Save preset file"
	actionLoadPresetFile   = "Load preset file"
	actionAddPreset        = "Add to session presets"
	actionLoadSessionPre   = "Load session preset"
	actionQuit             = "Quit"
)

// Run starts the menu loop and blocks until the user quits.
func (s *Session) Run() {
	pterm.DefaultHeader.WithFullWidth().Println("FS25 Engine and Transmission Config Tool")

	for {
		pterm.Println()
		pterm.Info.Printf("Engine: %s (%.0f HP) | Transmission: %s (%s, %dF/%dR)\n",
			s.Engine.Name, s.Engine.Horsepower,
			s.Transmission.Name, s.Transmission.Type,
			s.Transmission.ForwardGears, s.Transmission.ReverseGears)

		action, _ := pterm.DefaultInteractiveSelect.
			WithOptions([]string{
				actionEngine, actionTransmission,
				actionEnginePreset, actionTransPreset,
				actionShowCurve, actionShowGears,
				actionPreviewEngine, actionPreviewTrans, actionPreviewCombined,
				actionSaveEngine, actionSaveTrans, actionSaveCombined,
				actionExportCurveCSV, actionExportGearsCSV,
				actionSavePresetFile, actionLoadPresetFile,
				actionAddPreset, actionLoadSessionPre,
				actionQuit,
			}).
			WithMaxHeight(19).
			Show("Select an action")

		if action == actionQuit {
			pterm.Info.Println("Bye.")
			return
		}

		if err := s.dispatch(action); err != nil {
			pterm.Error.Println(err)
		}
	}
}

func (s *Session) dispatch(action string) error {
	switch action {
	case actionEngine:
		e, err := EngineForm(s.Engine)
		if err != nil {
			return err
		}
		s.Engine = e
		pterm.Success.Printf("Engine %q configured\n", e.Name)

	case actionTransmission:
		t, err := TransmissionForm(s.Transmission)
		if err != nil {
			return err
		}
		s.Transmission = t
		pterm.Success.Printf("Transmission %q configured\n", t.Name)

	case actionEnginePreset:
		names := make([]string, len(models.EnginePresets))
		for i, p := range models.EnginePresets {
			names[i] = p.Name
		}
		name, _ := pterm.DefaultInteractiveSelect.WithOptions(names).Show("Engine preset")
		if p, ok := models.FindEnginePreset(name); ok {
			s.Engine = p
			pterm.Success.Printf("Loaded engine preset %q\n", name)
		}

	case actionTransPreset:
		names := make([]string, len(models.TransmissionPresets))
		for i, p := range models.TransmissionPresets {
			names[i] = p.Name
		}
		name, _ := pterm.DefaultInteractiveSelect.WithOptions(names).Show("Transmission preset")
		if p, ok := models.FindTransmissionPreset(name); ok {
			s.Transmission = p
			pterm.Success.Printf("Loaded transmission preset %q\n", name)
		}

	case actionShowCurve:
		if err := s.Engine.Validate(); err != nil {
			return err
		}
		curve, err := torque.FromSpec(s.Engine)
		if err != nil {
			return err
		}
		render.RenderTorqueCurve(s.Engine, curve)

	case actionShowGears:
		if err := s.Transmission.Validate(); err != nil {
			return err
		}
		table, err := gears.Calculate(s.Transmission)
		if err != nil {
			return err
		}
		render.RenderGearTable(s.Transmission, table)

	case actionPreviewEngine:
		doc, err := xmlgen.Engine(s.Engine)
		if err != nil {
			return err
		}
		pterm.Println(doc)

	case actionPreviewTrans:
		doc, err := xmlgen.Transmission(s.Transmission)
		if err != nil {
			return err
		}
		pterm.Println(doc)

	case actionPreviewCombined:
		doc, err := xmlgen.Combined(s.Engine, s.Transmission)
		if err != nil {
			return err
		}
		pterm.Println(doc)

	case actionSaveEngine:
		doc, err := xmlgen.Engine(s.Engine)
		if err != nil {
			return err
		}
		return saveTo("engine.xml", doc)

	case actionSaveTrans:
		doc, err := xmlgen.Transmission(s.Transmission)
		if err != nil {
			return err
		}
		return saveTo("transmission.xml", doc)

	case actionSaveCombined:
		path, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultValue("config.xml").
			Show("Base file name")
		paths, err := xmlgen.SaveAll(path, s.Engine, s.Transmission)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Files saved: %s\n", strings.Join(paths, ", "))

	case actionExportCurveCSV:
		curve, err := torque.FromSpec(s.Engine)
		if err != nil {
			return err
		}
		path, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultValue("torque_curve.csv").
			Show("CSV file name")
		if err := export.CurveToCSV(path, s.Engine, curve); err != nil {
			return err
		}
		pterm.Success.Printf("Torque curve exported to %s\n", path)

	case actionExportGearsCSV:
		table, err := gears.Calculate(s.Transmission)
		if err != nil {
			return err
		}
		path, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultValue("gear_ratios.csv").
			Show("CSV file name")
		if err := export.GearsToCSV(path, s.Transmission, table); err != nil {
			return err
		}
		pterm.Success.Printf("Gear ratios exported to %s\n", path)

	case actionSavePresetFile:
		if err := s.Engine.Validate(); err != nil {
			return err
		}
		if err := s.Transmission.Validate(); err != nil {
			return err
		}
		path, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultValue("preset.json").
			Show("Preset file name")
		if err := preset.SaveFile(path, preset.Pair{Engine: s.Engine, Transmission: s.Transmission}); err != nil {
			return err
		}
		pterm.Success.Printf("Preset saved to %s\n", path)

	case actionLoadPresetFile:
		path, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultValue("preset.json").
			Show("Preset file name")
		p, err := preset.LoadFile(path)
		if err != nil {
			return err
		}
		s.Engine = p.Engine
		s.Transmission = p.Transmission
		pterm.Success.Println("Preset loaded successfully")

	case actionAddPreset:
		return s.addPreset()

	case actionLoadSessionPre:
		names := s.Store.Names()
		if len(names) == 0 {
			pterm.Warning.Println("No session presets yet")
			return nil
		}
		name, _ := pterm.DefaultInteractiveSelect.WithOptions(names).Show("Session preset")
		if p, ok := s.Store.Get(name); ok {
			s.Engine = p.Engine
			s.Transmission = p.Transmission
			pterm.Success.Printf("Loaded preset %q\n", name)
		}
	}

	return nil
}

var invalidPresetChars = regexp.MustCompile(`[<>:"/\\|?*]`)

func (s *Session) addPreset() error {
	if err := s.Engine.Validate(); err != nil {
		return err
	}
	if err := s.Transmission.Validate(); err != nil {
		return err
	}

	name, _ := pterm.DefaultInteractiveTextInput.Show("Preset name")
	name = strings.TrimSpace(name)
	if name == "" {
		return &models.InvalidInputError{Field: "preset", Reason: "preset name cannot be empty"}
	}
	if len(name) > 50 {
		return &models.InvalidInputError{Field: "preset", Reason: "preset name must be 50 characters or less"}
	}
	if invalidPresetChars.MatchString(name) {
		return &models.InvalidInputError{Field: "preset", Reason: "preset name contains invalid characters"}
	}

	if s.Store.Has(name) {
		overwrite, _ := pterm.DefaultInteractiveConfirm.
			Show(fmt.Sprintf("Preset %q already exists. Overwrite?", name))
		if !overwrite {
			pterm.Info.Println("Cancelled.")
			return nil
		}
	}

	s.Store.Add(name, preset.Pair{Engine: s.Engine, Transmission: s.Transmission})
	pterm.Success.Printf("Preset %q added\n", name)
	return nil
}

func saveTo(defaultName, doc string) error {
	path, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultName).
		Show("File name")
	if err := xmlgen.Save(path, doc); err != nil {
		return err
	}
	pterm.Success.Printf("Saved to %s\n", path)
	return nil
}
