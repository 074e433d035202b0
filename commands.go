package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/compare"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/export"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/gears"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/models"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/preset"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/render"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/torque"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/web"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/xmlgen"
)

// engineFlags binds the engine spec fields to a command. A --preset flag
// overrides the individual fields with a built-in preset.
type engineFlags struct {
	preset     string
	name       string
	cost       int
	horsepower float64
	minRPM     float64
	maxRPM     float64
	fuelScale  float64
	turbo      bool
}

func (f *engineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "built-in engine preset name")
	cmd.Flags().StringVar(&f.name, "name", "Custom Engine", "engine name")
	cmd.Flags().IntVar(&f.cost, "cost", 10000, "engine cost in $")
	cmd.Flags().Float64Var(&f.horsepower, "hp", 300, "horsepower")
	cmd.Flags().Float64Var(&f.minRPM, "min-rpm", 600, "minimum RPM")
	cmd.Flags().Float64Var(&f.maxRPM, "max-rpm", 3500, "maximum RPM")
	cmd.Flags().Float64Var(&f.fuelScale, "fuel-scale", 1.0, "fuel usage scale")
	cmd.Flags().BoolVar(&f.turbo, "turbo", false, "turbocharged torque profile")
}

func (f *engineFlags) spec() (models.EngineSpec, error) {
	if f.preset != "" {
		p, ok := models.FindEnginePreset(f.preset)
		if !ok {
			return models.EngineSpec{}, fmt.Errorf("unknown engine preset %q", f.preset)
		}
		return p, nil
	}

	e := models.EngineSpec{
		Name:           f.name,
		Cost:           f.cost,
		Horsepower:     f.horsepower,
		MinRPM:         f.minRPM,
		MaxRPM:         f.maxRPM,
		FuelUsageScale: f.fuelScale,
		Turbocharged:   f.turbo,
	}
	if err := e.Validate(); err != nil {
		return models.EngineSpec{}, err
	}
	return e, nil
}

// transmissionFlags binds the transmission spec fields to a command.
type transmissionFlags struct {
	preset     string
	name       string
	cost       int
	typ        string
	topSpeed   float64
	forward    int
	reverse    int
	lowGearing bool
	boost      float64
}

func (f *transmissionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "trans-preset", "", "built-in transmission preset name")
	cmd.Flags().StringVar(&f.name, "trans-name", "Custom Transmission", "transmission name")
	cmd.Flags().IntVar(&f.cost, "trans-cost", 8000, "transmission cost in $")
	cmd.Flags().StringVar(&f.typ, "type", "Manual", "transmission type (Manual, Automatic, CVT, PowerShift)")
	cmd.Flags().Float64Var(&f.topSpeed, "top-speed", 120, "top speed in km/h")
	cmd.Flags().IntVar(&f.forward, "forward", 6, "number of forward gears")
	cmd.Flags().IntVar(&f.reverse, "reverse", 1, "number of reverse gears")
	cmd.Flags().BoolVar(&f.lowGearing, "low-gearing", false, "boost the lowest gears for heavy loads")
	cmd.Flags().Float64Var(&f.boost, "boost", 25.0, "low gear boost percentage")
}

func (f *transmissionFlags) spec() (models.TransmissionSpec, error) {
	if f.preset != "" {
		p, ok := models.FindTransmissionPreset(f.preset)
		if !ok {
			return models.TransmissionSpec{}, fmt.Errorf("unknown transmission preset %q", f.preset)
		}
		return p, nil
	}

	typ, ok := models.ParseTransmissionType(f.typ)
	if !ok {
		return models.TransmissionSpec{}, &models.InvalidInputError{Field: "type", Reason: "invalid transmission type"}
	}

	t := models.TransmissionSpec{
		Name:         f.name,
		Cost:         f.cost,
		Type:         typ,
		TopSpeed:     f.topSpeed,
		ForwardGears: f.forward,
		ReverseGears: f.reverse,
		LowGearing:   f.lowGearing,
		LowGearBoost: f.boost,
	}
	if err := t.Validate(); err != nil {
		return models.TransmissionSpec{}, err
	}
	return t, nil
}

func newEngineCmd() *cobra.Command {
	flags := &engineFlags{}
	var out, csvPath string

	cmd := &cobra.Command{
		Use:   "engine",
		Short: "Generate a standalone engine XML config",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.spec()
			if err != nil {
				return err
			}

			doc, err := xmlgen.Engine(e)
			if err != nil {
				return err
			}

			if csvPath != "" {
				curve, err := torque.FromSpec(e)
				if err != nil {
					return err
				}
				if err := export.CurveToCSV(csvPath, e, curve); err != nil {
					return err
				}
				pterm.Success.Printf("Torque curve exported to %s\n", csvPath)
			}

			if out == "" {
				fmt.Println(doc)
				return nil
			}
			if err := xmlgen.Save(out, doc); err != nil {
				return err
			}
			pterm.Success.Printf("Engine config saved to %s\n", out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "write the XML to this file instead of stdout")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also export the torque curve as CSV")
	return cmd
}

func newTransmissionCmd() *cobra.Command {
	flags := &transmissionFlags{}
	var out, csvPath string

	cmd := &cobra.Command{
		Use:   "transmission",
		Short: "Generate a standalone transmission XML config",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.spec()
			if err != nil {
				return err
			}

			doc, err := xmlgen.Transmission(t)
			if err != nil {
				return err
			}

			if csvPath != "" {
				table, err := gears.Calculate(t)
				if err != nil {
					return err
				}
				if err := export.GearsToCSV(csvPath, t, table); err != nil {
					return err
				}
				pterm.Success.Printf("Gear ratios exported to %s\n", csvPath)
			}

			if out == "" {
				fmt.Println(doc)
				return nil
			}
			if err := xmlgen.Save(out, doc); err != nil {
				return err
			}
			pterm.Success.Printf("Transmission config saved to %s\n", out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "write the XML to this file instead of stdout")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also export the gear ratios as CSV")
	return cmd
}

func newCombinedCmd() *cobra.Command {
	eFlags := &engineFlags{}
	tFlags := &transmissionFlags{}
	var out, presetFile string

	cmd := &cobra.Command{
		Use:   "combined",
		Short: "Generate a combined engine + transmission XML config",
		RunE: func(cmd *cobra.Command, args []string) error {
			var e models.EngineSpec
			var t models.TransmissionSpec

			if presetFile != "" {
				p, err := preset.LoadFile(presetFile)
				if err != nil {
					return err
				}
				e, t = p.Engine, p.Transmission
			} else {
				var err error
				if e, err = eFlags.spec(); err != nil {
					return err
				}
				if t, err = tFlags.spec(); err != nil {
					return err
				}
			}

			if out == "" {
				doc, err := xmlgen.Combined(e, t)
				if err != nil {
					return err
				}
				fmt.Println(doc)
				return nil
			}

			paths, err := xmlgen.SaveAll(out, e, t)
			if err != nil {
				return err
			}
			for _, p := range paths {
				pterm.Success.Printf("Saved %s\n", p)
			}
			return nil
		},
	}

	eFlags.register(cmd)
	tFlags.register(cmd)
	cmd.Flags().StringVar(&out, "out", "", "base file name; writes combined, engine and transmission files")
	cmd.Flags().StringVar(&presetFile, "preset-file", "", "load engine and transmission from a JSON preset file")
	return cmd
}

func newCurveCmd() *cobra.Command {
	flags := &engineFlags{}

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Show the torque curve for an engine spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.spec()
			if err != nil {
				return err
			}
			curve, err := torque.FromSpec(e)
			if err != nil {
				return err
			}
			render.RenderTorqueCurve(e, curve)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newGearsCmd() *cobra.Command {
	flags := &transmissionFlags{}

	cmd := &cobra.Command{
		Use:   "gears",
		Short: "Show the gear ratio table for a transmission spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := flags.spec()
			if err != nil {
				return err
			}
			table, err := gears.Calculate(t)
			if err != nil {
				return err
			}
			render.RenderGearTable(t, table)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in engine and transmission presets",
		Run: func(cmd *cobra.Command, args []string) {
			render.ListEnginePresets()
			render.ListTransmissionPresets()
		},
	}
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <engine-preset> <engine-preset>",
		Short: "Compare the torque curves of two built-in engine presets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ok := models.FindEnginePreset(args[0])
			if !ok {
				return fmt.Errorf("unknown engine preset %q", args[0])
			}
			b, ok := models.FindEnginePreset(args[1])
			if !ok {
				return fmt.Errorf("unknown engine preset %q", args[1])
			}
			return compare.Engines(a, b)
		},
	}
}

func newServeCmd(store *preset.Store) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local web preview server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return web.NewServer(store, port).Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	return cmd
}
