package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/banitsriram/young-modulus/internal/config"
	"github.com/banitsriram/young-modulus/internal/experiment"
	"github.com/banitsriram/young-modulus/internal/material"
	"github.com/banitsriram/young-modulus/internal/report"
	"github.com/banitsriram/young-modulus/internal/tui"
)

var (
	bending  string
	length   float64
	breadth  float64
	width    float64
	initial  float64
	loadStep float64
	// Comma separated scale positions and loads
	positions string
	loads     string
	// Config file and preset
	configFile string
	preset     string
	// Output control
	format string
	plot   bool
	save   bool
	output string
)

// main registers the youngmod commands and runs the interactive
// collector when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "youngmod",
		Short: "young's modulus bending experiment lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive()
		},
	}
	rootCmd.Flags().StringVar(&output, "output", "", "save the report to this path")

	runCmd := &cobra.Command{
		Use:   "run [material]",
		Short: "run an experiment",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExperiment,
	}
	runCmd.Flags().StringVar(&bending, "bending", config.DefaultBending, "loading mode (uniform, non-uniform)")
	runCmd.Flags().Float64Var(&length, "length", config.DefaultLength, "beam length (cm)")
	runCmd.Flags().Float64Var(&breadth, "breadth", config.DefaultBreadth, "beam breadth (cm)")
	runCmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "beam width (cm)")
	runCmd.Flags().Float64Var(&initial, "initial", 0.0, "initial scale position (cm)")
	runCmd.Flags().Float64Var(&loadStep, "load-step", config.DefaultLoadStep, "load increment per reading (g)")
	runCmd.Flags().StringVar(&positions, "positions", "", "comma separated scale positions (cm)")
	runCmd.Flags().StringVar(&loads, "loads", "", "comma separated loads (g), paired with positions")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&format, "format", "text", "output format (text, json, csv)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "draw console charts")
	runCmd.Flags().BoolVar(&save, "save", false, "save the report under its default name")
	runCmd.Flags().StringVar(&output, "output", "", "save the report to this path")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list supported materials",
		RunE:  listMaterials,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-16s %s, %s bending, %d readings\n",
					name, p.Material, p.Bending, len(p.Readings))
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a starter config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeStarterConfig,
	}

	rootCmd.AddCommand(runCmd, materialsCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInteractive() error {
	cfg, err := tui.Run()
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	exp, err := cfg.Experiment()
	if err != nil {
		return err
	}
	res, err := experiment.Run(exp)
	if err != nil {
		return err
	}

	fmt.Print(report.Render(res))

	if output != "" {
		if err := report.WriteFile(output, res); err != nil {
			return err
		}
		fmt.Printf("report saved to %s\n", output)
	}
	return nil
}

func runExperiment(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	// Load preset if specified
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	// CLI values override preset and file values
	if len(args) > 0 {
		cfg.Material = args[0]
	}
	if cmd.Flags().Changed("bending") {
		cfg.Bending = bending
	}
	if cmd.Flags().Changed("length") {
		cfg.Dimensions.Length = length
	}
	if cmd.Flags().Changed("breadth") {
		cfg.Dimensions.Breadth = breadth
	}
	if cmd.Flags().Changed("width") {
		cfg.Dimensions.Width = width
	}
	if cmd.Flags().Changed("initial") {
		cfg.Initial = initial
	}
	if cmd.Flags().Changed("load-step") {
		cfg.LoadStep = loadStep
	}
	if cmd.Flags().Changed("positions") {
		readings, err := parsePositions(positions)
		if err != nil {
			return err
		}
		cfg.Readings = readings
	}
	if cmd.Flags().Changed("loads") {
		ls, err := parseFloats(loads)
		if err != nil {
			return err
		}
		if len(ls) != len(cfg.Readings) {
			return fmt.Errorf("got %d loads for %d readings", len(ls), len(cfg.Readings))
		}
		for i := range ls {
			cfg.Readings[i].Load = ls[i]
		}
	}

	exp, err := cfg.Experiment()
	if err != nil {
		return err
	}
	res, err := experiment.Run(exp)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return report.ExportJSON(os.Stdout, res)
	case "csv":
		return report.ExportCSV(os.Stdout, res)
	case "text":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fmt.Print(report.Render(res))

	if plot {
		fmt.Println()
		fmt.Println(report.DeflectionChart(res))
		fmt.Println()
		fmt.Println(report.ModulusChart(res))
	}

	if save || output != "" {
		path := output
		if path == "" {
			path = report.DefaultFilename(res)
		}
		if err := report.WriteFile(path, res); err != nil {
			return err
		}
		fmt.Printf("report saved to %s\n", path)
	}

	return nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", part, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parsePositions(s string) ([]config.ReadingConfig, error) {
	vals, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	readings := make([]config.ReadingConfig, 0, len(vals))
	for _, v := range vals {
		readings = append(readings, config.ReadingConfig{Position: v})
	}
	return readings, nil
}

func listMaterials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tMODULUS(GPA)\tDENSITY(G/CM³)")
	for _, m := range material.List() {
		fmt.Fprintf(w, "%s\t%s\t%g\t%.2f\n", m.Key, m.Name, m.Modulus, m.Density)
	}
	return w.Flush()
}

func writeStarterConfig(cmd *cobra.Command, args []string) error {
	path := "bench.yaml"
	if len(args) > 0 {
		path = args[0]
	}

	cfg := config.DefaultConfig()
	cfg.Readings = []config.ReadingConfig{
		{Position: 0.014},
		{Position: 0.028},
		{Position: 0.043},
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
