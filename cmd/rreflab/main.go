package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/san-kum/rreflab/internal/config"
	"github.com/san-kum/rreflab/internal/engine"
	"github.com/san-kum/rreflab/internal/matrix"
	"github.com/san-kum/rreflab/internal/parse"
	"github.com/san-kum/rreflab/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	precision  int
	preset     string
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rreflab",
		Short: "step-by-step Gauss-Jordan elimination lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", config.DefaultPrecision, "decimal places in printed values")

	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "reduce a matrix and report its solution",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&preset, "preset", "", "use a built-in example system")
	solveCmd.Flags().BoolVar(&quiet, "quiet", false, "print only the classification")

	traceCmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "reduce a matrix, printing every elimination step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&preset, "preset", "", "use a built-in example system")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in example systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, p := range config.Presets {
				fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Description)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(solveCmd, traceCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = precision
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadMatrix resolves the input in priority order: --preset, the file
// argument ("-" for stdin), then the config's input_file.
func loadMatrix(args []string, cfg *config.Config) (*matrix.Matrix, error) {
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return parse.Grid(p.Grid)
	}
	if len(args) > 0 {
		if args[0] == "-" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, err
			}
			return parse.Grid(string(data))
		}
		return parse.File(args[0])
	}
	if cfg.InputFile != "" {
		return parse.File(cfg.InputFile)
	}
	return nil, fmt.Errorf("no input: pass a file, \"-\" for stdin, or --preset (see rreflab presets)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := loadMatrix(args, cfg)
	if err != nil {
		return err
	}

	eng := engine.New(m)
	verdict := drain(eng, nil)

	if !quiet {
		fmt.Println("reduced row-echelon form:")
		printMatrix(eng.Snapshot(), cfg.Precision)
		fmt.Println()
	}
	fmt.Println(verdict)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := loadMatrix(args, cfg)
	if err != nil {
		return err
	}

	eng := engine.New(m)
	n := 0
	verdict := drain(eng, func(step engine.Step) {
		n++
		fmt.Printf("%4d  %-22s %s\n", n, step.Kind, step.Description)
	})

	fmt.Println()
	printMatrix(eng.Snapshot(), cfg.Precision)
	fmt.Println()
	fmt.Println(verdict)
	return nil
}

// drain runs the engine to exhaustion, invoking observe for every step when
// it is non-nil, and returns the classification verdict.
func drain(eng *engine.Engine, observe func(engine.Step)) string {
	verdict := "run did not reach a classification"
	for {
		step, ok := eng.Advance()
		if !ok {
			return verdict
		}
		if observe != nil {
			observe(step)
		}
		switch step.Kind {
		case engine.UniqueSolution, engine.InfiniteSolutions,
			engine.NoSolution, engine.NotApplicable:
			verdict = step.Description
		}
	}
}

func printMatrix(m *matrix.Matrix, precision int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			fmt.Fprintf(w, "%s\t", tui.FormatCell(m.At(r, c), precision))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
