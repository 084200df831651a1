package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ionic-scatter/internal/app"
	"ionic-scatter/internal/config"
	"ionic-scatter/internal/defs"
)

// renderFlags are the command-line overrides for a RenderConfig.
type renderFlags struct {
	configPath string
	backend    string
	colorscale string
	xlabel     string
	ylabel     string
	zlabel     string
	title      string
}

func (f *renderFlags) register(fl *pflag.FlagSet) {
	fl.StringVar(&f.configPath, "config", "", "render options file (TOML)")
	fl.StringVar(&f.backend, "backend", string(config.BackendStatic), "viewer: static or interactive")
	fl.StringVar(&f.colorscale, "colorscale", "coolwarm", "colour scale name, append _r to reverse")
	fl.StringVar(&f.xlabel, "xlabel", "x", "x axis label")
	fl.StringVar(&f.ylabel, "ylabel", "y", "y axis label")
	fl.StringVar(&f.zlabel, "zlabel", "z", "z axis label")
	fl.StringVar(&f.title, "title", "", "figure title")
}

// resolve builds the render options: defaults, then the config file, then any
// flag the user actually set.
func (f *renderFlags) resolve(fl *pflag.FlagSet) (config.RenderConfig, error) {
	cfg := config.DefaultRender()
	if f.configPath != "" {
		loaded, err := config.LoadRenderConfig(f.configPath)
		if err != nil {
			return config.RenderConfig{}, err
		}
		cfg = loaded
	}

	if fl.Changed("backend") {
		b, err := config.ParseBackend(f.backend)
		if err != nil {
			return config.RenderConfig{}, err
		}
		cfg.Backend = b
	}
	if fl.Changed("colorscale") {
		cfg.Colorscale = f.colorscale
	}
	if fl.Changed("xlabel") {
		cfg.AxisLabels.X = f.xlabel
	}
	if fl.Changed("ylabel") {
		cfg.AxisLabels.Y = f.ylabel
	}
	if fl.Changed("zlabel") {
		cfg.AxisLabels.Z = f.zlabel
	}
	if fl.Changed("title") {
		cfg.Title = f.title
	}

	if err := cfg.Validate(); err != nil {
		return config.RenderConfig{}, err
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "scatter [cluster.json|-]",
		Short: "Plot an ionic cluster as a charge-coloured 3D scatter",
		Long: `
Plot every particle of a cluster at its position, coloured by its charge.

The cluster is a JSON object {"positions": [[x, y, z], ...], "charges": [q, ...]}.
Pass "-" to read it from stdin. Without an argument a file dialog is opened.

Examples:
  scatter cluster.json
  scatter --backend interactive --colorscale viridis cluster.json
  scatter lattice --size 4 | scatter --title NaCl -
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScatter(cmd, args, flags)
		},
	}
	flags.register(cmd.Flags())

	cmd.AddCommand(newLatticeCmd(), newScalesCmd(), newViewCmd())
	return cmd
}

func runScatter(cmd *cobra.Command, args []string, flags *renderFlags) error {
	cfg, err := flags.resolve(cmd.Flags())
	if err != nil {
		return err
	}

	cluster, fromDialog, err := loadCluster(cmd, args)
	if errors.Is(err, zenity.ErrCanceled) {
		log.Println("No cluster file selected")
		return nil
	}
	if err == nil {
		_, err = app.Plot(cluster.PointSet(), cfg)
	}
	// Из диалога запускают без терминала, поэтому ошибку показываем окном
	if err != nil && fromDialog {
		if dlgErr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle)); dlgErr != nil {
			log.Printf("Failed to show error dialog: %v", dlgErr)
		}
	}
	return err
}

// loadCluster reads the cluster named by args, stdin for "-", or a file picked
// in a dialog. fromDialog reports the last case.
func loadCluster(cmd *cobra.Command, args []string) (c *defs.Cluster, fromDialog bool, err error) {
	if len(args) == 1 {
		if args[0] == "-" {
			c, err = defs.DecodeCluster(cmd.InOrStdin())
			if err != nil {
				return nil, false, fmt.Errorf("stdin: %w", err)
			}
			return c, false, nil
		}
		c, err = defs.LoadCluster(args[0])
		return c, false, err
	}

	path, err := zenity.SelectFile(
		zenity.Title("Open Cluster"),
		zenity.FileFilters{{
			Name:     "Cluster",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		return nil, true, err
	}
	c, err = defs.LoadCluster(path)
	return c, true, err
}

// newViewCmd is started by the interactive backend with the figure on stdin.
func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:    app.ViewCommand,
		Short:  "Run the interactive viewer on a figure read from stdin",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.RunViewer(cmd.InOrStdin())
		},
	}
}
