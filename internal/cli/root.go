package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"bridge-generator/conversion"
	"bridge-generator/internal/catalog"
	"bridge-generator/internal/config"
	"bridge-generator/internal/logging"
)

// app is the state shared by all sub-commands, filled in before any of them runs.
type app struct {
	cfg      *config.Config
	registry conversion.Registry
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
		a          = &app{}
	)

	rootCmd := &cobra.Command{
		Use:   "bridge-generator",
		Short: "Inspect and render C/Swift argument conversions",
		Long: `bridge-generator holds the conversion strategies used when generating Swift
bindings for a C API: which expression is passed to C for each argument and which
closures keep temporary buffers and C strings alive for the duration of a call.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("verbose") {
				cfg.Log.Verbosity = verbosity
			}

			logging.SetupLogger(logging.Options{
				Verbosity: cfg.Log.Verbosity,
				File:      cfg.Log.File,
				Out:       cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				pterm.DisableStyling()
			}

			a.cfg = cfg
			a.registry, err = loadRegistry(cfg)

			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (YAML or TOML)")

	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newCallCmd(a))
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExportCmd(a))

	return rootCmd
}

func loadRegistry(cfg *config.Config) (conversion.Registry, error) {
	reg := conversion.Default()
	if cfg.Catalog == "" {
		return reg, nil
	}

	f, err := catalog.LoadFile(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	log.Info().Str("catalog", cfg.Catalog).Msg("Applying conversion catalog")

	return catalog.Apply(reg, f)
}
