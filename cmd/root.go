package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/rail44/lessons/internal/config"
	"github.com/rail44/lessons/internal/log"
	"github.com/rail44/lessons/internal/menu"
)

// app holds what the commands share once flags are parsed
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "lessons",
		Short: "Small numeric and text exercises behind a text menu",
		Long: `Lessons is an interactive teaching tool. Run it without arguments to get a
menu of exercises (pi, square roots, primes, grade statistics, tax brackets,
quadratic equations, sums of squares and a file counter), or run a single
exercise directly with one of the subcommands.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is "+config.FileName+" in the current or a parent directory)")
	flags.String("log-level", "", "log level: error, warn, info or debug")
	flags.Bool("plain", false, "disable styled output")

	a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	a.v.BindPFlag("plain", flags.Lookup("plain"))
	a.v.SetEnvPrefix("LESSONS")
	a.v.AutomaticEnv()

	rootCmd.AddCommand(
		newMenuCmd(a),
		newPiCmd(a),
		newSqrtCmd(),
		newPrimeCmd(),
		newPrimesCmd(),
		newTaxCmd(),
		newQuadraticCmd(),
		newSumSquaresCmd(),
		newCountCmd(),
		newWatchCmd(),
	)
	return rootCmd
}

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu (the default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}
}

// initConfig loads lessons.toml, applies flag and environment overrides
// and sets up logging
func (a *app) initConfig() error {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.LoadFile(a.cfgFile)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return err
	}
	if err := cfg.Override(a.v); err != nil {
		return err
	}

	if err := log.SetLevel(cfg.Level()); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}
	if cfg.Source != "" {
		log.Debug("using config file", slog.String("path", cfg.Source))
	}

	a.cfg = cfg
	return nil
}

func (a *app) runMenu(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	m := menu.New(menu.Options{
		In:       cmd.InOrStdin(),
		Out:      out,
		Farewell: a.cfg.FarewellMessage(),
		Styled:   a.styled(out),
	})
	return m.Run()
}

// styled reports whether w is a terminal and styling is not turned off
func (a *app) styled(w io.Writer) bool {
	if a.cfg.Plain {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
