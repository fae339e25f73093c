package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dnastrand/geoenum/config"
	"github.com/dnastrand/geoenum/xlog"
)

var (
	cfgFile string
	verbose bool
	format  string
	seed    int64

	logger *logrus.Logger
	cfg    *config.Config
	runLog *xlog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "geoenum [scenario ...]",
	Short: "Enumerate DNA strand-displacement reaction networks under a geometric plausibility oracle",
	Long: `geoenum runs one or more built-in test scenarios through the geometric
enumerator and prints the resulting chemical reaction network.

With no scenario names given, every built-in scenario runs in order.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logrus.New()
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.WithError(err).Warn("failed to load config, using defaults")
			cfg = config.Default()
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		runLog = xlog.New(verbose)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			for _, s := range scenarios {
				names = append(names, s.name)
			}
		}

		for _, name := range names {
			s, ok := scenarioByName(name)
			if !ok {
				return fmt.Errorf("unknown scenario %q", name)
			}
			out, err := runScenario(s, cfg, format, runLog)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format: text or dot")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "RNG seed for the plausibility oracle")
}

// exitCodeFor maps an error to a process exit code per spec.md §6: 0 on
// success, nonzero on any fatal error.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	type fataler interface{ Fatal() bool }
	var f fataler
	if errors.As(err, &f) && f.Fatal() {
		return 2
	}
	return 1
}
