// continenttimeは大陸ごとの滞在を記録して、大陸ごとの滞在日数を表示する。
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	cfg    Config
	logger *zap.Logger

	// 全コマンド共通のフラグ
	verbose bool
	stays   []string
	file    string
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "continenttime",
		Short: "Track the days spent on each continent",
		Long: `continenttime builds a ledger of stays from --stay flags and an
optional YAML file, then reports on it. Stays must not overlap.

A stay is written as CONTINENT,START,END with dates in YYYY-MM-DD form.
START,END alone uses the default continent (CONTINENTTIME_CONTINENT, Europe).

Example:
  continenttime summary --year 2024 \
    --stay Europe,2024-01-01,2024-03-31 \
    --stay "Asia,2024-04-01,2024-12-31"`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if a.verbose || a.cfg.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringArrayVarP(&a.stays, "stay", "s", nil, "stay as CONTINENT,START,END (repeatable)")
	flags.StringVarP(&a.file, "file", "f", "", "YAML file listing stays")

	root.AddCommand(
		newSummaryCmd(a),
		newRangesCmd(a),
		newListCmd(a),
		newContinentsCmd(a),
	)
	return root
}

func main() {
	cfg, err := loadConfig(time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(&app{cfg: cfg}).Execute(); err != nil {
		os.Exit(1)
	}
}
