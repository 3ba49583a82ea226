package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/stoich/internal/adapters/fs"
	"github.com/bft-labs/stoich/internal/app"
	"github.com/bft-labs/stoich/internal/cliconfig"
	"github.com/bft-labs/stoich/internal/metrics"
	"github.com/bft-labs/stoich/internal/ports"
	"github.com/bft-labs/stoich/pkg/batch"
	"github.com/bft-labs/stoich/pkg/log"
	"github.com/bft-labs/stoich/pkg/reaction"
)

var errInputConflict = errors.New("input given both as argument and --input flag")

var longHelp = strings.TrimSpace(`
Compute aspirin yield for a batch of salicylic acid + acetic anhydride reactions.

Each input record gives the two reactant masses in grams and the catalyst
efficiency in percent. Results are written as JSON Lines, one object per valid
record, tagged with the record's 1-based position. Invalid records are logged
and skipped; the rest of the batch still runs.

Input formats: .json (array), .jsonl/.ndjson (one object per line), .yaml/.yml.
Use "-" to read a JSON array from stdin. Configure via file, env (STOICH_*) or flags.
`)

var exampleUsage = strings.TrimSpace(`
  stoich batch.yaml
  stoich --input batch.jsonl --output results.jsonl --summary summary.json --workers 4
  stoich --config $HOME/.stoich/config.toml --watch
  stoich calc --salicylic-acid 100 --acetic-anhydride 150 --efficiency 85
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		logger := log.NewConsoleLogger(os.Stderr, "info")
		logger.Error().Err(err).Msg("stoich")
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "stoich [input]",
		Short:         "Compute aspirin synthesis yield for a batch of reactions",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) == 1 {
				if changed["input"] {
					return errInputConflict
				}
				cfg.Input = args[0]
				changed["input"] = true
			}

			// file first (default $HOME/.stoich/config.toml), then env, flags win over both
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			zl := log.NewConsoleLogger(stderr, cfg.LogLevel)
			zl.Debug().Interface("config", cfg).Msg("configuration")
			return runBatch(cmd.Context(), cfg, log.NewZerologLogger(zl), stdout)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.stoich/config.toml)")
	root.Flags().StringVarP(&cfg.Input, "input", "i", cfg.Input, "batch file (.json, .jsonl, .yaml) or - for stdin")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "results file, JSON Lines (default: stdout)")
	root.Flags().StringVar(&cfg.SummaryFile, "summary", cfg.SummaryFile, "write a run summary JSON to this path")
	root.Flags().StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write Prometheus textfile metrics to this path")
	root.Flags().IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "records calculated in parallel")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run whenever the input file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period before re-running in watch mode")
	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero if any record is invalid")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(newCalcCmd(stdout))
	return root
}

func runBatch(ctx context.Context, cfg cliconfig.Config, logger ports.Logger, stdout io.Writer) error {
	results := fs.NewResultsWriter(stdout)
	if cfg.Output != "" {
		results = fs.NewResultsFile(cfg.Output)
	}

	deps := app.Deps{
		Source:    fs.NewInputFile(cfg.Input),
		Results:   results,
		Runner:    batch.NewRunner(batch.WithLogger(logger), batch.WithWorkers(cfg.Workers)),
		Logger:    logger,
		InputName: cfg.Input,
		Strict:    cfg.Strict,
	}
	if cfg.SummaryFile != "" {
		deps.Summary = fs.NewSummaryFile(cfg.SummaryFile)
	}
	if cfg.MetricsFile != "" {
		deps.Metrics = metrics.NewRecorder(cfg.MetricsFile)
	}

	a, err := app.New(deps)
	if err != nil {
		return err
	}

	if cfg.Watch {
		logger.Info("watching input", log.String("path", cfg.Input))
		return a.Watch(ctx, cfg.Input, cfg.Debounce)
	}

	_, err = a.RunOnce(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("received signal, stopping...")
		return nil
	}
	return err
}

func newCalcCmd(stdout io.Writer) *cobra.Command {
	var in reaction.Input

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a single reaction and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := reaction.Calculate(in)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().Float64Var(&in.SalicylicAcidMass, "salicylic-acid", 0, "salicylic acid mass in grams")
	cmd.Flags().Float64Var(&in.AceticAnhydrideMass, "acetic-anhydride", 0, "acetic anhydride mass in grams")
	cmd.Flags().Float64Var(&in.CatalystEfficiency, "efficiency", 100, "catalyst efficiency in percent (0, 100]")
	for _, name := range []string{"salicylic-acid", "acetic-anhydride"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
