// Package cmd defines and implements the CLI for the filecheck executable.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JakeFAU/filecheck/internal/checksum"
	"github.com/JakeFAU/filecheck/internal/clock/system"
	"github.com/JakeFAU/filecheck/internal/config"
	"github.com/JakeFAU/filecheck/internal/hash"
	"github.com/JakeFAU/filecheck/internal/id/uuid"
	"github.com/JakeFAU/filecheck/internal/input"
	"github.com/JakeFAU/filecheck/internal/logging"
	"github.com/JakeFAU/filecheck/internal/metrics"
	"github.com/JakeFAU/filecheck/internal/report"
)

// ArgumentError reports a malformed invocation. No files are read when one
// is returned.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string {
	return e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// streams are the process streams a command reads and writes.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// newRootCmd creates and configures the root command.
func newRootCmd(s streams) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "filecheck [flags] < paths.txt",
		Short: "Compute content digests for a list of files read from stdin.",
		Long: `filecheck reads one file path per line from standard input, hashes every
file in parallel and prints "<HEX_DIGEST> <path>" lines to standard output,
sorted by path, once all files have been processed.

The default digest is 64-bit wyhash. Use --sha256 (or --algorithm) for a
cryptographic digest. Per-file failures are logged to stderr and rendered with
a dashed placeholder digest unless --strict is set, in which case the first
failure stops the run with exit code 1.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &ArgumentError{Err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return &ArgumentError{Err: err}
			}
			return runChecksum(cmd.Context(), cfg, s)
		},
	}

	cmd.SetIn(s.in)
	cmd.SetOut(s.out)
	cmd.SetErr(s.err)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ArgumentError{Err: err}
	})

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	addRunFlags(flags)

	return cmd
}

func addRunFlags(flags *pflag.FlagSet) {
	flags.Bool("strict", false, "stop at the first file that cannot be hashed and exit 1")
	flags.Bool("colon", false, "separate digest bytes with ':'")
	flags.Bool("sha256", false, "use SHA-256 (same as --algorithm=sha256)")
	flags.String("algorithm", "", fmt.Sprintf("digest algorithm: %v (default %s)", hash.Algorithms(), hash.Default))
	flags.Int("concurrent-handles", 0, "maximum files open at once across all workers (0 = one per worker)")
	flags.Int("workers", 0, "number of hashing workers (0 = number of CPUs)")
	flags.String("metrics-file", "", "write Prometheus text-format run metrics to this file")
	flags.String("cpuprofile", "", "write a CPU profile to this file")
	flags.Bool("log-development", false, "human-readable console logs")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
}

func runChecksum(ctx context.Context, cfg config.Config, s streams) (err error) {
	hasher, err := hash.New(cfg.HashAlgorithm())
	if err != nil {
		return &ArgumentError{Err: err}
	}

	logger, err := logging.New(logging.Options{
		Development: cfg.Log.Development,
		Level:       cfg.Log.Level,
		Output:      zapcore.AddSync(s.err),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush

	if runID, idErr := uuid.NewUUIDGenerator().NewID(); idErr == nil {
		logger = logger.With(zap.String("run_id", runID))
	}

	if cfg.CPUProfile != "" {
		stop, profErr := startCPUProfile(cfg.CPUProfile)
		if profErr != nil {
			return profErr
		}
		defer stop()
	}

	paths, err := input.ReadPaths(s.in)
	if err != nil {
		logger.Error("read input failed", zap.Error(err))
		return err
	}
	tasks := checksum.NewTasks(paths)

	collector, err := metrics.New(hasher.Name())
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	if cfg.MetricsFile != "" {
		defer func() {
			if werr := collector.WriteTextfile(cfg.MetricsFile); werr != nil {
				logger.Error("metrics export failed", zap.String("path", cfg.MetricsFile), zap.Error(werr))
				if err == nil {
					err = werr
				}
			}
		}()
	}

	scheduler := checksum.NewScheduler(
		hasher,
		checksum.Options{
			Strict:            cfg.Strict,
			Workers:           cfg.Workers,
			ConcurrentHandles: cfg.ConcurrentHandles,
		},
		collector,
		system.New(),
		logger.Named("checksum"),
	)

	summary, err := scheduler.Run(ctx, tasks)
	fields := summaryFields(summary, hasher.Name())
	if err != nil {
		logger.Error("checksum run aborted", append(fields, zap.Error(err))...)
		return err
	}

	if err := report.Write(s.out, tasks, report.Options{Colon: cfg.Colon, DigestSize: hasher.Size()}); err != nil {
		logger.Error("write report failed", zap.Error(err))
		return err
	}
	logger.Info("checksum run complete", fields...)
	return nil
}

func summaryFields(s checksum.Summary, algorithm string) []zap.Field {
	return []zap.Field{
		zap.String("algorithm", algorithm),
		zap.Int("workers", s.Workers),
		zap.Int("tasks", s.Tasks),
		zap.Int("hashed", s.Hashed),
		zap.Int("failed", s.Failed),
		zap.Int("abandoned", s.Abandoned),
		zap.Int64("bytes", s.Bytes),
		zap.Duration("elapsed", s.Elapsed),
	}
}

func startCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start cpu profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}, nil
}

// execute runs cmd and maps the outcome to a process exit code.
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		fmt.Fprintf(stderr, "Error: %v\n%s", err, cmd.UsageString())
	}
	return 1
}

// Execute is the main entry point.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, newRootCmd(streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}), os.Stderr)
	stop()
	os.Exit(code)
}
