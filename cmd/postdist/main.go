package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"postcode-distance/internal/adapters/geocode"
	"postcode-distance/internal/bootstrap"
	"postcode-distance/internal/config"
	"postcode-distance/internal/platform/logger"
	"postcode-distance/internal/services"

	"github.com/spf13/cobra"
)

// errUnresolved signals a reported resolution failure; the message has
// already been printed, so main only sets the exit status.
var errUnresolved = errors.New("postcode could not be resolved")

type options struct {
	logPath string
	baseURL string
	sink    string
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "postdist [postcodeA postcodeB]",
		Short: "Great-circle distance in miles between two UK postcodes",
		Long: `postdist resolves two UK postcodes to coordinates through postcodes.io and
prints the Haversine distance between them in miles. Without arguments the
configured POSTCODE_A and POSTCODE_B are used.`,
		Args:          zeroOrTwoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, out, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.logPath, "log-path", "", "file the outcome is appended to (overrides LOG_PATH)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "postcode lookup service base URL (overrides SERVICE_BASE_URL)")
	cmd.Flags().StringVar(&opts.sink, "sink", "", "record sink: file, postgres or sqlite (overrides RECORD_SINK)")

	return cmd
}

func zeroOrTwoArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("expected 0 or 2 postcodes, got %d", len(args))
	}
	return nil
}

func run(cmd *cobra.Command, out io.Writer, opts options, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-path") {
		cfg.LogPath = opts.logPath
	}
	if flags.Changed("base-url") {
		cfg.ServiceBaseURL = opts.baseURL
	}
	if flags.Changed("sink") {
		cfg.RecordSink = opts.sink
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	log := logger.Get()

	a, b := cfg.PostcodeA, cfg.PostcodeB
	if len(args) == 2 {
		a, b = args[0], args[1]
	}

	resolver, err := geocode.NewPostcodesIOResolver(cfg.ServiceBaseURL, cfg.LookupTimeout)
	if err != nil {
		return err
	}

	sink, closeSink, err := bootstrap.OpenSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSink(); err != nil {
			log.Warn().Err(err).Msg("close record sink")
		}
	}()

	miles, ok := services.DistanceBetweenPostcodes(ctx, resolver, a, b)
	if err := services.Report(ctx, out, sink, a, b, miles, ok); err != nil {
		return err
	}

	log.Debug().
		Str("postcode_a", a).
		Str("postcode_b", b).
		Bool("success", ok).
		Float64("miles", miles).
		Msg("distance calculated")

	if !ok {
		return errUnresolved
	}
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errUnresolved) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
