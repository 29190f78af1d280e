// Package cli implements the polysolve and pointcheck commands. Both read a
// dataset, reconstruct the polynomial from its first k points and differ
// only in what they report.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/renproject/sharecheck"
	"github.com/renproject/sharecheck/internal/config"
	"github.com/renproject/sharecheck/internal/ingest"
	"github.com/renproject/sharecheck/internal/logging"
	"github.com/renproject/sharecheck/linsys"
	"github.com/renproject/sharecheck/poly"
)

const singularHint = "Try a different subset of k points."

// Execute runs the command and reports a failure on its error stream. It
// returns the process exit code.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error (%v): %v\n", sharecheck.KindOf(err), err)
	if errors.Is(err, linsys.ErrSingular) {
		fmt.Fprintln(cmd.ErrOrStderr(), singularHint)
	}
	return 1
}

// options are the flags shared by both commands.
type options struct {
	input      string
	configPath string
	debug      bool
	format     string
	k          int
}

func (opts *options) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "-", "dataset to read, - for stdin")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.BoolVar(&opts.debug, "debug", false, "enable development logging at debug level")
	flags.StringVarP(&opts.format, "format", "f", config.FormatText, "output format, text or json")
	flags.IntVar(&opts.k, "k", 0, "threshold, overriding the one declared in the dataset")
}

// session is everything a command needs once its flags and config are
// resolved and the dataset has been read.
type session struct {
	cfg     config.Config
	logger  *zap.SugaredLogger
	dataset ingest.Dataset
	k       int
	out     io.Writer
}

// loadConfig reads the config file, if any, and lets every flag set on the
// command line override it.
func loadConfig(cmd *cobra.Command, opts *options, override func(*config.Config)) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = opts.format
	}
	if opts.debug {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
	}
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newSession(cmd *cobra.Command, opts *options, override func(*config.Config)) (*session, error) {
	cfg, err := loadConfig(cmd, opts, override)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	var ds ingest.Dataset
	if opts.input == "" || opts.input == "-" {
		logger.Debugw("reading dataset", "input", "stdin")
		ds, err = ingest.Read(cmd.InOrStdin())
	} else {
		logger.Debugw("reading dataset", "input", opts.input)
		ds, err = ingest.ReadFile(opts.input)
	}
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	k := ds.K
	if cmd.Flags().Changed("k") {
		k = opts.k
	}
	if ds.N != 0 && ds.N != ds.Shares.Len() {
		logger.Warnw("declared point count differs from the points read",
			"declared", ds.N, "read", ds.Shares.Len())
	}
	logger.Debugw("dataset read", "points", ds.Shares.Len(), "k", k)

	return &session{
		cfg:     cfg,
		logger:  logger,
		dataset: ds,
		k:       k,
		out:     cmd.OutOrStdout(),
	}, nil
}

// reconstruct builds the polynomial from the first k points with the
// configured method.
func (s *session) reconstruct() (poly.Poly, error) {
	if selected, err := s.dataset.Shares.Select(s.k); err == nil {
		s.logger.Debugw("selected points", "points", selected.String(), "method", s.cfg.Method)
	}

	var (
		p   poly.Poly
		err error
	)
	switch s.cfg.Method {
	case config.MethodLagrange:
		p, err = sharecheck.ReconstructLagrange(s.dataset.Shares, s.k)
	default:
		p, err = sharecheck.Reconstruct(s.dataset.Shares, s.k)
	}
	if err != nil {
		s.logger.Debugw("reconstruction failed", "kind", sharecheck.KindOf(err), "err", err)
		return nil, err
	}
	s.logger.Debugw("reconstructed polynomial", "poly", p.String())
	return p, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}
