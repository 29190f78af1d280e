package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renproject/sharecheck/field"
	"github.com/renproject/sharecheck/internal/config"
	"github.com/renproject/sharecheck/poly"
)

type polysolveOptions struct {
	options
	method string
	export string
	field  bool
}

// NewPolysolveCommand returns the command that reports the coefficients of
// the polynomial through the first k points of a dataset.
func NewPolysolveCommand() *cobra.Command {
	var opts polysolveOptions

	cmd := &cobra.Command{
		Use:           "polysolve",
		Short:         "Reconstruct the polynomial through the first k points of a dataset",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPolysolve(cmd, &opts)
		},
	}

	opts.register(cmd)
	flags := cmd.Flags()
	flags.StringVarP(&opts.method, "method", "m", config.MethodGauss, "reconstruction method, gauss or lagrange")
	flags.StringVarP(&opts.export, "export", "o", "", "also write the polynomial in binary form to this file")
	flags.BoolVar(&opts.field, "field", false, "also project the constant term into the secp256k1 scalar field")
	return cmd
}

type fieldResult struct {
	Secret     string `json:"secret"`
	Consistent bool   `json:"consistent"`
}

type polysolveResult struct {
	K            int          `json:"k"`
	Coefficients []string     `json:"coefficients"`
	Polynomial   string       `json:"polynomial"`
	Field        *fieldResult `json:"field,omitempty"`
}

func runPolysolve(cmd *cobra.Command, opts *polysolveOptions) error {
	s, err := newSession(cmd, &opts.options, func(cfg *config.Config) {
		if cmd.Flags().Changed("method") {
			cfg.Method = opts.method
		}
		if cmd.Flags().Changed("export") {
			cfg.Export = opts.export
		}
		if cmd.Flags().Changed("field") {
			cfg.Field = opts.field
		}
	})
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.reconstruct()
	if err != nil {
		return err
	}

	res := polysolveResult{
		K:            s.k,
		Coefficients: make([]string, len(p)),
		Polynomial:   p.String(),
	}
	for i, c := range p {
		res.Coefficients[i] = c.String()
	}

	if s.cfg.Field {
		secret, ok, err := field.CrossCheck(p, s.dataset.Shares, s.k)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Warnw("field reconstruction disagrees with the rational one")
		}
		res.Field = &fieldResult{Secret: secret.Int().String(), Consistent: ok}
	}

	if s.cfg.Export != "" {
		if err := poly.WriteFile(s.cfg.Export, p); err != nil {
			return err
		}
		s.logger.Infow("exported polynomial", "path", s.cfg.Export)
	}

	if s.cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(s.out, "Coefficients (a0 ... a%v):\n", len(p)-1)
	fmt.Fprintln(s.out, strings.Join(res.Coefficients, " "))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Polynomial:")
	fmt.Fprintln(s.out, res.Polynomial)
	if res.Field != nil {
		fmt.Fprintln(s.out)
		fmt.Fprintf(s.out, "Field secret (secp256k1): %v\n", res.Field.Secret)
		if res.Field.Consistent {
			fmt.Fprintln(s.out, "Field cross-check: consistent")
		} else {
			fmt.Fprintln(s.out, "Field cross-check: INCONSISTENT")
		}
	}
	return nil
}
