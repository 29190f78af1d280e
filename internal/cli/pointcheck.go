package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renproject/sharecheck"
	"github.com/renproject/sharecheck/internal/config"
)

const (
	consistentMessage   = "No wrong data points. All provided points are consistent with the polynomial built from the first k points."
	inconsistentMessage = "Wrong Data Set Points (x values): "
)

// NewPointcheckCommand returns the command that reports the points of a
// dataset that do not lie on the polynomial through its first k points.
func NewPointcheckCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "pointcheck",
		Short:         "Find the points of a dataset inconsistent with its first k points",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPointcheck(cmd, &opts)
		},
	}

	opts.register(cmd)
	return cmd
}

type pointcheckResult struct {
	K            int      `json:"k"`
	Points       int      `json:"points"`
	Polynomial   string   `json:"polynomial"`
	Consistent   bool     `json:"consistent"`
	Inconsistent []uint64 `json:"inconsistent"`
}

func runPointcheck(cmd *cobra.Command, opts *options) error {
	s, err := newSession(cmd, opts, nil)
	if err != nil {
		return err
	}
	defer s.close()

	p, err := s.reconstruct()
	if err != nil {
		return err
	}
	wrong := sharecheck.Check(p, s.dataset.Shares)
	s.logger.Debugw("checked points", "points", s.dataset.Shares.Len(), "inconsistent", len(wrong))

	if s.cfg.Format == config.FormatJSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(pointcheckResult{
			K:            s.k,
			Points:       s.dataset.Shares.Len(),
			Polynomial:   p.String(),
			Consistent:   len(wrong) == 0,
			Inconsistent: wrong,
		})
	}

	if len(wrong) == 0 {
		fmt.Fprintln(s.out, consistentMessage)
		return nil
	}
	xs := make([]string, len(wrong))
	for i, x := range wrong {
		xs[i] = strconv.FormatUint(x, 10)
	}
	fmt.Fprintln(s.out, inconsistentMessage+strings.Join(xs, ", "))
	return nil
}
