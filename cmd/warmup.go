package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"extframe/pkg/logging"
)

// newWarmupCmd eagerly resolves every named extension registered for an
// interface, concurrently, so a deployment can pay instance-construction
// cost at startup rather than on the first caller's request.
func newWarmupCmd() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "warmup <interface>",
		Short: "Eagerly build every registered extension for an interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := resolveExtensionPoint(args[0])
			if err != nil {
				return err
			}

			runID := uuid.New().String()
			names := ep.SupportedExtensions()

			var s *spinner.Spinner
			quiet := outputFormat != "console"
			if !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				s.Suffix = fmt.Sprintf(" warming up %d extension(s)...", len(names))
				s.Start()
			}

			g := new(errgroup.Group)
			g.SetLimit(concurrency)
			for _, name := range names {
				name := name
				g.Go(func() error {
					_, err := ep.Get(name)
					return err
				})
			}
			err = g.Wait()

			if s != nil {
				s.Stop()
			}

			outcome := "success"
			if err != nil {
				outcome = "failure"
			}
			logging.Audit(logging.AuditEvent{
				Action:  "warmup",
				Outcome: outcome,
				Target:  args[0],
				Details: fmt.Sprintf("run=%s loaded=%d", logging.TruncateID(runID), len(ep.LoadedExtensions())),
			})

			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "warmed up %d extension(s) for %s (run %s)\n", len(names), args[0], logging.TruncateID(runID))
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "maximum number of extensions to build concurrently")

	return cmd
}
