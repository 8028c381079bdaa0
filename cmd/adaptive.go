package cmd

import (
	"github.com/spf13/cobra"

	"extframe/pkg/spi"
)

func newAdaptiveCmd() *cobra.Command {
	var urlQuery string
	var protocol string
	var method string

	cmd := &cobra.Command{
		Use:   "adaptive <interface>",
		Short: "Resolve which extension an adaptive method call would dispatch to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := resolveExtensionPoint(args[0])
			if err != nil {
				return err
			}

			url := spi.ParseURL(protocol, urlQuery)

			name, err := ep.ResolveAdaptiveName(method, url)
			if err != nil {
				return err
			}

			return formatterFor().FormatData(map[string]interface{}{
				"interface":   args[0],
				"method":      method,
				"url":         url.String(),
				"resolved_to": name,
			})
		},
	}

	cmd.Flags().StringVar(&urlQuery, "url", "", "URL query string (k=v&k2=v2) consulted for adaptive key resolution")
	cmd.Flags().StringVar(&protocol, "protocol", "", "protocol discriminator for the synthesized URL")
	cmd.Flags().StringVar(&method, "method", "", "adaptive method name to resolve (required)")
	cmd.MarkFlagRequired("method")

	return cmd
}
