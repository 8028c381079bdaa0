package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"extframe/internal/formatting"
	"extframe/pkg/spi"
)

func newActivateCmd() *cobra.Command {
	var group string
	var values string
	var urlQuery string
	var protocol string

	cmd := &cobra.Command{
		Use:   "activate <interface>",
		Short: "Run the Activate Selector against a synthesized URL and print the ordered result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := resolveExtensionPoint(args[0])
			if err != nil {
				return err
			}

			url := spi.ParseURL(protocol, urlQuery)

			var valueList []string
			if values != "" {
				valueList = strings.Split(values, ",")
			}

			names := ep.GetActivateNames(url, valueList, group)

			activations := make([]formatting.ActivationInfo, 0, len(names))
			for _, name := range names {
				order, _ := ep.ActivateOrder(name)
				activations = append(activations, formatting.ActivationInfo{
					Name:  name,
					Order: order,
					Group: group,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatterFor().FormatActivationsList(activations))
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "caller group to filter activate-tagged extensions by")
	cmd.Flags().StringVar(&values, "values", "", "comma-separated explicit names (supports \"default\" and \"-name\")")
	cmd.Flags().StringVar(&urlQuery, "url", "", "URL query string (k=v&k2=v2) consulted for key matching")
	cmd.Flags().StringVar(&protocol, "protocol", "", "protocol discriminator for the synthesized URL")

	return cmd
}
