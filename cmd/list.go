package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"extframe/internal/formatting"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <interface>",
		Short: "List the extensions registered for an interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := resolveExtensionPoint(args[0])
			if err != nil {
				return err
			}

			loaded := make(map[string]bool)
			for _, name := range ep.LoadedExtensions() {
				loaded[name] = true
			}

			names := ep.SupportedExtensions()
			extensions := make([]formatting.ExtensionInfo, 0, len(names))
			for _, name := range names {
				implID, _ := ep.ImplID(name)
				extensions = append(extensions, formatting.ExtensionInfo{
					Name:   name,
					ImplID: implID,
					Kind:   "named",
					Loaded: loaded[name],
				})
			}

			info := formatting.ExtensionPointInfo{
				InterfaceName: args[0],
				DefaultName:   ep.DefaultName(),
				Extensions:    extensions,
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatterFor().FormatExtensionPointDetail(info))
			return nil
		},
	}
}
