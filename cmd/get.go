package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"extframe/internal/formatting"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <interface> <name>",
		Short: "Resolve and describe one registered extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			interfaceName, name := args[0], args[1]

			ep, err := resolveExtensionPoint(interfaceName)
			if err != nil {
				return err
			}
			if !ep.HasExtension(name) {
				return fmt.Errorf("no such extension %q for %s", name, interfaceName)
			}

			if _, err := ep.Get(name); err != nil {
				return err
			}

			implID, _ := ep.ImplID(name)
			loaded := false
			for _, n := range ep.LoadedExtensions() {
				if n == name {
					loaded = true
					break
				}
			}

			info := formatting.ExtensionInfo{
				Name:   name,
				ImplID: implID,
				Kind:   "named",
				Loaded: loaded,
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatterFor().FormatExtensionDetail(info))
			return nil
		},
	}
}
