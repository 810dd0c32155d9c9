package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/numnet/internal/envconfig"
	"github.com/born-ml/numnet/internal/provider"
)

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List available operator providers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			def := envconfig.Provider()
			table := newTable(cmd, "NAME", "ID", "DEFAULT")
			for _, p := range provider.Available() {
				marker := ""
				if p == def {
					marker = "*"
				}
				table.Append([]string{p.String(), strconv.Itoa(int(p)), marker})
			}
			table.Render()
		},
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show environment settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			vars := envconfig.AsMap()
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			table := newTable(cmd, "NAME", "VALUE", "DESCRIPTION")
			for _, k := range keys {
				v := vars[k]
				table.Append([]string{v.Name, fmt.Sprint(v.Value), v.Description})
			}
			table.Render()
		},
	}
}
