package cli

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List conversion strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"STRATEGY", "C VALUE", "CLOSURE", "NATIVE"}}

			for _, s := range a.registry.Strategies() {
				c := a.registry[s]
				data = append(data, []string{
					s.String(),
					c.Definition().CValue,
					strconv.FormatBool(c.RequiresClosure()),
					strconv.FormatBool(c.HasNativeValue()),
				})
			}

			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
}
