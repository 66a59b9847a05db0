package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridge-generator/conversion"
	"bridge-generator/internal/catalog"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <catalog.yaml>",
		Short: "Validate a conversion catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := catalog.Validate(f, conversion.Default())

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if diags.HasErrors() {
				return fmt.Errorf("catalog %s has %d error(s)", args[0], len(diags.Errors))
			}

			fmt.Fprintf(out, "catalog %s is valid (%d conversions)\n", args[0], len(f.Conversions))

			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active conversions as a catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := catalog.FromRegistry(a.registry)

			if output != "" {
				return catalog.WriteFile(f, output)
			}

			data, err := catalog.Marshal(f)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
