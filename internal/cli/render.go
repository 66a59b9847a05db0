package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridge-generator/conversion"
	"bridge-generator/internal/errors"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		value  string
		prefix string
		native bool
	)

	cmd := &cobra.Command{
		Use:   "render <strategy> <name>",
		Short: "Render the templates of one strategy",
		Example: `  bridge-generator render string label --value descriptor.label
  bridge-generator render enum format --native --value rawFormat`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := conversion.ParseStrategy(args[0])
			if err != nil {
				return err
			}

			c, ok := a.registry.Lookup(strategy)
			if !ok {
				return errors.Newf(errors.ErrUnknownStrategy, "strategy %s is not registered", strategy)
			}

			name := args[1]
			out := cmd.OutOrStdout()

			if native {
				if !c.HasNativeValue() {
					return errors.Newf(errors.ErrMissingNativeTemplate, "strategy %s cannot reconstruct native values", strategy)
				}

				if value == "" {
					value = name
				}

				_, err = fmt.Fprintln(out, c.NativeValue(value))

				return err
			}

			if !cmd.Flags().Changed("prefix") {
				prefix = a.cfg.Prefix
			}

			renderArgs := []conversion.Arg{conversion.Value(value), conversion.Prefix(prefix)}

			if c.RequiresClosure() {
				fmt.Fprintf(out, "head:    %s\n", c.ClosureHead(name, renderArgs...))
			}

			fmt.Fprintf(out, "c_value: %s\n", c.CValue(name, renderArgs...))

			if c.RequiresClosure() {
				fmt.Fprintf(out, "tail:    %s\n", c.ClosureTail(name, renderArgs...))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Expression to convert (defaults to prefix + name)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Prefix for the derived value (defaults to the configured prefix)")
	cmd.Flags().BoolVar(&native, "native", false, "Render the native value reconstruction instead")

	return cmd
}
