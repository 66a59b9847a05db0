package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bridge-generator/conversion"
	"bridge-generator/internal/ctype"
)

func newSelectCmd() *cobra.Command {
	var (
		category string
		cType    string
		param    conversion.Param
	)

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Pick the strategy for a parameter declaration",
		Example: `  bridge-generator select --category structure --pointer --optional
  bridge-generator select --ctype size_t --length`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch {
			case cType != "":
				nt := ctype.NativeType{Name: cType}
				param.Category = nt.Category()
				param.SizeT = param.SizeT || nt.IsSize()

				fmt.Fprintf(out, "swift type: %s\n", nt.SwiftName())
			case category != "":
				c, err := conversion.ParseCategory(category)
				if err != nil {
					return err
				}

				param.Category = c
			default:
				return fmt.Errorf("either --category or --ctype is required")
			}

			s, err := conversion.Select(param)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out, "strategy: %s\n", s)

			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Type category (native, enum, bitmask, string, structure, object, callback)")
	cmd.Flags().StringVar(&cType, "ctype", "", "Native C type name, implies --category native")
	cmd.Flags().BoolVar(&param.Array, "array", false, "Parameter points to an array")
	cmd.Flags().BoolVar(&param.Optional, "optional", false, "Parameter may be nil")
	cmd.Flags().BoolVar(&param.Pointer, "pointer", false, "Parameter is passed by address")
	cmd.Flags().BoolVar(&param.Length, "length", false, "Parameter is the element count of an array")
	cmd.Flags().BoolVar(&param.SizeT, "size-t", false, "Element count is size_t")

	return cmd
}
