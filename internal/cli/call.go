package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"bridge-generator/internal/callsite"
)

func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <file.yaml>",
		Short: "Render a C call wrapped in the closures its arguments need",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			call, err := callsite.LoadFile(args[0], a.registry)
			if err != nil {
				return err
			}

			log.Debug().Str("callee", call.Callee).Int("args", len(call.Args)).Msg("Rendering call")

			code := callsite.Code(call, callsite.Options{Indent: a.cfg.Indent, Prefix: a.cfg.Prefix})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), code)

			return err
		},
	}
}
