package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockberries/icon-sdk-go/types"
)

func convertCmd(_ *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between ICX amounts and hex loop quantities",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:     "to-hex <icx>",
			Short:   "Convert a decimal ICX amount to a 0x loop quantity",
			Example: "iconsign convert to-hex 12.317",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := types.ICXToHex(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			},
		},
		&cobra.Command{
			Use:     "from-hex <quantity>",
			Short:   "Convert a hex loop quantity to ICX",
			Example: "iconsign convert from-hex 0xde0b6b3a7640000",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := types.HexToICX(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.String())
				return nil
			},
		},
	)
	return cmd
}
