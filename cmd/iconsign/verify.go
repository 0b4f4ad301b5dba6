package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockberries/icon-sdk-go/transaction"
)

func verifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [request.json]",
		Short: "Check that a signed request was signed by its from address",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tx, err := transaction.Parse(data)
			if err != nil {
				return err
			}
			if err := tx.Verify(); err != nil {
				a.logger.Warn("signature rejected", "method", tx.Method(), "from", tx.From(), "err", err)
				return err
			}

			hash, err := tx.Hash()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid signature from %s\n", tx.From())
			fmt.Fprintf(cmd.OutOrStdout(), "hash: %s\n", hash)
			return nil
		},
	}
}
