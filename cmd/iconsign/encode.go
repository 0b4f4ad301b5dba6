package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockberries/icon-sdk-go/transaction"
)

func encodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [request.json]",
		Short: "Print the canonical pre-image and hash of a JSON-RPC request",
		Long: `Reads a JSON-RPC request ({"method": ..., "params": {...}}) from a file or
stdin and prints the serialization that is hashed and signed, followed by its
SHA3-256 hash. Any signature param is ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tx, err := transaction.Parse(data)
			if err != nil {
				return err
			}
			preImage, err := tx.PreImage()
			if err != nil {
				return err
			}
			hash, err := tx.Hash()
			if err != nil {
				return err
			}

			a.logger.Debug("encoded request", "method", tx.Method(), "hash", hash)
			fmt.Fprintln(cmd.OutOrStdout(), string(preImage))
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
