package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockberries/icon-sdk-go/crypto"
)

const flagShowPrivate = "show-private"

func walletCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Create or inspect wallets",
	}
	cmd.AddCommand(walletNewCmd(a), walletShowCmd(a))
	return cmd
}

func walletNewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := crypto.NewWallet()
			if err != nil {
				return err
			}
			defer w.Zeroize()

			showPrivate, _ := cmd.Flags().GetBool(flagShowPrivate)
			printWallet(cmd, w, showPrivate)
			a.logger.Info("generated wallet", "address", w.Address())
			return nil
		},
	}
	cmd.Flags().Bool(flagShowPrivate, false, "also print the private key")
	return cmd
}

func walletShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the address and public key of the configured private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := a.wallet()
			if err != nil {
				return err
			}
			defer w.Zeroize()

			printWallet(cmd, w, false)
			return nil
		},
	}
}

func printWallet(cmd *cobra.Command, w *crypto.Wallet, showPrivate bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "address:     %s\n", w.Address())
	fmt.Fprintf(out, "public key:  %s\n", w.PublicKeyHex())
	if showPrivate {
		fmt.Fprintf(out, "private key: %s\n", w.PrivateKeyHex())
	}
}
