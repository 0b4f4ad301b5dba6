package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blockberries/icon-sdk-go/irc2"
	"github.com/blockberries/icon-sdk-go/transaction"
	"github.com/blockberries/icon-sdk-go/types"
)

const (
	flagTo        = "to"
	flagValue     = "value"
	flagMessage   = "message"
	flagNonce     = "nonce"
	flagTimestamp = "timestamp"
	flagToken     = "token"
)

func signCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign requests",
	}
	cmd.AddCommand(signTransferCmd(a), signTokenTransferCmd(a), signRequestCmd(a))
	return cmd
}

func signTransferCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Build and sign an ICX transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := a.wallet()
			if err != nil {
				return err
			}
			defer w.Zeroize()

			b, err := a.sendBuilder(cmd)
			if err != nil {
				return err
			}
			b.From = w.Address()
			b.Value, _ = cmd.Flags().GetString(flagValue)
			b.Message, _ = cmd.Flags().GetString(flagMessage)

			tx, err := b.Build()
			if err != nil {
				return err
			}
			if err := tx.Sign(w); err != nil {
				return err
			}
			return a.printSigned(cmd, tx)
		},
	}
	addSendFlags(cmd)
	cmd.Flags().String(flagValue, "", "amount in ICX, or a 0x loop quantity")
	cmd.Flags().String(flagMessage, "", "attach a text message")
	return cmd
}

func signTokenTransferCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token-transfer",
		Short: "Build and sign an IRC-2 token transfer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := a.wallet()
			if err != nil {
				return err
			}
			defer w.Zeroize()

			contract, _ := cmd.Flags().GetString(flagToken)
			token, err := irc2.New(types.Address(contract))
			if err != nil {
				return err
			}
			b, err := a.sendBuilder(cmd)
			if err != nil {
				return err
			}
			amount, _ := cmd.Flags().GetString(flagValue)

			tx, err := token.Transfer(irc2.Transfer{
				From:      w.Address(),
				To:        b.To,
				Amount:    amount,
				Version:   b.Version,
				NID:       b.NID,
				Nonce:     b.Nonce,
				StepLimit: b.StepLimit,
				Timestamp: b.Timestamp,
			})
			if err != nil {
				return err
			}
			if err := tx.Sign(w); err != nil {
				return err
			}
			return a.printSigned(cmd, tx)
		},
	}
	addSendFlags(cmd)
	cmd.Flags().String(flagToken, "", "IRC-2 contract address (cx...)")
	cmd.Flags().String(flagValue, "", "token amount at 18 decimals, or a 0x raw quantity")
	return cmd
}

func signRequestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "request [request.json]",
		Short: "Sign an existing JSON-RPC request read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.wallet()
			if err != nil {
				return err
			}
			defer w.Zeroize()

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tx, err := transaction.Parse(data)
			if err != nil {
				return err
			}
			if err := tx.Sign(w); err != nil {
				return err
			}
			return a.printSigned(cmd, tx)
		},
	}
}

func addSendFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagTo, "", "recipient address")
	cmd.Flags().String(flagNonce, "", "optional 0x nonce")
	cmd.Flags().String(flagTimestamp, "", "0x timestamp in microseconds (default now)")
}

// sendBuilder fills the fields shared by every icx_sendTransaction from flags and config.
func (a *app) sendBuilder(cmd *cobra.Command) (transaction.Builder, error) {
	to, _ := cmd.Flags().GetString(flagTo)
	nonce, _ := cmd.Flags().GetString(flagNonce)
	b := transaction.Builder{
		Method:    transaction.MethodSendTransaction,
		To:        types.Address(to),
		Version:   a.cfg.Version,
		NID:       a.cfg.NID,
		StepLimit: a.cfg.StepLimit,
		Nonce:     nonce,
	}

	if ts, _ := cmd.Flags().GetString(flagTimestamp); ts != "" {
		micros, err := types.ParseQuantity(ts)
		if err != nil {
			return b, fmt.Errorf("timestamp: %w", err)
		}
		if !micros.IsInt64() {
			return b, fmt.Errorf("%w: timestamp out of range", types.ErrMalformedValue)
		}
		b.Timestamp = time.UnixMicro(micros.Int64())
	}
	return b, nil
}

func (a *app) printSigned(cmd *cobra.Command, tx *transaction.Transaction) error {
	hash, err := tx.Hash()
	if err != nil {
		return err
	}
	body, err := tx.MarshalJSON()
	if err != nil {
		return err
	}

	a.logger.Info("signed request", "method", tx.Method(), "from", tx.From(), "hash", hash, "endpoint", a.cfg.Endpoint)
	fmt.Fprintln(cmd.OutOrStdout(), string(body))
	return nil
}
