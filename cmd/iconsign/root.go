package main

import (
	"fmt"
	"io"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blockberries/icon-sdk-go/crypto"
)

// app carries resolved configuration into subcommands.
type app struct {
	v      *viper.Viper
	cfg    Config
	logger log.Logger
}

// NewRootCmd creates the iconsign command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "iconsign",
		Short:         "Build, sign and verify ICON JSON-RPC requests offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			a.v = v
			a.cfg = loadConfig(v)
			a.logger, err = newLogger(a.cfg, cmd.ErrOrStderr())
			return err
		},
	}
	registerConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		walletCmd(a),
		encodeCmd(a),
		signCmd(a),
		verifyCmd(a),
		convertCmd(a),
	)
	return rootCmd
}

// wallet loads the signing wallet from --private-key or ICONSIGN_PRIVATE_KEY.
func (a *app) wallet() (*crypto.Wallet, error) {
	key := a.v.GetString(flagPrivateKey)
	if key == "" {
		return nil, fmt.Errorf("a private key is required: set --%s or %s_PRIVATE_KEY", flagPrivateKey, EnvPrefix)
	}
	return crypto.WalletFromPrivateKey(key)
}

// readInput reads the named file, or stdin when the name is empty or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, nil
}
