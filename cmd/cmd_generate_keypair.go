package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/pkg/solana"
	"github.com/spf13/cobra"
)

type generateKeypairCmdOptions struct {
	Path  string
	Force bool
}

func NewGenerateKeypairCommand() *cobra.Command {
	opts := &generateKeypairCmdOptions{}

	cmd := &cobra.Command{
		Use:   "generate-keypair",
		Short: "Generate a new service wallet keypair file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateKeypairHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Path, "path", "/data/keys/id.json", `Path to save the keypair file`)
	flags.BoolVar(&opts.Force, "force", false, "Replace an existing keypair without prompt")

	return cmd
}

func generateKeypairHandler(opts *generateKeypairCmdOptions, cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating keypair\n")

	if _, err := os.Stat(opts.Path); err == nil && !opts.Force {
		fmt.Fprintf(out, "Existing keypair found at %s\n[WARNING] THE EXISTING KEYPAIR WILL BE LOST\nType [replace] to replace existing keypair: ", opts.Path)
		var ans string
		fmt.Scanln(&ans)
		if ans != "replace" {
			fmt.Fprintf(out, "Keypair generation aborted\n")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return errors.Wrap(err, "create directory")
	}

	keypair, err := solana.NewKeypair()
	if err != nil {
		return errors.Wrap(err, "generate keypair")
	}
	if err := keypair.Save(opts.Path); err != nil {
		return errors.Wrap(err, "write keypair file")
	}

	fmt.Fprintf(out, "Public key: %s\n", keypair.PublicKey())
	fmt.Fprintf(out, "Keypair saved at %s\n", opts.Path)
	return nil
}
