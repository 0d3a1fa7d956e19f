package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/soldracula/dracula/common/errs"
	"github.com/soldracula/dracula/core/constants"
	"github.com/soldracula/dracula/modules/dracula"
	"github.com/spf13/cobra"
)

var versions = map[string]string{
	"":        constants.Version,
	"dracula": dracula.Version,
}

type versionCmdOptions struct {
	Modules string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show dracula version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Modules, "module", "", `Show version of a specific module. E.g. "dracula"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, cmd *cobra.Command, _ []string) error {
	version, ok := versions[opts.Modules]
	if !ok {
		return errors.Wrap(errs.Unsupported, "Invalid module name")
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
