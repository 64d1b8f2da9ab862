// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/joomcode/errorx"
	"github.com/spf13/cobra"

	"github.com/raven-assistant/ravenctl/cmd/ravenctl/commands/version"
	"github.com/raven-assistant/ravenctl/internal/config"
	"github.com/raven-assistant/ravenctl/internal/doctor"
	"github.com/raven-assistant/ravenctl/pkg/logx"
)

// examples:
// ./ravenctl install
// ./ravenctl install --yes --delegate install.py
// ./ravenctl check
// ./ravenctl uninstall --yes

var (
	// Used for flags.
	flagConfig       string
	flagVersion      bool
	flagOutputFormat string

	rootCmd = &cobra.Command{
		Use:   "ravenctl",
		Short: "Installer and launcher for the R.A.V.E.N. voice and vision assistant",
		Long:  "R.A.V.E.N. Control - installs, checks and removes the desktop voice and vision assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagVersion {
				version.PrintVersion(cmd, flagOutputFormat)
				return nil
			}

			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path")

	// support '--version', '-v' to show version information
	rootCmd.PersistentFlags().BoolVarP(&flagVersion, "version", "v", false, "Show version")
	rootCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output", "o", "yaml", "Output format (yaml|json)")

	// disable command sorting to keep the order of commands as added
	cobra.EnableCommandSorting = false

	// add subcommands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(version.GetCmd())
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	if ctx == nil {
		return errorx.IllegalArgument.New("context is required")
	}

	cobra.OnInitialize(func() {
		initConfig(ctx)
	})

	// execute the root command
	_, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		return errorx.IllegalState.Wrap(err, "failed to execute command")
	}

	return nil
}

func initConfig(ctx context.Context) {
	var err error
	err = config.Initialize(flagConfig)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}

	logConfig := config.Get().Log
	err = logx.Initialize(logConfig)
	if err != nil {
		doctor.CheckErr(ctx, err)
	}
}
