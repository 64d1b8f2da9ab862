// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/cobra"

	"github.com/raven-assistant/ravenctl/cmd/ravenctl/commands/common"
	"github.com/raven-assistant/ravenctl/internal/config"
	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/internal/workflows"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/plock"
)

var (
	flagUninstallYes        bool
	flagUninstallProjectDir string

	uninstallCmd = &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the R.A.V.E.N. installation",
		Long: "Remove the virtual environment, downloaded models, launcher scripts and " +
			"install state. System packages and the Ollama runtime are left untouched",
		RunE: runUninstall,
	}
)

func init() {
	common.FlagAssumeYes.SetVar(uninstallCmd, &flagUninstallYes, false)
	common.FlagProjectDir.SetVar(uninstallCmd, &flagUninstallProjectDir, false)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	config.OverrideInstallerConfig(config.InstallerConfig{
		ProjectDir: flagUninstallProjectDir,
		AssumeYes:  flagUninstallYes,
	})

	cfg := config.Get().Installer
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.ProjectDir != "" {
		core.SetProjectDir(cfg.ProjectDir)
	}

	if !confirmOrCancel(cmd, cfg.AssumeYes,
		"This will remove the R.A.V.E.N. virtual environment, models and launcher scripts. Continue?",
		"Uninstall cancelled.") {
		return nil
	}

	lock, err := plock.NewLock(installLockName, core.LocksDir())
	if err != nil {
		return err
	}
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logx.As().Warn().Err(err).Msg("Failed to release install lock")
		}
	}()

	b, err := workflows.NewUninstallWorkflow()
	if err != nil {
		return err
	}

	common.RunWorkflow(cmd.Context(), b)

	cmd.Println("Uninstall completed successfully")

	return nil
}
