// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/cobra"

	"github.com/raven-assistant/ravenctl/cmd/ravenctl/commands/common"
	"github.com/raven-assistant/ravenctl/internal/config"
	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/internal/workflows"
)

var (
	flagCheckProjectDir   string
	flagCheckWhisperModel string
	flagCheckOllamaModels []string

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Diagnose a R.A.V.E.N. installation",
		Long: "Check that the virtual environment, pip, Ollama and the required models " +
			"are in place, and report every issue found",
		RunE: runCheck,
	}
)

func init() {
	common.FlagProjectDir.SetVar(checkCmd, &flagCheckProjectDir, false)
	common.FlagWhisperModel.SetVar(checkCmd, &flagCheckWhisperModel, false)
	common.FlagOllamaModels.SetVar(checkCmd, &flagCheckOllamaModels, false)
}

func runCheck(cmd *cobra.Command, args []string) error {
	config.OverrideInstallerConfig(config.InstallerConfig{
		ProjectDir:   flagCheckProjectDir,
		WhisperModel: flagCheckWhisperModel,
		OllamaModels: flagCheckOllamaModels,
	})

	cfg := config.Get().Installer
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.ProjectDir != "" {
		core.SetProjectDir(cfg.ProjectDir)
	}

	common.RunWorkflow(cmd.Context(), workflows.NewCheckWorkflow(cfg))

	cmd.Println("All checks passed")

	return nil
}
