// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/automa-saga/automa"
	"github.com/spf13/cobra"

	"github.com/raven-assistant/ravenctl/cmd/ravenctl/commands/common"
	"github.com/raven-assistant/ravenctl/internal/config"
	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/internal/doctor"
	"github.com/raven-assistant/ravenctl/internal/prompt"
	"github.com/raven-assistant/ravenctl/internal/workflows"
	"github.com/raven-assistant/ravenctl/internal/workflows/steps"
	"github.com/raven-assistant/ravenctl/pkg/exit"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/plock"
)

const installLockName = "ravenctl-install"

// Seams for tests: terminate the process and build the confirmation prompt.
var (
	exitFunc     = func(code exit.Code) { code.TerminateProcess() }
	newConfirmer = func() *prompt.Confirmer { return prompt.NewConfirmer() }
)

var (
	flagInstallYes          bool
	flagInstallProjectDir   string
	flagInstallDelegate     string
	flagInstallRequirements string
	flagInstallWhisperModel string
	flagInstallOllamaModels []string

	installCmd = &cobra.Command{
		Use:   "install",
		Short: "Install the R.A.V.E.N. assistant and its dependencies",
		Long: "Install the R.A.V.E.N. assistant: create the Python virtual environment, " +
			"install requirements, download the speech model and set up Ollama with the " +
			"required language and vision models",
		RunE: runInstall,
	}
)

func init() {
	common.FlagAssumeYes.SetVar(installCmd, &flagInstallYes, false)
	common.FlagProjectDir.SetVar(installCmd, &flagInstallProjectDir, false)
	common.FlagDelegate.SetVar(installCmd, &flagInstallDelegate, false)
	common.FlagRequirements.SetVar(installCmd, &flagInstallRequirements, false)
	common.FlagWhisperModel.SetVar(installCmd, &flagInstallWhisperModel, false)
	common.FlagOllamaModels.SetVar(installCmd, &flagInstallOllamaModels, false)
}

func printInstallBanner(cmd *cobra.Command) {
	cmd.Println("==================================================")
	cmd.Println("   R.A.V.E.N. Installation")
	cmd.Println("   Voice and vision AI assistant")
	cmd.Println("==================================================")
}

// confirmOrCancel asks for consent unless assumeYes is set. On decline it
// prints cancelMsg and terminates the process with exit code 1.
func confirmOrCancel(cmd *cobra.Command, assumeYes bool, title, cancelMsg string) bool {
	if assumeYes {
		return true
	}

	agreed, err := newConfirmer().Confirm(title)
	if err != nil {
		doctor.CheckErr(cmd.Context(), err)
		return false
	}

	if !agreed {
		cmd.Println(cancelMsg)
		exitFunc(exit.GeneralError)
		return false
	}

	return true
}

// delegateExitCode extracts the delegate's exit status from a failed workflow
// report so the process can relay it.
func delegateExitCode(report *automa.Report) int {
	for _, stepReport := range report.StepReports {
		if stepReport.Status == automa.StatusFailed && stepReport.Error != nil {
			return steps.DelegateExitCode(stepReport.Error)
		}
	}

	return steps.DelegateExitCode(report.Error)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	config.OverrideInstallerConfig(config.InstallerConfig{
		ProjectDir:       flagInstallProjectDir,
		Delegate:         flagInstallDelegate,
		RequirementsFile: flagInstallRequirements,
		WhisperModel:     flagInstallWhisperModel,
		OllamaModels:     flagInstallOllamaModels,
		AssumeYes:        flagInstallYes,
	})

	cfg := config.Get().Installer
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.ProjectDir != "" {
		core.SetProjectDir(cfg.ProjectDir)
	}

	printInstallBanner(cmd)

	if !confirmOrCancel(cmd, cfg.AssumeYes,
		"This will install R.A.V.E.N. and its dependencies. Continue?",
		"Installation cancelled.") {
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

	b, err := workflows.NewInstallWorkflow(cfg)
	if err != nil {
		return err
	}

	if cfg.Delegate != "" {
		// The delegate owns the installation outcome: its exit status becomes
		// the process exit status.
		report := common.ExecuteWorkflow(ctx, b)
		if report.Error != nil {
			steps.PrintWorkflowReport(report)
			cmd.PrintErrln("Installation failed. See README.md for manual installation instructions.")
			exitFunc(exit.Code(delegateExitCode(report)))
			return nil
		}
	} else {
		common.RunWorkflow(ctx, b)
	}

	cmd.Println("Installation completed successfully")
	cmd.Print(workflows.UsageInstructions(cfg.OllamaModels))

	return nil
}
