// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"runtime"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"

	"github.com/raven-assistant/ravenctl/internal/doctor"
	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/python"
)

const (
	createVenvStepId          = "create-virtual-environment"
	upgradePipStepId          = "upgrade-pip"
	installRequirementsStepId = "install-requirements"

	// VenvComponent names the virtual environment in install state markers.
	VenvComponent = "venv"
)

// requirementsTroubleshooting mirrors the manual steps that most often fix a
// failed dependency install. PyAudio needs the portaudio headers to build.
func requirementsTroubleshooting() string {
	lines := []string{
		"1. Check internet connection",
		"2. Try: pip install --upgrade pip setuptools wheel",
	}

	switch runtime.GOOS {
	case "darwin":
		lines = append(lines, "3. For PyAudio: brew install portaudio")
	default:
		lines = append(lines, "3. For PyAudio on Linux: sudo apt-get install portaudio19-dev")
	}

	return strings.Join(lines, "\n")
}

// CreateVenv creates the Python virtual environment using the interpreter
// resolved by CheckPythonInterpreter. Creation is skipped when the environment
// already exists. Failure aborts the workflow since everything after this step
// depends on the environment.
func CreateVenv(venv *python.Venv, interpreter *python.Interpreter) automa.Builder {
	return automa.NewStepBuilder().
		WithId(createVenvStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if venv.Exists() {
				logx.As().Info().Str("dir", venv.Dir()).Msg("Virtual environment already exists")
				return automa.SuccessReport(stp)
			}

			if interpreter.Path == "" {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.New("no Python interpreter resolved")))
			}

			if err := venv.Create(ctx, interpreter.Path); err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			recordInstallState(VenvComponent, interpreter.Version.String())
			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"venvDir": venv.Dir(),
			}))
		}).
		WithRollback(func(ctx context.Context, stp automa.Step) *automa.Report {
			removeInstallState(VenvComponent)
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Creating virtual environment")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Virtual environment step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Virtual environment creation failed")
		})
}

// UpgradePip upgrades pip inside the virtual environment. An outdated pip
// still installs most dependencies, so failure is a warning.
func UpgradePip(venv *python.Venv) automa.Builder {
	return automa.NewStepBuilder().
		WithId(upgradePipStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := venv.UpgradePip(ctx); err != nil {
				return warningReport(stp, err, "Failed to upgrade pip, continuing with existing version")
			}

			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Upgrading pip")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Pip upgrade step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Pip upgrade step failed")
		})
}

// InstallRequirements installs the Python dependencies into the virtual
// environment. Failure aborts the workflow and the report carries
// troubleshooting instructions.
func InstallRequirements(venv *python.Venv, requirementsPath string) automa.Builder {
	return automa.NewStepBuilder().
		WithId(installRequirementsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := venv.InstallRequirements(ctx, requirementsPath); err != nil {
				instructions := requirementsTroubleshooting()
				return automa.FailureReport(stp,
					automa.WithError(errorx.Decorate(err, "failed to install Python dependencies").
						WithProperty(doctor.ErrPropertyResolution, instructions)),
					automa.WithMetadata(map[string]string{"instructions": instructions}))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"requirements": requirementsPath,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing dependencies from %s", requirementsPath)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Dependency installation step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Dependency installation failed")
		})
}
