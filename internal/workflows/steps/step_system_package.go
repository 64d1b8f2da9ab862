// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"

	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/software"
)

const refreshSystemPackageStepId = "refresh-system-package-index"

func validateInstaller(name string, installer func() (software.Package, error)) (software.Package, error) {
	if name == "" {
		return nil, errorx.IllegalArgument.New("package name cannot be empty")
	}

	if installer == nil {
		return nil, errorx.IllegalArgument.New("installer function cannot be nil")
	}

	pkg, err := installer()
	if err != nil {
		return nil, errorx.IllegalArgument.Wrap(err, "failed to get package from installer")
	}

	if pkg.Name() != name {
		return nil, errorx.IllegalArgument.New("installer returned package with unexpected name: got %q, want %q",
			pkg.Name(), name)
	}

	return pkg, nil
}

// RefreshSystemPackageIndex refreshes the system package index.
// Essentially this is equivalent to running `apt-get update` on Debian-based systems.
// Failures are downgraded to warnings since package installs are best effort.
func RefreshSystemPackageIndex() automa.Builder {
	return automa.NewStepBuilder().
		WithId(refreshSystemPackageStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := software.RefreshPackageIndex(); err != nil {
				return warningReport(stp, err, "Failed to refresh package index, continuing")
			}

			return automa.SuccessReport(stp)
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Package index refresh step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Failed to refresh package index")
		})
}

// InstallSystemPackage installs a system package using the provided installer function.
// If the package is already installed, the installation is skipped. Installation
// failures do not abort the workflow: the audio and build packages this step
// handles can always be installed manually, so the failure is reported as a
// warning with a manual-install hint.
func InstallSystemPackage(name string, installer func() (software.Package, error)) automa.Builder {
	stepId := fmt.Sprintf("install-%s", name)

	return automa.NewStepBuilder().
		WithId(stepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			pkg, err := validateInstaller(name, installer)
			if err != nil {
				return automa.FailureReport(stp, automa.WithError(err))
			}

			if pkg.IsInstalled() {
				logx.As().Info().Msgf("Package %q is already installed, skipping installation", pkg.Name())
				return automa.SuccessReport(stp)
			}

			logx.As().Debug().Msgf("Installing %s...", pkg.Name())

			info, err := pkg.Install()
			if err != nil {
				return warningReport(stp, err,
					fmt.Sprintf("Failed to install package %q, continuing", name),
					fmt.Sprintf("Install it manually, e.g.: sudo apt-get install %s", name))
			}

			logx.As().Info().
				Str("name", info.Name).
				Str("version", info.Version).
				Str("status", string(info.Status)).
				Msgf("Package %q installed successfully", pkg.Name())

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"packageName":    info.Name,
				"packageVersion": info.Version,
				"packageStatus":  string(info.Status),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Installing package %q", name)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report,
				"Package %q installation step completed", name)
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report,
				"Package %q installation step failed", name)
		})
}
