// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"

	"github.com/raven-assistant/ravenctl/internal/core"
	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/python"
)

const runDelegateStepId = "run-delegate-installer"

// ErrPropertyExitCode carries the delegate's exit status so the command layer
// can relay it as the process exit code.
var ErrPropertyExitCode = errorx.RegisterProperty("exitCode")

// runDelegate executes the delegate installer with inherited standard streams
// and no arguments. It is a package variable so tests can intercept it.
var runDelegate = func(ctx context.Context, interpreterPath, script string) error {
	cmd := exec.CommandContext(ctx, interpreterPath, script)
	cmd.Dir = core.ProjectDir()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// DelegateExitCode extracts the delegate's exit status from a failed report
// error. It returns 1 when the error carries no exit code.
func DelegateExitCode(err error) int {
	if err == nil {
		return 0
	}

	if code, ok := errorx.ExtractProperty(err, ErrPropertyExitCode); ok {
		if c, isInt := code.(int); isInt {
			return c
		}
	}

	return 1
}

// RunDelegate hands the installation over to an external installer program,
// executed with the resolved interpreter, inherited standard streams and no
// arguments. The delegate's exit status determines the step outcome.
func RunDelegate(interpreter *python.Interpreter, script string) automa.Builder {
	return automa.NewStepBuilder().
		WithId(runDelegateStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if _, err := os.Stat(script); err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalArgument.Wrap(err, "delegate installer not found: %q", script)))
			}

			logx.As().Info().
				Str("interpreter", interpreter.Path).
				Str("delegate", script).
				Msg("Running delegate installer")

			if err := runDelegate(ctx, interpreter.Path, script); err != nil {
				code := 1
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					code = exitErr.ExitCode()
				}

				return automa.FailureReport(stp,
					automa.WithError(errorx.ExternalError.Wrap(err, "delegate installer failed with exit code %d", code).
						WithProperty(ErrPropertyExitCode, code)))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"delegate": script,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Delegating installation to %s", script)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Delegate installer completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Delegate installer failed")
		})
}
