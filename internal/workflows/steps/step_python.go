// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"

	"github.com/raven-assistant/ravenctl/internal/doctor"
	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/detect"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/python"
	"github.com/raven-assistant/ravenctl/pkg/software"
)

const checkPythonStepId = "check-python-interpreter"

// CheckPythonInterpreter locates a Python interpreter on PATH and verifies it
// satisfies the minimum supported version. The resolved interpreter is written
// into found for later steps. On failure the report carries platform-specific
// installation instructions and the workflow stops.
func CheckPythonInterpreter(detector software.ProgramDetector, osInfo *detect.OSInfo, found *python.Interpreter) automa.Builder {
	return automa.NewStepBuilder().
		WithId(checkPythonStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			remediation := strings.Join(python.InterpreterRemediation(osInfo), "\n")

			interpreter, err := python.FindInterpreter(ctx, detector)
			if err != nil {
				return automa.FailureReport(stp,
					automa.WithError(errorx.Decorate(err, "Python 3 interpreter not found").
						WithProperty(doctor.ErrPropertyResolution, remediation)),
					automa.WithMetadata(map[string]string{"instructions": remediation}))
			}

			if !interpreter.MeetsMinimum() {
				return automa.FailureReport(stp,
					automa.WithError(errorx.IllegalState.New(
						"Python %s found at %q, but version %s or higher is required",
						interpreter.Version, interpreter.Path, python.MinPythonVersion).
						WithProperty(doctor.ErrPropertyResolution, remediation)),
					automa.WithMetadata(map[string]string{"instructions": remediation}))
			}

			*found = *interpreter

			logx.As().Info().
				Str("path", interpreter.Path).
				Str("version", interpreter.Version.String()).
				Msg("Python interpreter found")

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"interpreterPath":    interpreter.Path,
				"interpreterVersion": interpreter.Version.String(),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Checking Python installation")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Python interpreter check completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Python interpreter check failed")
		})
}
