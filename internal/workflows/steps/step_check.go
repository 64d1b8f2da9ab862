// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"

	"github.com/raven-assistant/ravenctl/internal/doctor"
	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/logx"
	"github.com/raven-assistant/ravenctl/pkg/ollama"
	"github.com/raven-assistant/ravenctl/pkg/python"
	"github.com/raven-assistant/ravenctl/pkg/whisper"
)

const summarizeFindingsStepId = "summarize-findings"

// probePip verifies that pip answers inside the virtual environment.
// Package variable so tests can intercept the subprocess invocation.
var probePip = func(ctx context.Context, pythonPath string) error {
	return exec.CommandContext(ctx, pythonPath, "-m", "pip", "--version").Run()
}

// Findings collects the issues discovered by the check workflow. Check steps
// append to it and always succeed; the summarize step turns a non-empty
// collection into a failure.
type Findings struct {
	issues []string
}

func (f *Findings) add(issue string) {
	f.issues = append(f.issues, issue)
}

// Issues returns the collected issues.
func (f *Findings) Issues() []string {
	return f.issues
}

// checkStep wraps a probe into a finding-collecting step. The probe returns
// an issue description when the check fails, or an empty string when it passes.
func checkStep(stepId, description string, findings *Findings, probe func(ctx context.Context) string) automa.Builder {
	return automa.NewStepBuilder().
		WithId(stepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			issue := probe(ctx)
			if issue != "" {
				findings.add(issue)
				logx.As().Warn().Str("check", description).Msg(issue)
				return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
					"issue": issue,
				}))
			}

			logx.As().Info().Str("check", description).Msg("OK")
			return automa.SuccessReport(stp)
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Checking %s", description)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Check %q completed", description)
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Check %q failed", description)
		})
}

// CheckVenvPresent verifies the virtual environment has been created.
func CheckVenvPresent(venv *python.Venv, findings *Findings) automa.Builder {
	return checkStep("check-venv", "virtual environment", findings, func(ctx context.Context) string {
		if !venv.Exists() {
			return "Virtual environment not created"
		}
		return ""
	})
}

// CheckVenvPip verifies pip works inside the virtual environment.
func CheckVenvPip(venv *python.Venv, findings *Findings) automa.Builder {
	return checkStep("check-venv-pip", "pip in virtual environment", findings, func(ctx context.Context) string {
		if !venv.Exists() {
			return "pip not working in virtual environment"
		}
		if err := probePip(ctx, venv.PythonPath()); err != nil {
			return "pip not working in virtual environment"
		}
		return ""
	})
}

// CheckOllamaInstalled verifies the ollama executable is on PATH.
func CheckOllamaInstalled(manager *ollama.Manager, findings *Findings) automa.Builder {
	return checkStep("check-ollama-installed", "Ollama installation", findings, func(ctx context.Context) string {
		if !manager.IsInstalled() {
			return "Ollama not installed"
		}
		return ""
	})
}

// CheckOllamaRunning verifies the Ollama daemon answers requests.
func CheckOllamaRunning(manager *ollama.Manager, findings *Findings) automa.Builder {
	return checkStep("check-ollama-running", "Ollama service", findings, func(ctx context.Context) string {
		if !manager.ServiceRunning(ctx) {
			return "Ollama service not running"
		}
		return ""
	})
}

// CheckOllamaModels verifies all required models are present locally.
func CheckOllamaModels(manager *ollama.Manager, required []string, findings *Findings) automa.Builder {
	return checkStep("check-ollama-models", "required models", findings, func(ctx context.Context) string {
		missing, err := manager.MissingModels(ctx, required)
		if err != nil {
			// already reported by the service check
			return ""
		}
		if len(missing) > 0 {
			return fmt.Sprintf("Missing models: %s", strings.Join(missing, ", "))
		}
		return ""
	})
}

// CheckWhisperModel verifies the speech model artifact is present and intact.
func CheckWhisperModel(manager *whisper.Manager, model string, findings *Findings) automa.Builder {
	return checkStep("check-whisper-model", "Whisper model", findings, func(ctx context.Context) string {
		m, err := whisper.LookupModel(model)
		if err != nil {
			return fmt.Sprintf("Unknown Whisper model configured: %s", model)
		}
		if !manager.IsDownloaded(m) {
			return fmt.Sprintf("Whisper model %q not downloaded", model)
		}
		return ""
	})
}

// SummarizeFindings concludes the check workflow: it fails with the collected
// issues when any check reported one, and succeeds otherwise.
func SummarizeFindings(findings *Findings) automa.Builder {
	return automa.NewStepBuilder().
		WithId(summarizeFindingsStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			issues := findings.Issues()
			if len(issues) == 0 {
				logx.As().Info().Msg("No issues found")
				return automa.SuccessReport(stp)
			}

			for _, issue := range issues {
				logx.As().Warn().Msgf("  - %s", issue)
			}

			instructions := "Re-run `ravenctl install` to repair the installation"
			return automa.FailureReport(stp,
				automa.WithError(errorx.IllegalState.New("%d issue(s) found: %s",
					len(issues), strings.Join(issues, "; ")).
					WithProperty(doctor.ErrPropertyResolution, instructions)),
				automa.WithMetadata(map[string]string{
					"issues":       strings.Join(issues, "\n"),
					"instructions": instructions,
				}))
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Troubleshooting completed, no issues found")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Troubleshooting found issues")
		})
}
