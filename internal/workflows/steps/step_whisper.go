// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"fmt"

	"github.com/automa-saga/automa"

	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/whisper"
)

const downloadWhisperStepId = "download-whisper-model"

// WhisperComponent names the speech model in install state markers.
const WhisperComponent = "whisper"

// DownloadWhisperModel fetches the speech recognition model artifact. The
// assistant can start without it (transcription will download it on first
// use), so failure is a warning.
func DownloadWhisperModel(manager *whisper.Manager, model string) automa.Builder {
	return automa.NewStepBuilder().
		WithId(downloadWhisperStepId).
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			if err := manager.Download(ctx, model); err != nil {
				return warningReport(stp, err,
					fmt.Sprintf("Whisper model %q download failed, but continuing", model))
			}

			recordInstallState(WhisperComponent, model)
			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"model": model,
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Downloading Whisper %s model (this may take a while)", model)
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepCompletion(ctx, stp, report, "Whisper model step completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, report *automa.Report) {
			notify.As().StepFailure(ctx, stp, report, "Whisper model download failed")
		})
}
