// SPDX-License-Identifier: Apache-2.0

package workflows

import (
	"context"
	"runtime"

	"github.com/automa-saga/automa"

	"github.com/raven-assistant/ravenctl/internal/workflows/notify"
	"github.com/raven-assistant/ravenctl/pkg/detect"
	"github.com/raven-assistant/ravenctl/pkg/logx"
)

// RecommendedMemoryBytes is the minimum host memory for running the language
// and vision models comfortably alongside speech recognition.
const RecommendedMemoryBytes uint64 = 8 << 30

// CheckHostMemoryStep reports the host profile and warns when the machine has
// less memory than recommended. The check is advisory: the models still load
// on smaller machines, just slowly.
func CheckHostMemoryStep() automa.Builder {
	return automa.NewStepBuilder().
		WithId("check-host-memory").
		WithExecute(func(ctx context.Context, stp automa.Step) *automa.Report {
			hostProfile := detect.GetHostProfile()
			logx.As().Info().Str("host_profile", hostProfile.String()).Msg("Retrieved host profile")

			total := hostProfile.GetTotalMemoryBytes()
			if total > 0 && total < RecommendedMemoryBytes {
				logx.As().Warn().
					Str("total", detect.HumanizeBytes(total)).
					Str("recommended", detect.HumanizeBytes(RecommendedMemoryBytes)).
					Msg("Host has less memory than recommended, the models may run slowly")

				return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
					"warning":     "host memory below recommended minimum",
					"totalMemory": detect.HumanizeBytes(total),
				}))
			}

			return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
				"totalMemory": detect.HumanizeBytes(total),
			}))
		}).
		WithPrepare(func(ctx context.Context, stp automa.Step) (context.Context, error) {
			notify.As().StepStart(ctx, stp, "Checking host hardware")
			return ctx, nil
		}).
		WithOnCompletion(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepCompletion(ctx, stp, rpt, "Host hardware check completed")
		}).
		WithOnFailure(func(ctx context.Context, stp automa.Step, rpt *automa.Report) {
			notify.As().StepFailure(ctx, stp, rpt, "Host hardware check failed")
		})
}

// detectOSInfo detects the host operating system. Detection failure is not
// fatal: the runtime facts still select the per-OS remediation texts, only
// the flavor-specific hints are lost.
func detectOSInfo() *detect.OSInfo {
	osInfo, err := detect.NewOSManager(detect.WithOSManagerLogger(logx.As())).GetOSInfo()
	if err != nil || osInfo == nil {
		logx.As().Warn().Err(err).Msg("Failed to detect operating system details")
		return &detect.OSInfo{
			Type:         runtime.GOOS,
			Version:      detect.OSVersionUnknown,
			Flavor:       detect.OSFlavorUnknown,
			Architecture: runtime.GOARCH,
		}
	}

	return osInfo
}
