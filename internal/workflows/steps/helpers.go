// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"strings"
	"time"

	"github.com/automa-saga/automa"

	"github.com/raven-assistant/ravenctl/internal/state"
	"github.com/raven-assistant/ravenctl/pkg/fsx"
	"github.com/raven-assistant/ravenctl/pkg/logx"
)

// Sleep sleeps for the given duration or returns early if the context
// is canceled or its deadline expires. Returns nil on success or ctx.Err() on cancellation.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func newStateManager() *state.Manager {
	fileManager, _ := fsx.NewManager()
	return state.NewManager(fileManager)
}

// recordInstallState records that a component has been installed
func recordInstallState(component, version string) {
	_ = newStateManager().RecordState(component, state.TypeInstalled, version)
}

// removeInstallState removes the installation marker for a component
func removeInstallState(component string) {
	_ = newStateManager().RemoveState(component, state.TypeInstalled)
}

// installStateExists reports whether the installation marker for a component exists
func installStateExists(component string) bool {
	exists, err := newStateManager().Exists(component, state.TypeInstalled)
	return err == nil && exists
}

// warningReport logs the error as a warning and returns a success report so
// the workflow continues. Best-effort steps use this instead of a failure
// report. The hint lines are carried in the report metadata.
func warningReport(stp automa.Step, err error, warning string, hints ...string) *automa.Report {
	logx.As().Warn().Err(err).Msg(warning)
	for _, hint := range hints {
		logx.As().Warn().Msg(hint)
	}

	return automa.SuccessReport(stp, automa.WithMetadata(map[string]string{
		"warning": warning,
		"hints":   strings.Join(hints, "\n"),
	}))
}
