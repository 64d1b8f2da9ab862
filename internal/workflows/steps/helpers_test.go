// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"context"
	"testing"
	"time"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"

	"github.com/raven-assistant/ravenctl/internal/core"
)

// useTempProjectDir points the project directory at a temp dir for the
// duration of the test. Tests using it must not run in parallel.
func useTempProjectDir(t *testing.T) string {
	t.Helper()

	orig := core.ProjectDir()
	dir := t.TempDir()
	core.SetProjectDir(dir)
	t.Cleanup(func() { core.SetProjectDir(orig) })

	return dir
}

func buildAndExecute(t *testing.T, b automa.Builder) *automa.Report {
	t.Helper()

	step, err := b.Build()
	require.NoError(t, err)

	return step.Execute(context.Background())
}

func TestSleep_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Sleep(ctx, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSleep_Elapses(t *testing.T) {
	t.Parallel()

	require.NoError(t, Sleep(context.Background(), time.Millisecond))
}

func TestInstallState_Lifecycle(t *testing.T) {
	useTempProjectDir(t)

	require.False(t, installStateExists(VenvComponent))

	recordInstallState(VenvComponent, "3.11.2")
	require.True(t, installStateExists(VenvComponent))

	removeInstallState(VenvComponent)
	require.False(t, installStateExists(VenvComponent))
}

func TestWarningReport_SucceedsWithMetadata(t *testing.T) {
	t.Parallel()

	step := &mockStep{id: "warn-step"}
	report := warningReport(step, errorx.ExternalError.New("boom"),
		"Something failed, continuing", "Try again manually")

	require.Equal(t, automa.StatusSuccess, report.Status)
	require.NoError(t, report.Error)
	require.Equal(t, "Something failed, continuing", report.Metadata["warning"])
	require.Equal(t, "Try again manually", report.Metadata["hints"])
}

// mockStep implements automa.Step for report helpers
type mockStep struct {
	id    string
	state automa.NamespacedStateBag
}

func (m *mockStep) Prepare(ctx context.Context) (context.Context, error) { return ctx, nil }
func (m *mockStep) Execute(ctx context.Context) *automa.Report          { return automa.SuccessReport(m) }
func (m *mockStep) Rollback(ctx context.Context) *automa.Report         { return automa.SuccessReport(m) }
func (m *mockStep) Id() string                                          { return m.id }

func (m *mockStep) State() automa.NamespacedStateBag {
	if m.state == nil {
		m.state = automa.NewNamespacedStateBag(&automa.SyncStateBag{}, &automa.SyncStateBag{})
	}
	return m.state
}

func (m *mockStep) WithState(s automa.NamespacedStateBag) automa.Step {
	m.state = s
	return m
}
