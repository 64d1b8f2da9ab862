// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"testing"

	"github.com/automa-saga/automa"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/require"
)

func TestToErrorCode(t *testing.T) {
	t.Parallel()

	require.Equal(t, 10400, toErrorCode(errorx.IllegalArgument.New("bad input")))
	require.Equal(t, 10500, toErrorCode(errorx.InternalError.New("boom")))
}

func TestFindResolution_ResolutionProperty(t *testing.T) {
	t.Parallel()

	err := errorx.IllegalState.New("no interpreter").
		WithProperty(ErrPropertyResolution, "Install Python 3 using: sudo apt install python3")

	steps := findResolution(err)
	require.Equal(t, []string{"Install Python 3 using: sudo apt install python3"}, steps)
}

func TestFindResolution_Defaults(t *testing.T) {
	t.Parallel()

	steps := findResolution(errorx.IllegalFormat.New("bad data"))
	require.Equal(t, []string{"Ensure provided data is in correct format."}, steps)

	steps = findResolution(errorx.InternalError.New("boom"))
	require.Len(t, steps, 1)
}

func TestGetInstructionsFromReport(t *testing.T) {
	t.Parallel()

	require.Empty(t, GetInstructionsFromReport(nil))

	report := &automa.Report{
		StepReports: []*automa.Report{
			{Metadata: map[string]string{}},
			{Metadata: map[string]string{"instructions": "Re-run after fixing network access"}},
		},
	}
	require.Equal(t, "Re-run after fixing network access", GetInstructionsFromReport(report))
}
