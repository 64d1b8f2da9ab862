// SPDX-License-Identifier: Apache-2.0

package common

import (
	"context"

	"github.com/automa-saga/automa"
	"github.com/spf13/cobra"

	"github.com/raven-assistant/ravenctl/internal/doctor"
	"github.com/raven-assistant/ravenctl/internal/workflows/steps"
	"github.com/raven-assistant/ravenctl/pkg/logx"
)

// ExecuteWorkflow builds and runs a workflow, returning its report. Build
// failures are fatal; the caller decides how to handle execution failures.
func ExecuteWorkflow(ctx context.Context, b automa.Builder) *automa.Report {
	wf, err := b.Build()
	if err != nil {
		doctor.CheckErr(ctx, err)
	}

	report := wf.Execute(ctx)
	SaveReport(report)

	return report
}

// RunWorkflow executes a workflow and exits through the doctor on failure.
func RunWorkflow(ctx context.Context, b automa.Builder) {
	report := ExecuteWorkflow(ctx, b)
	CheckWorkflowReport(ctx, report)
}

// SaveReport persists the execution report for post-mortem analysis. Failing
// to save the report never fails the run itself.
func SaveReport(report *automa.Report) {
	reportPath, err := steps.SaveWorkflowReport(report)
	if err != nil {
		logx.As().Warn().Err(err).Msg("Failed to save workflow report")
		return
	}

	logx.As().Info().Str("report_path", reportPath).Msg("Workflow report is saved")
}

// CheckWorkflowReport diagnoses a failed workflow report and exits. Each
// failed step is run through the doctor so its resolution instructions are
// printed.
func CheckWorkflowReport(ctx context.Context, report *automa.Report) {
	if report.Error == nil {
		return
	}

	steps.PrintWorkflowReport(report)

	for _, stepReport := range report.StepReports {
		if stepReport.Status == automa.StatusFailed {
			doctor.CheckReportErr(ctx, stepReport)
		}
	}

	doctor.CheckReportErr(ctx, report)
}

// DefaultRunE shows the help message. Commands always carry a run function so
// cobra marks them as runnable.
func DefaultRunE(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}
