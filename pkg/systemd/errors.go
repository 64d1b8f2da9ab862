// SPDX-License-Identifier: Apache-2.0

package systemd

import "github.com/joomcode/errorx"

var (
	ErrorsNamespace      = errorx.NewNamespace("systemd")
	ErrSystemdConnection = ErrorsNamespace.NewType("connection_error")
	ErrSystemdOperation  = ErrorsNamespace.NewType("operation_error")

	serviceProperty   = errorx.RegisterPrintableProperty("service")
	jobResultProperty = errorx.RegisterPrintableProperty("job_result")
)
