// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/joomcode/errorx"

var (
	ErrorsNamespace = errorx.NewNamespace("config")
	NotFoundError   = ErrorsNamespace.NewType("not_found")
)
