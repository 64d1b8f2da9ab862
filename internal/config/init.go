// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/raven-assistant/ravenctl/pkg/logx"

func init() {
	// initialize logging with defaults
	_ = logx.Initialize(globalConfig.Log)
}
