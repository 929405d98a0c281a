// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package config

import termlog "termfolio/utils/log"

func l() *termlog.Logger {
	return termlog.L().With("component", "config")
}
