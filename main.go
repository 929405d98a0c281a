// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package main

import "termfolio/cmd"

func main() {
	cmd.HandleError(cmd.Execute())
}
