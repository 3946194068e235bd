// fitjournal - A menu-driven fitness journal
//
// Copyright (c) The fitjournal authors
//
// Licensed under the MIT License.
// See LICENSE file for full license text.

package main

import (
	"os"

	"github.com/fitjournal/fitjournal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
