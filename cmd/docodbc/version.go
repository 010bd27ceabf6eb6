// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/attic-labs/kingpin"
)

func versionCommand(_ context.Context, app *kingpin.Application) (*kingpin.CmdClause, KingpinHandler) {
	cmd := app.Command("version", "Print the docodbc version.")
	return cmd, func(string) int {
		fmt.Fprintf(os.Stdout, "docodbc version %s\n", Version)
		fmt.Fprintf(os.Stdout, "built with %s\n", runtime.Version())
		return 0
	}
}
