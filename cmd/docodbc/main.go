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

	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"
)

const Version = "0.1.0"

// KingpinHandler runs a parsed command and returns the process exit code.
type KingpinHandler func(input string) (exitCode int)

// KingpinCommand registers a command on the application.
type KingpinCommand func(context.Context, *kingpin.Application) (*kingpin.CmdClause, KingpinHandler)

var kingpinCommands = []KingpinCommand{
	queryCommand,
	versionCommand,
}

func main() {
	kingpin.EnableFileExpansion = false
	app := kingpin.New("docodbc", "Runs SQL against a document database through the ODBC data path.")
	app.HelpFlag.Short('h')

	ctx := context.Background()
	handlers := map[string]KingpinHandler{}
	for _, cmdFunction := range kingpinCommands {
		command, handler := cmdFunction(ctx, app)
		handlers[command.FullCommand()] = handler
	}

	input := kingpin.MustParse(app.Parse(os.Args[1:]))
	if handler := handlers[input]; handler != nil {
		os.Exit(handler(input))
	}
}

func printErr(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error: %s", err.Error()))
}
