// Copyright 2024 The JSLit Authors
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

// Package cmd implements the jslit command-line tool.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"jslit.dev/go/jslit/errors"
)

// A Command wraps a cobra.Command together with the streams the
// subcommands write to, so tests can capture output.
type Command struct {
	*cobra.Command

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c.Command = cmd
		err := f(c, args)
		if err != nil {
			errors.Print(c.Stderr, err)
			return errExit
		}
		return nil
	}
}

// errExit signals a failure that has already been reported.
var errExit = errors.New("terminating because of errors")

// New returns the root command for the jslit tool.
func New() *Command {
	cmd := &cobra.Command{
		Use:   "jslit",
		Short: "jslit reads, evaluates, and renders literal value files",
		Long: `jslit reads, evaluates, and renders literal value files.

A literal value file holds a single expression, optionally wrapped in an
"export default" or "module.exports =" line, optionally preceded by
helper statements. jslit evaluates the file and renders the resulting
value back as literal text or as a data-interchange format.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &Command{
		Command: cmd,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}

	cmd.AddCommand(newFmtCmd(c))
	cmd.AddCommand(newEvalCmd(c))
	cmd.AddCommand(newExportCmd(c))
	cmd.AddCommand(newWrapCmd(c))
	return c
}

// readInput returns the contents of the file named by args, or of standard
// input when no argument (or "-") is given.
func readInput(c *Command, args []string) (filename string, data []byte, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(c.Stdin)
		return "<stdin>", data, err
	}
	data, err = os.ReadFile(args[0])
	return args[0], data, err
}
