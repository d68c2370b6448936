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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"jslit.dev/go/jslit"
)

func newEvalCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "evaluate a literal value file and print the result inline",
		Long: `Eval evaluates a literal value file, stripping any module-export
wrapper, and prints the resulting value as a single line of literal text.
With no file, or with "-", eval reads standard input.
`,
		RunE: mkRunE(c, runEval),
	}
	return cmd
}

func runEval(cmd *Command, args []string) error {
	filename, data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	v, err := jslit.Load(filename, data)
	if err != nil {
		return err
	}
	text, err := jslit.Stringify(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Stdout, text)
	return nil
}
