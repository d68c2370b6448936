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
	"github.com/spf13/pflag"

	"jslit.dev/go/jslit"
	"jslit.dev/go/jslit/export"
	"jslit.dev/go/jslit/format"
)

func newFmtCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "evaluate a literal value file and rewrite it in canonical form",
		Long: `Fmt evaluates a literal value file and renders the resulting value back
as literal text. A module-export wrapper on the input is preserved in the
output. With no file, or with "-", fmt reads standard input.
`,
		RunE: mkRunE(c, runFmt),
	}
	addIndentFlags(cmd.Flags())
	return cmd
}

func addIndentFlags(f *pflag.FlagSet) {
	f.Int("indent", 2, "number of spaces per indentation level")
	f.Bool("tab", false, "indent with tabs instead of spaces")
}

func runFmt(cmd *Command, args []string) error {
	filename, data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	v, err := jslit.Load(filename, data)
	if err != nil {
		return err
	}

	var opt format.Option
	if tab, _ := cmd.Flags().GetBool("tab"); tab {
		opt = format.IndentString("\t")
	} else {
		n, _ := cmd.Flags().GetInt("indent")
		opt = format.Indent(n)
	}
	text, err := jslit.Stringify(v, opt)
	if err != nil {
		return err
	}

	if kind, ok := export.Detect(string(data)); ok {
		text, err = export.Wrap(text, kind)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.Stdout, text)
		return nil
	}
	fmt.Fprintln(cmd.Stdout, text)
	return nil
}
