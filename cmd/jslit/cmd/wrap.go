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
	"os"

	"github.com/spf13/cobra"

	"jslit.dev/go/jslit/errors"
	"jslit.dev/go/jslit/export"
)

func newWrapCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrap [file]",
		Short: "add a module-export wrapper to literal text",
		Long: `Wrap prefixes literal text with a module-export convention so the
result is a loadable module file. The input is taken as bare literal
text. With no file, or with "-", wrap reads standard input.
`,
		RunE: mkRunE(c, runWrap),
	}
	cmd.Flags().String("module", "esm", "export convention (esm or commonjs)")
	cmd.Flags().String("preamble-file", "", "file whose contents precede the export line")
	return cmd
}

func runWrap(cmd *Command, args []string) error {
	_, data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var kind export.Kind
	switch mod, _ := cmd.Flags().GetString("module"); mod {
	case "esm":
		kind = export.ESM
	case "commonjs":
		kind = export.CommonJS
	default:
		return errors.Newf("unknown module convention %q", mod)
	}

	var opts []export.Option
	if pf, _ := cmd.Flags().GetString("preamble-file"); pf != "" {
		pre, err := os.ReadFile(pf)
		if err != nil {
			return err
		}
		opts = append(opts, export.Preamble(string(pre)))
	}
	out, err := export.Wrap(string(data), kind, opts...)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.Stdout, out)
	return nil
}
