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
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"jslit.dev/go/jslit"
	"jslit.dev/go/jslit/errors"
	"jslit.dev/go/jslit/value"
)

func newExportCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "evaluate a literal value file and convert it to a data format",
		Long: `Export evaluates a literal value file and writes the resulting value in
a data-interchange format. The conversion is lossy: symbols, regular
expressions, and functions become strings, dates become RFC 3339
timestamps, and maps and sets flatten to plain objects and arrays.
With no file, or with "-", export reads standard input.
`,
		RunE: mkRunE(c, runExport),
	}
	cmd.Flags().String("out", "json", "output format (json or yaml)")
	return cmd
}

func runExport(cmd *Command, args []string) error {
	filename, data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	v, err := jslit.Load(filename, data)
	if err != nil {
		return err
	}
	x := value.ToInterface(v)

	out, _ := cmd.Flags().GetString("out")
	switch out {
	case "json":
		enc := json.NewEncoder(cmd.Stdout)
		enc.SetIndent("", "    ")
		return enc.Encode(x)
	case "yaml":
		enc := yaml.NewEncoder(cmd.Stdout)
		defer enc.Close()
		return enc.Encode(x)
	}
	return errors.Newf("unknown output format %q", out)
}
