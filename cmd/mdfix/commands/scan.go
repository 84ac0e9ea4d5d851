// Copyright 2025 walteh LLC
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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/mdfix/cmd/mdfix/opts"
	"github.com/walteh/mdfix/pkg/scan"
)

func NewScanCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Report Markdown problems without changing files",
		Long: `Scan reports the lines mdfix would change.
It will:
1. Collect every document under path (default: the working directory)
2. Run each correction rule over every document
3. Print the changed lines of each document and a summary

Nothing is written. Findings do not change the exit status.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, scan.ModeScan, targetArg(args), false)
		},
	}

	return cmd
}
