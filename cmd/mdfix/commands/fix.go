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

func NewFixCmd(opts *opts.RootOpts) *cobra.Command {
	var backup bool

	cmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Repair Markdown problems in place",
		Long: `Fix rewrites every document that has problems.
It will:
1. Collect every document under path (default: the working directory)
2. Correct each document
3. Write changed documents back atomically, optionally keeping a .bak copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, scan.ModeFix, targetArg(args), backup || opts.Config.Backup)
		},
	}

	cmd.Flags().BoolVar(&backup, "backup", false, "keep the original of each changed document as <name>.bak")

	return cmd
}
