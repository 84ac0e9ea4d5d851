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

package main

import (
	"context"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	logger := newLogger(os.Stderr, false, false)
	ctx := logger.WithContext(context.Background())

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	})); err != nil {
		logger.Debug().Err(err).Msg("setting GOMAXPROCS")
	}

	os.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
