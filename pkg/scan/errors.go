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

package scan

import (
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrPathNotFound is returned when the target does not exist. It ends the run.
	ErrPathNotFound = errors.Base("path not found")

	// ErrEncoding marks a file that is not valid UTF-8. The file is skipped.
	ErrEncoding = errors.Base("file is not valid UTF-8")
)
