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

package buffer

import (
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/docodbc/libraries/odbccore/coerce"
)

// ErrBufferTooSmall is returned when a fixed width value does not fit the caller's buffer.
var ErrBufferTooSmall = errors.NewKind("buffer of %d bytes is too small for %s of %d bytes")

// ErrNullIndicatorMissing is returned when a NULL value is read without an indicator to report it in.
var ErrNullIndicatorMissing = errors.NewKind("indicator variable required but not supplied for NULL value")

// ErrStringTruncated is a warning. It accompanies every piece of a variable length value but the last.
var ErrStringTruncated = errors.NewKind("string data, right truncated: %d of %d units remain")

// ErrLengthOnly is a warning. It reports that a fixed width value was sized but not written
// because no buffer was supplied.
var ErrLengthOnly = errors.NewKind("no buffer supplied, %s value of %d bytes not written")

// IsWarning returns whether |err| is informational, either from the write itself or from coercion.
func IsWarning(err error) bool {
	return err != nil && (ErrStringTruncated.Is(err) || ErrLengthOnly.Is(err) || coerce.IsWarning(err))
}
