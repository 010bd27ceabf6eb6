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

// Package diag converts errors into ODBC diagnostic records.
package diag

import (
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/docodbc/libraries/odbccore/buffer"
	"github.com/dolthub/docodbc/libraries/odbccore/coerce"
	"github.com/dolthub/docodbc/libraries/odbccore/cursor"
)

const (
	CorePrefix = "[DocODBC][Core] "
	APIPrefix  = "[DocODBC][API] "

	GeneralError = "HY000"
)

var sqlStates = []struct {
	kind  *errors.Kind
	state string
}{
	{coerce.ErrUnsupportedConversion, "07006"},
	{coerce.ErrIntegralOverflow, "22003"},
	{coerce.ErrInvalidNumericString, "22018"},
	{coerce.ErrInvalidDateTimeFormat, "22007"},
	{coerce.ErrPrecisionLoss, "01S07"},
	{buffer.ErrStringTruncated, "01004"},
	{buffer.ErrLengthOnly, "01004"},
	{buffer.ErrBufferTooSmall, "HY090"},
	{buffer.ErrNullIndicatorMissing, "22002"},
	{cursor.ErrColumnIndexOutOfBounds, "07009"},
	{cursor.ErrInvalidCursorState, "24000"},
}

// SQLState returns the five character SQLSTATE for |err|. Errors of unknown kind, including every
// upstream failure, are general errors.
func SQLState(err error) string {
	for _, s := range sqlStates {
		if s.kind.Is(err) {
			return s.state
		}
	}
	return GeneralError
}

// Record is a single diagnostic record.
type Record struct {
	SQLState    string
	NativeError int32
	Message     string
}

// NewRecord returns the diagnostic record for an error raised by the driver core.
func NewRecord(err error) Record {
	return Record{SQLState: SQLState(err), Message: CorePrefix + err.Error()}
}

// IsWarning returns whether the record's SQLSTATE is of the warning class.
func (r Record) IsWarning() bool {
	return len(r.SQLState) >= 2 && r.SQLState[:2] == "01"
}

// Stack holds the diagnostics of the most recent call on a handle.
type Stack struct {
	records []Record
}

func (s *Stack) Push(err error) {
	if err != nil {
		s.records = append(s.records, NewRecord(err))
	}
}

func (s *Stack) PushRecord(r Record) {
	s.records = append(s.records, r)
}

func (s *Stack) Records() []Record {
	return s.records
}

func (s *Stack) Len() int {
	return len(s.records)
}

// Get returns record |i|, counting from 1 as SQLGetDiagRec does.
func (s *Stack) Get(i int) (Record, bool) {
	if i < 1 || i > len(s.records) {
		return Record{}, false
	}
	return s.records[i-1], true
}

func (s *Stack) Clear() {
	s.records = s.records[:0]
}
