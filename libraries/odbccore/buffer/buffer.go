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
	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
	"github.com/dolthub/docodbc/libraries/odbccore/coerce"
)

// Status is the outcome of a single Write.
type Status int

const (
	Success Status = iota
	SuccessWithInfo
	NoData
)

func (s Status) String() string {
	return s.SqlReturn().String()
}

// SqlReturn maps a Status to its ODBC return code.
func (s Status) SqlReturn() cdata.SqlReturn {
	switch s {
	case SuccessWithInfo:
		return cdata.SuccessWithInfo
	case NoData:
		return cdata.NoData
	}
	return cdata.Success
}

// Target describes a caller supplied output location. A nil Buf or Indicator stands for a null
// pointer. Capacity is in bytes, or in 16-bit units for WChar.
type Target struct {
	CType     cdata.CDataType
	Buf       []byte
	Capacity  int
	Indicator *int64
}

// span is the number of units that may be written to the target.
func (t Target) span(unit int) int {
	n := len(t.Buf) / unit
	if t.Capacity < n {
		n = t.Capacity
	}
	if n < 0 {
		return 0
	}
	return n
}

func (t Target) setIndicator(v int64) {
	if t.Indicator != nil {
		*t.Indicator = v
	}
}

// PieceState records how much of a column's value has been delivered during the current row.
// Offset counts units of CType. Warned is set once the value's coercion warnings were reported.
type PieceState struct {
	CType  cdata.CDataType
	Offset int
	Warned bool
	Done   bool
}

// Reset rewinds the state, as happens when the cursor moves to a new row.
func (st *PieceState) Reset() {
	*st = PieceState{}
}

// Transfer is the result of a Write. Warnings include coercion warnings for the value as well as
// truncation warnings for the piece.
type Transfer struct {
	Status   Status
	Warnings []error
}

func (tr *Transfer) warn(err error) {
	tr.Warnings = append(tr.Warnings, err)
	tr.Status = SuccessWithInfo
}

// Write delivers the next piece of |c| into |dst| and advances |st|. Once a value is fully
// delivered, further calls return NoData until |st| is reset. A piece requested as a different C
// type than the one before it restarts the value. Nothing is written on error.
func Write(c coerce.Coerced, dst Target, st *PieceState) (Transfer, error) {
	if st.Done {
		return Transfer{Status: NoData}, nil
	}

	if c.Null {
		if dst.Indicator == nil {
			return Transfer{}, ErrNullIndicatorMissing.New()
		}
		*dst.Indicator = cdata.NullData
		st.Done = true
		return Transfer{Status: Success}, nil
	}

	// a read as another type starts the value over
	if st.CType != c.CType {
		*st = PieceState{CType: c.CType}
	}

	var tr Transfer
	var err error
	if c.CType.IsVariable() {
		tr, err = writeVariable(c, dst, st)
	} else {
		tr, err = writeFixed(c, dst, st)
	}
	if err != nil {
		return Transfer{}, err
	}

	if !st.Warned {
		for _, w := range c.Warnings {
			tr.warn(w)
		}
		st.Warned = true
	}
	return tr, nil
}

func writeFixed(c coerce.Coerced, dst Target, st *PieceState) (Transfer, error) {
	size := len(c.Data)
	if want := c.CType.FixedSize(); want > 0 {
		size = want
	}
	if dst.Buf == nil {
		dst.setIndicator(int64(size))
		tr := Transfer{}
		tr.warn(ErrLengthOnly.New(c.CType, size))
		return tr, nil
	}

	if span := dst.span(1); span < size {
		return Transfer{}, ErrBufferTooSmall.New(span, c.CType, size)
	}

	dst.setIndicator(int64(size))
	copy(dst.Buf[:size], c.Data)
	st.Done = true
	return Transfer{Status: Success}, nil
}

func writeVariable(c coerce.Coerced, dst Target, st *PieceState) (Transfer, error) {
	unit := c.CType.UnitSize()
	total := len(c.Data) / unit
	if st.Offset > total {
		st.Offset = total
	}
	remaining := total - st.Offset
	dst.setIndicator(int64(remaining))

	span := dst.span(unit)
	if span == 0 && remaining > 0 {
		tr := Transfer{}
		tr.warn(ErrStringTruncated.New(remaining, total))
		return tr, nil
	}

	n := remaining
	if span < n {
		n = span
	}
	start := st.Offset * unit
	copy(dst.Buf[:n*unit], c.Data[start:start+n*unit])
	st.Offset += n

	if st.Offset < total {
		tr := Transfer{}
		tr.warn(ErrStringTruncated.New(total-st.Offset, total))
		return tr, nil
	}

	if c.CType.IsNullTerminated() && span > n {
		for i := 0; i < unit; i++ {
			dst.Buf[n*unit+i] = 0
		}
	}
	st.Done = true
	return Transfer{Status: Success}, nil
}
