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

package cdata

import "encoding/binary"

const (
	DateSize      = 6
	TimeSize      = 6
	TimestampSize = 16
	GUIDSize      = 16
)

// DateStruct mirrors SQL_DATE_STRUCT.
type DateStruct struct {
	Year  int16
	Month uint16
	Day   uint16
}

// Bytes returns the in-memory layout of the struct.
func (d DateStruct) Bytes() []byte {
	b := make([]byte, DateSize)
	binary.LittleEndian.PutUint16(b[0:], uint16(d.Year))
	binary.LittleEndian.PutUint16(b[2:], d.Month)
	binary.LittleEndian.PutUint16(b[4:], d.Day)
	return b
}

// DateFromBytes is the inverse of DateStruct.Bytes.
func DateFromBytes(b []byte) DateStruct {
	return DateStruct{
		Year:  int16(binary.LittleEndian.Uint16(b[0:])),
		Month: binary.LittleEndian.Uint16(b[2:]),
		Day:   binary.LittleEndian.Uint16(b[4:]),
	}
}

// TimeStruct mirrors SQL_TIME_STRUCT.
type TimeStruct struct {
	Hour   uint16
	Minute uint16
	Second uint16
}

func (t TimeStruct) Bytes() []byte {
	b := make([]byte, TimeSize)
	binary.LittleEndian.PutUint16(b[0:], t.Hour)
	binary.LittleEndian.PutUint16(b[2:], t.Minute)
	binary.LittleEndian.PutUint16(b[4:], t.Second)
	return b
}

func TimeFromBytes(b []byte) TimeStruct {
	return TimeStruct{
		Hour:   binary.LittleEndian.Uint16(b[0:]),
		Minute: binary.LittleEndian.Uint16(b[2:]),
		Second: binary.LittleEndian.Uint16(b[4:]),
	}
}

// TimestampStruct mirrors SQL_TIMESTAMP_STRUCT. Fraction is in nanoseconds.
type TimestampStruct struct {
	Year     int16
	Month    uint16
	Day      uint16
	Hour     uint16
	Minute   uint16
	Second   uint16
	Fraction uint32
}

func (ts TimestampStruct) Bytes() []byte {
	b := make([]byte, TimestampSize)
	binary.LittleEndian.PutUint16(b[0:], uint16(ts.Year))
	binary.LittleEndian.PutUint16(b[2:], ts.Month)
	binary.LittleEndian.PutUint16(b[4:], ts.Day)
	binary.LittleEndian.PutUint16(b[6:], ts.Hour)
	binary.LittleEndian.PutUint16(b[8:], ts.Minute)
	binary.LittleEndian.PutUint16(b[10:], ts.Second)
	binary.LittleEndian.PutUint32(b[12:], ts.Fraction)
	return b
}

func TimestampFromBytes(b []byte) TimestampStruct {
	return TimestampStruct{
		Year:     int16(binary.LittleEndian.Uint16(b[0:])),
		Month:    binary.LittleEndian.Uint16(b[2:]),
		Day:      binary.LittleEndian.Uint16(b[4:]),
		Hour:     binary.LittleEndian.Uint16(b[6:]),
		Minute:   binary.LittleEndian.Uint16(b[8:]),
		Second:   binary.LittleEndian.Uint16(b[10:]),
		Fraction: binary.LittleEndian.Uint32(b[12:]),
	}
}

// GUID is the raw 16 bytes of a UUID as stored in the document.
type GUID [GUIDSize]byte

func (g GUID) Bytes() []byte {
	b := make([]byte, GUIDSize)
	copy(b, g[:])
	return b
}
