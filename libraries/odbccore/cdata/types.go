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

// Package cdata holds the ODBC C data type identifiers, SQL data type identifiers, return codes
// and the fixed-layout structs a driver writes into caller memory.
package cdata

import "fmt"

// CDataType identifies the C representation an application asks a column to be returned as.
type CDataType int16

const (
	Char          CDataType = 1
	WChar         CDataType = -8
	Binary        CDataType = -2
	Bit           CDataType = -7
	Double        CDataType = 8
	Float         CDataType = 7
	SBigInt       CDataType = -25
	UBigInt       CDataType = -27
	SLong         CDataType = -16
	ULong         CDataType = -18
	SShort        CDataType = -15
	UShort        CDataType = -17
	STinyInt      CDataType = -26
	UTinyInt      CDataType = -28
	Date          CDataType = 9
	Time          CDataType = 10
	TimeStamp     CDataType = 11
	TypeDate      CDataType = 91
	TypeTime      CDataType = 92
	TypeTimestamp CDataType = 93
	Guid          CDataType = -11
	Default       CDataType = 99
)

// NullData is the length/indicator value reported for a NULL column.
const NullData int64 = -1

// NoTotal is the length/indicator value reported when the remaining length is unknown.
const NoTotal int64 = -4

var cDataTypeNames = map[CDataType]string{
	Char:          "SQL_C_CHAR",
	WChar:         "SQL_C_WCHAR",
	Binary:        "SQL_C_BINARY",
	Bit:           "SQL_C_BIT",
	Double:        "SQL_C_DOUBLE",
	Float:         "SQL_C_FLOAT",
	SBigInt:       "SQL_C_SBIGINT",
	UBigInt:       "SQL_C_UBIGINT",
	SLong:         "SQL_C_SLONG",
	ULong:         "SQL_C_ULONG",
	SShort:        "SQL_C_SSHORT",
	UShort:        "SQL_C_USHORT",
	STinyInt:      "SQL_C_STINYINT",
	UTinyInt:      "SQL_C_UTINYINT",
	Date:          "SQL_C_DATE",
	Time:          "SQL_C_TIME",
	TimeStamp:     "SQL_C_TIMESTAMP",
	TypeDate:      "SQL_C_TYPE_DATE",
	TypeTime:      "SQL_C_TYPE_TIME",
	TypeTimestamp: "SQL_C_TYPE_TIMESTAMP",
	Guid:          "SQL_C_GUID",
	Default:       "SQL_C_DEFAULT",
}

func (t CDataType) String() string {
	if name, ok := cDataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CDataType(%d)", int16(t))
}

// IsKnown returns whether |t| is one of the C types this driver can write.
func (t CDataType) IsKnown() bool {
	_, ok := cDataTypeNames[t]
	return ok
}

// IsVariable returns whether values of this type may be delivered in pieces.
func (t CDataType) IsVariable() bool {
	switch t {
	case Char, WChar, Binary:
		return true
	}
	return false
}

// UnitSize is the width in bytes of one character (or byte) of a variable length type. Capacities and
// reported lengths for the type are expressed in these units.
func (t CDataType) UnitSize() int {
	if t == WChar {
		return 2
	}
	return 1
}

// IsNullTerminated returns whether the type is a character string that gets a terminator after its
// final piece.
func (t CDataType) IsNullTerminated() bool {
	return t == Char || t == WChar
}

// FixedSize returns the number of bytes a fixed width value of this type occupies, or 0 for variable
// length and unknown types.
func (t CDataType) FixedSize() int {
	switch t {
	case Bit, STinyInt, UTinyInt:
		return 1
	case SShort, UShort:
		return 2
	case SLong, ULong, Float:
		return 4
	case SBigInt, UBigInt, Double:
		return 8
	case Date, TypeDate:
		return DateSize
	case Time, TypeTime:
		return TimeSize
	case TimeStamp, TypeTimestamp:
		return TimestampSize
	case Guid:
		return GUIDSize
	}
	return 0
}
