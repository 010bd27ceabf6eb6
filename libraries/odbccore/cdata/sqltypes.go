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

import "fmt"

// SqlDataType is the SQL type a column reports to the application.
type SqlDataType int16

const (
	SqlUnknownType   SqlDataType = 0
	SqlChar          SqlDataType = 1
	SqlDecimal       SqlDataType = 3
	SqlInteger       SqlDataType = 4
	SqlDouble        SqlDataType = 8
	SqlVarchar       SqlDataType = 12
	SqlTypeTimestamp SqlDataType = 93
	SqlBit           SqlDataType = -7
	SqlBigInt        SqlDataType = -5
	SqlLongVarBinary SqlDataType = -4
	SqlVarBinary     SqlDataType = -3
	SqlBinary        SqlDataType = -2
	SqlWVarchar      SqlDataType = -9
	SqlGuid          SqlDataType = -11
)

var sqlDataTypeNames = map[SqlDataType]string{
	SqlUnknownType:   "SQL_UNKNOWN_TYPE",
	SqlChar:          "SQL_CHAR",
	SqlDecimal:       "SQL_DECIMAL",
	SqlInteger:       "SQL_INTEGER",
	SqlDouble:        "SQL_DOUBLE",
	SqlVarchar:       "SQL_VARCHAR",
	SqlTypeTimestamp: "SQL_TYPE_TIMESTAMP",
	SqlBit:           "SQL_BIT",
	SqlBigInt:        "SQL_BIGINT",
	SqlLongVarBinary: "SQL_LONGVARBINARY",
	SqlVarBinary:     "SQL_VARBINARY",
	SqlBinary:        "SQL_BINARY",
	SqlWVarchar:      "SQL_WVARCHAR",
	SqlGuid:          "SQL_GUID",
}

func (t SqlDataType) String() string {
	if name, ok := sqlDataTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SqlDataType(%d)", int16(t))
}

// DefaultCType returns the C type SQL_C_DEFAULT resolves to for a column of this SQL type.
func (t SqlDataType) DefaultCType() CDataType {
	switch t {
	case SqlBit:
		return Bit
	case SqlInteger:
		return SLong
	case SqlBigInt:
		return SBigInt
	case SqlDouble:
		return Double
	case SqlTypeTimestamp:
		return TypeTimestamp
	case SqlBinary, SqlVarBinary, SqlLongVarBinary:
		return Binary
	case SqlGuid:
		return Guid
	case SqlChar, SqlVarchar, SqlDecimal:
		return Char
	}
	return WChar
}

// SqlReturn is the status code an ODBC function hands back to the application.
type SqlReturn int16

const (
	Success         SqlReturn = 0
	SuccessWithInfo SqlReturn = 1
	NoData          SqlReturn = 100
	Error           SqlReturn = -1
	InvalidHandle   SqlReturn = -2
)

func (r SqlReturn) String() string {
	switch r {
	case Success:
		return "SQL_SUCCESS"
	case SuccessWithInfo:
		return "SQL_SUCCESS_WITH_INFO"
	case NoData:
		return "SQL_NO_DATA"
	case Error:
		return "SQL_ERROR"
	case InvalidHandle:
		return "SQL_INVALID_HANDLE"
	}
	return fmt.Sprintf("SqlReturn(%d)", int16(r))
}
