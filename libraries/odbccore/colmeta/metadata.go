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

package colmeta

import (
	"sort"
	"strings"

	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
)

// Nullability values match SQL_NO_NULLS, SQL_NULLABLE and SQL_NULLABLE_UNKNOWN.
type Nullability int16

const (
	NoNulls         Nullability = 0
	Nullable        Nullability = 1
	NullableUnknown Nullability = 2
)

// TypeMode selects how columns without a single scalar type are reported to applications.
type TypeMode uint8

const (
	// StandardTypeMode reports objects, arrays and polymorphic columns as SQL_UNKNOWN_TYPE.
	StandardTypeMode TypeMode = iota
	// SimpleTypeMode reports them as wide strings holding extended JSON.
	SimpleTypeMode
)

func ParseTypeMode(s string) (TypeMode, bool) {
	switch strings.ToLower(s) {
	case "", "standard":
		return StandardTypeMode, true
	case "simple":
		return SimpleTypeMode, true
	}
	return StandardTypeMode, false
}

func (m TypeMode) String() string {
	if m == SimpleTypeMode {
		return "simple"
	}
	return "standard"
}

// ColumnMetadata describes one column of a result set. Values are immutable once built.
type ColumnMetadata struct {
	CatalogName   string
	TableName     string
	ColName       string
	Schema        Schema
	Nullability   Nullability
	SqlType       cdata.SqlDataType
	TypeName      string
	ColumnSize    uint64
	DecimalDigits int16
}

type scalarTyping struct {
	sqlType       cdata.SqlDataType
	columnSize    uint64
	decimalDigits int16
}

var scalarTypings = map[BsonTypeName]scalarTyping{
	BsonDouble:   {cdata.SqlDouble, 15, 15},
	BsonString:   {cdata.SqlWVarchar, 0, 0},
	BsonBinData:  {cdata.SqlBinary, 0, 0},
	BsonObjectId: {cdata.SqlVarchar, 24, 0},
	BsonBool:     {cdata.SqlBit, 1, 0},
	BsonDate:     {cdata.SqlTypeTimestamp, 23, 3},
	BsonInt:      {cdata.SqlInteger, 10, 0},
	BsonLong:     {cdata.SqlBigInt, 19, 0},
	BsonDecimal:  {cdata.SqlDecimal, 34, 34},
}

// NewColumnMetadata derives the SQL typing of a column from its schema.
func NewColumnMetadata(catalog, table, col string, schema Schema, nullability Nullability, mode TypeMode) ColumnMetadata {
	md := ColumnMetadata{
		CatalogName: catalog,
		TableName:   table,
		ColName:     col,
		Schema:      schema,
		Nullability: nullability,
		SqlType:     cdata.SqlUnknownType,
		TypeName:    "bson",
	}
	if mode == SimpleTypeMode {
		md.SqlType = cdata.SqlWVarchar
	}

	nonNull := schema.WithoutNull()
	if nonNull.Kind != ScalarKind {
		return md
	}
	md.TypeName = string(nonNull.Scalar)
	if typing, ok := scalarTypings[nonNull.Scalar]; ok {
		md.SqlType = typing.sqlType
		md.ColumnSize = typing.columnSize
		md.DecimalDigits = typing.decimalDigits
	}
	return md
}

// FullName returns the column usable as a dotted path, e.g. "foo.bar".
func (md ColumnMetadata) FullName() string {
	if md.TableName == "" {
		return md.ColName
	}
	return md.TableName + "." + md.ColName
}

// Sort orders |mds| by table name and then column name, which is the order column indexes are
// assigned in.
func Sort(mds []ColumnMetadata) {
	sort.SliceStable(mds, func(i, j int) bool {
		if mds[i].TableName != mds[j].TableName {
			return mds[i].TableName < mds[j].TableName
		}
		return mds[i].ColName < mds[j].ColName
	})
}
