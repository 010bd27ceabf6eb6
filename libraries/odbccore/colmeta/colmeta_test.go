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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
)

func decodeResponse(t *testing.T, doc bson.D) SqlGetSchemaResponse {
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var resp SqlGetSchemaResponse
	require.NoError(t, bson.Unmarshal(raw, &resp))
	return resp
}

func TestProcessResultMetadata(t *testing.T) {
	resp := decodeResponse(t, bson.D{
		{Key: "ok", Value: 1.0},
		{Key: "schema", Value: bson.D{
			{Key: "version", Value: int32(1)},
			{Key: "jsonSchema", Value: bson.D{
				{Key: "bsonType", Value: "object"},
				{Key: "properties", Value: bson.D{
					{Key: "foo", Value: bson.D{
						{Key: "bsonType", Value: "object"},
						{Key: "required", Value: bson.A{"b", "a"}},
						{Key: "properties", Value: bson.D{
							{Key: "b", Value: bson.D{{Key: "bsonType", Value: "int"}}},
							{Key: "a", Value: bson.D{{Key: "bsonType", Value: bson.A{"string", "null"}}}},
							{Key: "c", Value: bson.D{}},
						}},
					}},
					{Key: "bar", Value: bson.D{
						{Key: "bsonType", Value: "object"},
						{Key: "properties", Value: bson.D{
							{Key: "arr", Value: bson.D{
								{Key: "bsonType", Value: "array"},
								{Key: "items", Value: bson.D{{Key: "bsonType", Value: "long"}}},
							}},
						}},
					}},
				}},
			}},
		}},
	})

	mds, err := resp.ProcessResultMetadata("test", StandardTypeMode)
	require.NoError(t, err)
	require.Len(t, mds, 4)

	names := make([]string, len(mds))
	for i, md := range mds {
		names[i] = md.FullName()
	}
	assert.Equal(t, []string{"bar.arr", "foo.a", "foo.b", "foo.c"}, names)

	assert.Equal(t, "array<long>", mds[0].Schema.String())
	assert.Equal(t, cdata.SqlUnknownType, mds[0].SqlType)
	assert.Equal(t, Nullable, mds[0].Nullability)

	assert.Equal(t, Nullable, mds[1].Nullability)
	assert.Equal(t, cdata.SqlWVarchar, mds[1].SqlType)
	assert.Equal(t, "string", mds[1].TypeName)

	assert.Equal(t, NoNulls, mds[2].Nullability)
	assert.Equal(t, cdata.SqlInteger, mds[2].SqlType)
	assert.Equal(t, uint64(10), mds[2].ColumnSize)
	assert.Equal(t, "test", mds[2].CatalogName)

	assert.Equal(t, AnyKind, mds[3].Schema.Kind)
	assert.Equal(t, NullableUnknown, mds[3].Nullability)
}

func TestProcessResultMetadataErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema bson.D
		kind   interface{ Is(error) bool }
	}{
		{
			name:   "top level not an object",
			schema: bson.D{{Key: "bsonType", Value: "array"}},
			kind:   ErrInvalidResultSetJsonSchema,
		},
		{
			name: "table not an object",
			schema: bson.D{
				{Key: "bsonType", Value: "object"},
				{Key: "properties", Value: bson.D{{Key: "foo", Value: bson.D{{Key: "bsonType", Value: "int"}}}}},
			},
			kind: ErrInvalidResultSetJsonSchema,
		},
		{
			name: "unknown type name",
			schema: bson.D{
				{Key: "bsonType", Value: "object"},
				{Key: "properties", Value: bson.D{{Key: "foo", Value: bson.D{
					{Key: "bsonType", Value: "object"},
					{Key: "properties", Value: bson.D{{Key: "x", Value: bson.D{{Key: "bsonType", Value: "quaternion"}}}}},
				}}}},
			},
			kind: ErrUnknownBsonType,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp := decodeResponse(t, bson.D{
				{Key: "ok", Value: 1.0},
				{Key: "schema", Value: bson.D{{Key: "version", Value: int32(1)}, {Key: "jsonSchema", Value: test.schema}}},
			})
			_, err := resp.ProcessResultMetadata("", StandardTypeMode)
			require.Error(t, err)
			assert.True(t, test.kind.Is(err), err.Error())
		})
	}
}

func TestSchemaNullHandling(t *testing.T) {
	s := AnyOf(Scalar(BsonInt), Scalar(BsonNull))
	assert.True(t, s.ContainsNull())
	assert.Equal(t, Scalar(BsonInt), s.WithoutNull())
	assert.False(t, Scalar(BsonLong).ContainsNull())
	assert.Equal(t, UnsatSchema, AnyOf())
	assert.Equal(t, "anyOf(int|string)", AnyOf(Scalar(BsonString), AnyOf(Scalar(BsonInt))).String())
}

func TestNewColumnMetadataTypeModes(t *testing.T) {
	poly := AnyOf(Scalar(BsonInt), Scalar(BsonString))

	std := NewColumnMetadata("", "t", "c", poly, Nullable, StandardTypeMode)
	assert.Equal(t, cdata.SqlUnknownType, std.SqlType)
	assert.Equal(t, "bson", std.TypeName)

	simple := NewColumnMetadata("", "t", "c", poly, Nullable, SimpleTypeMode)
	assert.Equal(t, cdata.SqlWVarchar, simple.SqlType)

	date := NewColumnMetadata("", "t", "d", AnyOf(Scalar(BsonDate), Scalar(BsonNull)), Nullable, SimpleTypeMode)
	assert.Equal(t, cdata.SqlTypeTimestamp, date.SqlType)
	assert.Equal(t, int16(3), date.DecimalDigits)

	mode, ok := ParseTypeMode("Simple")
	assert.True(t, ok)
	assert.Equal(t, SimpleTypeMode, mode)
	_, ok = ParseTypeMode("fancy")
	assert.False(t, ok)
}
