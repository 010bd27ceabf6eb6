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
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"gopkg.in/src-d/go-errors.v1"
)

var ErrInvalidResultSetJsonSchema = errors.NewKind("invalid result set schema: %s")

// SqlGetSchemaResponse is the reply of the sqlGetResultSchema command.
type SqlGetSchemaResponse struct {
	Ok     float64             `bson:"ok"`
	Schema VersionedJsonSchema `bson:"schema"`
}

type VersionedJsonSchema struct {
	Version    int32      `bson:"version"`
	JsonSchema JsonSchema `bson:"jsonSchema"`
}

// JsonSchema is the subset of $jsonSchema the server uses to describe result sets. bsonType may be
// a single name or a list, and items may be a schema or a list of schemas, so both are kept raw.
type JsonSchema struct {
	BsonType             bson.RawValue         `bson:"bsonType,omitempty"`
	Properties           map[string]JsonSchema `bson:"properties,omitempty"`
	AnyOf                []JsonSchema          `bson:"anyOf,omitempty"`
	Required             []string              `bson:"required,omitempty"`
	Items                bson.RawValue         `bson:"items,omitempty"`
	AdditionalProperties *bool                 `bson:"additionalProperties,omitempty"`
}

func (js JsonSchema) bsonTypes() ([]string, error) {
	switch js.BsonType.Type {
	case 0:
		return nil, nil
	case bsontype.String:
		return []string{js.BsonType.StringValue()}, nil
	case bsontype.Array:
		vals, err := js.BsonType.Array().Values()
		if err != nil {
			return nil, ErrInvalidResultSetJsonSchema.Wrap(err, "malformed bsonType list")
		}
		names := make([]string, 0, len(vals))
		for _, v := range vals {
			s, ok := v.StringValueOK()
			if !ok {
				return nil, ErrInvalidResultSetJsonSchema.New("bsonType list contains a non-string")
			}
			names = append(names, s)
		}
		return names, nil
	}
	return nil, ErrInvalidResultSetJsonSchema.New("bsonType must be a string or an array of strings")
}

func (js JsonSchema) itemsSchema() (Schema, error) {
	if js.Items.Type != bsontype.EmbeddedDocument {
		return AnySchema, nil
	}
	var items JsonSchema
	if err := js.Items.Unmarshal(&items); err != nil {
		return UnsatSchema, ErrInvalidResultSetJsonSchema.Wrap(err, "malformed items")
	}
	return items.ToSchema()
}

func (js JsonSchema) isRequired(field string) bool {
	for _, r := range js.Required {
		if r == field {
			return true
		}
	}
	return false
}

// ToSchema simplifies a $jsonSchema.
func (js JsonSchema) ToSchema() (Schema, error) {
	if len(js.AnyOf) > 0 {
		members := make([]Schema, 0, len(js.AnyOf))
		for _, sub := range js.AnyOf {
			s, err := sub.ToSchema()
			if err != nil {
				return UnsatSchema, err
			}
			members = append(members, s)
		}
		return AnyOf(members...), nil
	}

	names, err := js.bsonTypes()
	if err != nil {
		return UnsatSchema, err
	}
	if len(names) == 0 {
		return AnySchema, nil
	}

	members := make([]Schema, 0, len(names))
	for _, n := range names {
		name, err := ParseBsonTypeName(n)
		if err != nil {
			return UnsatSchema, err
		}
		switch name {
		case BsonObject:
			members = append(members, ObjectSchema)
		case BsonArray:
			items, err := js.itemsSchema()
			if err != nil {
				return UnsatSchema, err
			}
			members = append(members, ArrayOf(items))
		default:
			members = append(members, Scalar(name))
		}
	}
	return AnyOf(members...), nil
}

func (js JsonSchema) isObject() bool {
	names, err := js.bsonTypes()
	return err == nil && len(names) == 1 && names[0] == string(BsonObject)
}

// ProcessResultMetadata turns the result set schema into column metadata sorted by table and
// column name. The top level schema is an object whose properties are tables, each an object whose
// properties are columns.
func (r SqlGetSchemaResponse) ProcessResultMetadata(catalog string, mode TypeMode) ([]ColumnMetadata, error) {
	top := r.Schema.JsonSchema
	if !top.isObject() {
		return nil, ErrInvalidResultSetJsonSchema.New("top level schema is not an object")
	}

	var mds []ColumnMetadata
	for table, tableSchema := range top.Properties {
		if !tableSchema.isObject() {
			return nil, ErrInvalidResultSetJsonSchema.New("schema for `" + table + "` is not an object")
		}
		for col, colSchema := range tableSchema.Properties {
			schema, err := colSchema.ToSchema()
			if err != nil {
				return nil, err
			}
			nullability := Nullable
			if schema.Kind == AnyKind {
				nullability = NullableUnknown
			} else if tableSchema.isRequired(col) && !schema.ContainsNull() {
				nullability = NoNulls
			}
			mds = append(mds, NewColumnMetadata(catalog, table, col, schema, nullability, mode))
		}
	}
	Sort(mds)
	return mds, nil
}
