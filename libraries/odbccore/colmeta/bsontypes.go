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

// Package colmeta describes the columns of a result set: the simplified schema the server reports
// for each column and the SQL typing derived from it.
package colmeta

import "gopkg.in/src-d/go-errors.v1"

var ErrUnknownBsonType = errors.NewKind("unknown bson type name `%s`")

// BsonTypeName is a server side type name as it appears in a $jsonSchema bsonType.
type BsonTypeName string

const (
	BsonDouble              BsonTypeName = "double"
	BsonString              BsonTypeName = "string"
	BsonObject              BsonTypeName = "object"
	BsonArray               BsonTypeName = "array"
	BsonBinData             BsonTypeName = "binData"
	BsonUndefined           BsonTypeName = "undefined"
	BsonObjectId            BsonTypeName = "objectId"
	BsonBool                BsonTypeName = "bool"
	BsonDate                BsonTypeName = "date"
	BsonNull                BsonTypeName = "null"
	BsonRegex               BsonTypeName = "regex"
	BsonDbPointer           BsonTypeName = "dbPointer"
	BsonJavascript          BsonTypeName = "javascript"
	BsonSymbol              BsonTypeName = "symbol"
	BsonJavascriptWithScope BsonTypeName = "javascriptWithScope"
	BsonInt                 BsonTypeName = "int"
	BsonTimestamp           BsonTypeName = "timestamp"
	BsonLong                BsonTypeName = "long"
	BsonDecimal             BsonTypeName = "decimal"
	BsonMinKey              BsonTypeName = "minKey"
	BsonMaxKey              BsonTypeName = "maxKey"
)

var knownBsonTypes = map[BsonTypeName]struct{}{
	BsonDouble: {}, BsonString: {}, BsonObject: {}, BsonArray: {}, BsonBinData: {}, BsonUndefined: {},
	BsonObjectId: {}, BsonBool: {}, BsonDate: {}, BsonNull: {}, BsonRegex: {}, BsonDbPointer: {},
	BsonJavascript: {}, BsonSymbol: {}, BsonJavascriptWithScope: {}, BsonInt: {}, BsonTimestamp: {},
	BsonLong: {}, BsonDecimal: {}, BsonMinKey: {}, BsonMaxKey: {},
}

// ParseBsonTypeName validates |s| against the set of server type names.
func ParseBsonTypeName(s string) (BsonTypeName, error) {
	name := BsonTypeName(s)
	if _, ok := knownBsonTypes[name]; !ok {
		return "", ErrUnknownBsonType.New(s)
	}
	return name, nil
}

func (n BsonTypeName) isNullish() bool {
	return n == BsonNull || n == BsonUndefined
}
