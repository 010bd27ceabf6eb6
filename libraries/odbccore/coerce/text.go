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

package coerce

import (
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"golang.org/x/text/encoding/unicode"

	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
)

// DateTimeLayout is the text form of a BSON datetime, always in UTC.
const DateTimeLayout = "2006-01-02 15:04:05.000"

const extJSONKey = "v"

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ToString renders |v| as text. Scalars use their natural form, null and undefined render as NULL,
// and everything else renders as canonical extended JSON.
func ToString(v bson.RawValue) (string, error) {
	switch v.Type {
	case bsontype.Null, bsontype.Undefined:
		return "NULL", nil
	case bsontype.Boolean:
		return strconv.FormatBool(v.Boolean()), nil
	case bsontype.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10), nil
	case bsontype.Int64:
		return strconv.FormatInt(v.Int64(), 10), nil
	case bsontype.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64), nil
	case bsontype.String:
		return v.StringValue(), nil
	case bsontype.Decimal128:
		return v.Decimal128().String(), nil
	case bsontype.DateTime:
		return time.UnixMilli(v.DateTime()).UTC().Format(DateTimeLayout), nil
	case bsontype.Array, bsontype.EmbeddedDocument, bsontype.Binary, bsontype.ObjectID, bsontype.Regex,
		bsontype.JavaScript, bsontype.CodeWithScope, bsontype.Symbol, bsontype.DBPointer, bsontype.Timestamp,
		bsontype.MinKey, bsontype.MaxKey:
		return ExtendedJSON(v)
	}
	return "", unsupported(v, cdata.Char)
}

// ExtendedJSON renders a single value as canonical extended JSON, e.g. {"$oid":"..."} or
// {"$numberInt":"1"}. The value is marshalled as the only field of a wrapper document and the
// wrapper is cut away.
func ExtendedJSON(v bson.RawValue) (string, error) {
	out, err := bson.MarshalExtJSON(bson.D{{Key: extJSONKey, Value: v}}, true, false)
	if err != nil {
		return "", err
	}
	prefix := len(`{"` + extJSONKey + `":`)
	return string(out[prefix : len(out)-1]), nil
}

// EncodeUTF16 re-encodes UTF-8 text as little endian UTF-16 without a byte order mark.
func EncodeUTF16(s string) ([]byte, error) {
	return utf16le.NewEncoder().Bytes([]byte(s))
}

// DecodeUTF16 is the inverse of EncodeUTF16.
func DecodeUTF16(b []byte) (string, error) {
	out, err := utf16le.NewDecoder().Bytes(b)
	return string(out), err
}
