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
	"encoding/binary"
	"math"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
)

// BinarySubtypeUUID is the binary subtype of an RFC 4122 UUID.
const BinarySubtypeUUID byte = 0x04

// ToBinary returns the bytes of binary values and the little endian encoding of numeric scalars.
// Strings return their UTF-8 bytes.
func ToBinary(v bson.RawValue) ([]byte, error) {
	le := binary.LittleEndian
	switch v.Type {
	case bsontype.Binary:
		_, data := v.Binary()
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	case bsontype.String:
		return []byte(v.StringValue()), nil
	case bsontype.Boolean:
		if v.Boolean() {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case bsontype.Int32:
		return le.AppendUint32(nil, uint32(v.Int32())), nil
	case bsontype.Int64:
		return le.AppendUint64(nil, uint64(v.Int64())), nil
	case bsontype.DateTime:
		return le.AppendUint64(nil, uint64(v.DateTime())), nil
	case bsontype.Double:
		return le.AppendUint64(nil, math.Float64bits(v.Double())), nil
	case bsontype.Decimal128:
		high, low := v.Decimal128().GetBytes()
		return le.AppendUint64(le.AppendUint64(nil, low), high), nil
	}
	return nil, unsupported(v, cdata.Binary)
}

// ToGUID accepts only UUID subtype binaries of 16 bytes.
func ToGUID(v bson.RawValue) (cdata.GUID, error) {
	if v.Type != bsontype.Binary {
		return cdata.GUID{}, unsupported(v, cdata.Guid)
	}
	subtype, data := v.Binary()
	if subtype != BinarySubtypeUUID {
		return cdata.GUID{}, unsupported(v, cdata.Guid)
	}
	u, err := uuid.FromBytes(data)
	if err != nil {
		return cdata.GUID{}, ErrUnsupportedConversion.Wrap(err, v.Type.String(), cdata.Guid.String())
	}
	return cdata.GUID(u), nil
}
