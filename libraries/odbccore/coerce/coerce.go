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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
)

// Coerced is a value converted for a C type. Data holds the little endian struct layout for fixed
// width types, and the full payload (UTF-8, UTF-16LE or raw bytes) for variable length ones.
type Coerced struct {
	CType    cdata.CDataType
	Null     bool
	Data     []byte
	Warnings []error
}

// IsNull returns whether |v| is SQL NULL. A zero RawValue is how a missing field is represented.
func IsNull(v bson.RawValue) bool {
	switch v.Type {
	case 0, bsontype.Null, bsontype.Undefined:
		return true
	}
	return false
}

// Coerce converts |v| for |target|. Null values convert to a NULL result for every target. A
// returned error never carries a usable value; warnings are collected in Coerced.Warnings.
func Coerce(v bson.RawValue, target cdata.CDataType) (Coerced, error) {
	if IsNull(v) {
		return Coerced{CType: target, Null: true}, nil
	}

	data, err := encode(v, target)
	if err != nil && !IsWarning(err) {
		return Coerced{}, err
	}

	c := Coerced{CType: target, Data: data}
	if err != nil {
		c.Warnings = append(c.Warnings, err)
	}
	return c, nil
}

func encode(v bson.RawValue, target cdata.CDataType) ([]byte, error) {
	le := binary.LittleEndian
	switch target {
	case cdata.Char:
		s, err := ToString(v)
		return []byte(s), err
	case cdata.WChar:
		s, err := ToString(v)
		if err != nil {
			return nil, err
		}
		return EncodeUTF16(s)
	case cdata.Binary:
		return ToBinary(v)
	case cdata.Guid:
		g, err := ToGUID(v)
		return g.Bytes(), err
	case cdata.Bit:
		b, err := ToBool(v)
		if b {
			return []byte{1}, err
		}
		return []byte{0}, err
	case cdata.SBigInt:
		i, err := ToInt64(v)
		return le.AppendUint64(nil, uint64(i)), err
	case cdata.UBigInt:
		u, err := ToUint64(v)
		return le.AppendUint64(nil, u), err
	case cdata.SLong:
		i, err := ToInt32(v)
		return le.AppendUint32(nil, uint32(i)), err
	case cdata.ULong:
		u, err := ToUint32(v)
		return le.AppendUint32(nil, u), err
	case cdata.SShort:
		i, err := ToInt16(v)
		return le.AppendUint16(nil, uint16(i)), err
	case cdata.UShort:
		u, err := ToUint16(v)
		return le.AppendUint16(nil, u), err
	case cdata.STinyInt:
		i, err := ToInt8(v)
		return []byte{byte(i)}, err
	case cdata.UTinyInt:
		u, err := ToUint8(v)
		return []byte{u}, err
	case cdata.Double:
		f, err := ToFloat64(v)
		return le.AppendUint64(nil, math.Float64bits(f)), err
	case cdata.Float:
		f, err := ToFloat32(v)
		return le.AppendUint32(nil, math.Float32bits(f)), err
	case cdata.TimeStamp, cdata.TypeTimestamp:
		ts, err := ToTimestamp(v)
		return ts.Bytes(), err
	case cdata.Date, cdata.TypeDate:
		d, err := ToDate(v)
		return d.Bytes(), err
	case cdata.Time, cdata.TypeTime:
		t, err := ToTime(v)
		return t.Bytes(), err
	}
	return nil, unsupported(v, target)
}
