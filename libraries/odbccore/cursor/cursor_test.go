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

package cursor

import (
	"context"
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/dolthub/docodbc/libraries/odbccore/buffer"
	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
	"github.com/dolthub/docodbc/libraries/odbccore/coerce"
	"github.com/dolthub/docodbc/libraries/odbccore/colmeta"
	"github.com/dolthub/docodbc/libraries/odbccore/query"
)

func intColumn(table, col string) colmeta.ColumnMetadata {
	return colmeta.NewColumnMetadata("", table, col, colmeta.Scalar(colmeta.BsonInt), colmeta.NoNulls, colmeta.StandardTypeMode)
}

func row(table string, fields bson.D) bson.D {
	return bson.D{{Key: table, Value: fields}}
}

func newCursor(t *testing.T, md []colmeta.ColumnMetadata, docs ...interface{}) *Cursor {
	q, err := query.NewMockQuery(md, docs...)
	require.NoError(t, err)
	_, err = q.Execute(context.Background())
	require.NoError(t, err)
	return New(q, nil)
}

func TestThreeRows(t *testing.T) {
	ctx := context.Background()
	c := newCursor(t, []colmeta.ColumnMetadata{intColumn("a", "b")},
		row("a", bson.D{{Key: "b", Value: int32(42)}}),
		row("a", bson.D{{Key: "b", Value: int32(43)}}),
		row("a", bson.D{{Key: "b", Value: int32(44)}}),
	)

	_, err := c.GetValue(1)
	assert.True(t, ErrInvalidCursorState.Is(err))

	for _, want := range []int32{42, 43, 44} {
		ok, _, err := c.Advance(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, Positioned, c.State())

		v, err := c.GetValue(1)
		require.NoError(t, err)
		assert.Equal(t, want, v.Int32())
	}

	ok, _, err := c.Advance(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Exhausted, c.State())

	_, err = c.GetValue(1)
	assert.True(t, ErrInvalidCursorState.Is(err))

	ok, _, err = c.Advance(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestColumnAddressing(t *testing.T) {
	c := newCursor(t, []colmeta.ColumnMetadata{intColumn("a", "b")}, row("a", bson.D{{Key: "b", Value: int32(7)}}))
	_, _, err := c.Advance(context.Background())
	require.NoError(t, err)

	v, err := c.GetValue(1)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v.Int32())

	for _, col := range []int{0, 2, -1} {
		_, err = c.GetValue(col)
		assert.True(t, ErrColumnIndexOutOfBounds.Is(err), "column %d", col)
	}
}

func TestMissingAndMalformed(t *testing.T) {
	md := []colmeta.ColumnMetadata{intColumn("a", "b"), intColumn("a", "c")}
	c := newCursor(t, md,
		row("a", bson.D{{Key: "b", Value: int32(1)}}),
		bson.D{{Key: "a", Value: "not a document"}},
		bson.D{{Key: "z", Value: bson.D{}}},
	)
	ctx := context.Background()

	_, _, err := c.Advance(ctx)
	require.NoError(t, err)
	v, err := c.GetValue(2)
	require.NoError(t, err)
	assert.Equal(t, bsontype.Type(0), v.Type)
	assert.True(t, coerce.IsNull(v))

	var ind int64
	tr, err := c.GetData(2, buffer.Target{CType: cdata.SLong, Buf: make([]byte, 4), Capacity: 4, Indicator: &ind})
	require.NoError(t, err)
	assert.Equal(t, buffer.Success, tr.Status)
	assert.Equal(t, cdata.NullData, ind)

	_, _, err = c.Advance(ctx)
	require.NoError(t, err)
	_, err = c.GetValue(1)
	assert.True(t, ErrValueAccess.Is(err))

	_, _, err = c.Advance(ctx)
	require.NoError(t, err)
	_, err = c.GetValue(1)
	assert.True(t, ErrValueAccess.Is(err))
	assert.Equal(t, Positioned, c.State())
}

func TestGetDataPieces(t *testing.T) {
	md := []colmeta.ColumnMetadata{
		colmeta.NewColumnMetadata("", "t", "s", colmeta.Scalar(colmeta.BsonString), colmeta.Nullable, colmeta.StandardTypeMode),
	}
	c := newCursor(t, md,
		row("t", bson.D{{Key: "s", Value: "abcdef"}}),
		row("t", bson.D{{Key: "s", Value: "xyz"}}),
	)
	ctx := context.Background()
	_, _, err := c.Advance(ctx)
	require.NoError(t, err)

	var ind int64
	buf := make([]byte, 4)
	dst := buffer.Target{CType: cdata.Char, Buf: buf, Capacity: 4, Indicator: &ind}

	tr, err := c.GetData(1, dst)
	require.NoError(t, err)
	assert.Equal(t, buffer.SuccessWithInfo, tr.Status)
	assert.Equal(t, "abcd", string(buf))

	_, err = c.GetData(1, buffer.Target{CType: cdata.SLong, Buf: make([]byte, 4), Capacity: 4, Indicator: &ind})
	assert.True(t, coerce.ErrInvalidNumericString.Is(err))

	tr, err = c.GetData(1, dst)
	require.NoError(t, err)
	assert.Equal(t, buffer.Success, tr.Status)
	assert.Equal(t, int64(2), ind)
	assert.Equal(t, "ef", string(buf[:2]))

	tr, err = c.GetData(1, dst)
	require.NoError(t, err)
	assert.Equal(t, buffer.NoData, tr.Status)

	_, _, err = c.Advance(ctx)
	require.NoError(t, err)
	tr, err = c.GetData(1, dst)
	require.NoError(t, err)
	assert.Equal(t, buffer.Success, tr.Status)
	assert.Equal(t, []byte("xyz\x00"), buf)
}

func TestGetDataTypeSwitch(t *testing.T) {
	md := []colmeta.ColumnMetadata{
		colmeta.NewColumnMetadata("", "t", "d", colmeta.Scalar(colmeta.BsonDouble), colmeta.Nullable, colmeta.StandardTypeMode),
		colmeta.NewColumnMetadata("", "t", "s", colmeta.Scalar(colmeta.BsonString), colmeta.Nullable, colmeta.StandardTypeMode),
	}
	c := newCursor(t, md, row("t", bson.D{{Key: "d", Value: 1.5}, {Key: "s", Value: "ééééé"}}))
	_, _, err := c.Advance(context.Background())
	require.NoError(t, err)

	var ind int64
	tr, err := c.GetData(1, buffer.Target{CType: cdata.Binary, Buf: make([]byte, 4), Capacity: 4, Indicator: &ind})
	require.NoError(t, err)
	assert.Equal(t, buffer.SuccessWithInfo, tr.Status)
	assert.Equal(t, int64(8), ind)

	buf := make([]byte, 16)
	tr, err = c.GetData(1, buffer.Target{CType: cdata.Char, Buf: buf, Capacity: 16, Indicator: &ind})
	require.NoError(t, err)
	assert.Equal(t, buffer.Success, tr.Status)
	assert.Equal(t, int64(3), ind)
	assert.Equal(t, "1.5", string(buf[:ind]))

	tr, err = c.GetData(2, buffer.Target{CType: cdata.Char, Buf: make([]byte, 4), Capacity: 4, Indicator: &ind})
	require.NoError(t, err)
	assert.Equal(t, buffer.SuccessWithInfo, tr.Status)
	assert.Equal(t, int64(10), ind)

	buf = make([]byte, 12)
	tr, err = c.GetData(2, buffer.Target{CType: cdata.WChar, Buf: buf, Capacity: 6, Indicator: &ind})
	require.NoError(t, err)
	assert.Equal(t, buffer.Success, tr.Status)
	assert.Equal(t, int64(5), ind)
	s, err := coerce.DecodeUTF16(buf[:10])
	require.NoError(t, err)
	assert.Equal(t, "ééééé", s)
}

func TestDefaultCType(t *testing.T) {
	c := newCursor(t, []colmeta.ColumnMetadata{intColumn("a", "b")}, row("a", bson.D{{Key: "b", Value: int32(-3)}}))
	_, _, err := c.Advance(context.Background())
	require.NoError(t, err)

	buf := make([]byte, 4)
	var ind int64
	_, err = c.GetData(1, buffer.Target{CType: cdata.Default, Buf: buf, Capacity: 4, Indicator: &ind})
	require.NoError(t, err)
	assert.Equal(t, int64(4), ind)
	assert.Equal(t, []byte{0xfd, 0xff, 0xff, 0xff}, buf)
}

type failingStatement struct {
	query.MockQuery
	calls int
}

func (s *failingStatement) Next(context.Context) (bool, []error, error) {
	s.calls++
	return false, nil, goerrors.New("socket closed")
}

func TestUpstreamFailure(t *testing.T) {
	stmt := &failingStatement{}
	c := New(stmt, nil)

	_, _, err := c.Advance(context.Background())
	require.EqualError(t, err, "socket closed")
	assert.Equal(t, Exhausted, c.State())

	ok, _, err := c.Advance(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, stmt.calls)
}
