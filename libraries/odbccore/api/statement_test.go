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

package api

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
	"github.com/dolthub/docodbc/libraries/odbccore/colmeta"
	"github.com/dolthub/docodbc/libraries/odbccore/query"
)

func threeRows(t *testing.T) *query.MockQuery {
	q, err := query.NewMockQuery(
		[]colmeta.ColumnMetadata{
			colmeta.NewColumnMetadata("", "a", "b", colmeta.Scalar(colmeta.BsonInt), colmeta.NoNulls, colmeta.StandardTypeMode),
		},
		bson.D{{Key: "a", Value: bson.D{{Key: "b", Value: int32(42)}}}},
		bson.D{{Key: "a", Value: bson.D{{Key: "b", Value: int32(43)}}}},
		bson.D{{Key: "a", Value: bson.D{{Key: "b", Value: int32(44)}}}},
	)
	require.NoError(t, err)
	return q
}

func TestFetchWithoutResultSet(t *testing.T) {
	s := NewStatement(nil)
	assert.Equal(t, cdata.Error, s.Fetch(context.Background()))

	diags := s.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "[DocODBC][API] No ResultSet", diags[0].Message)
	assert.Equal(t, "HY010", diags[0].SQLState)

	assert.Equal(t, cdata.Error, s.GetData(1, cdata.SLong, make([]byte, 4), 4, nil))
	assert.Equal(t, cdata.Error, s.Execute(context.Background()))
}

func TestFetchAndMoreResults(t *testing.T) {
	ctx := context.Background()
	s := NewStatement(nil)
	s.Attach(threeRows(t))

	n, ret := s.NumResultCols()
	assert.Equal(t, cdata.Success, ret)
	assert.Equal(t, 1, n)

	md, ret := s.DescribeCol(1)
	require.Equal(t, cdata.Success, ret)
	assert.Equal(t, "a.b", md.FullName())
	assert.Equal(t, cdata.SqlInteger, md.SqlType)

	buf := make([]byte, 4)
	var ind int64
	for _, want := range []uint32{42, 43, 44} {
		require.Equal(t, cdata.Success, s.Fetch(ctx))
		require.Equal(t, cdata.Success, s.GetData(1, cdata.SLong, buf, 4, &ind))
		assert.Equal(t, want, binary.LittleEndian.Uint32(buf))
		assert.Equal(t, int64(4), ind)
		assert.Equal(t, cdata.NoData, s.GetData(1, cdata.SLong, buf, 4, &ind))
	}
	assert.Equal(t, cdata.NoData, s.Fetch(ctx))
	assert.Equal(t, cdata.NoData, s.MoreResults())

	assert.Equal(t, cdata.Error, s.GetData(1, cdata.SLong, buf, 4, &ind))
	diags := s.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "24000", diags[0].SQLState)
}

func TestGetDataDiagnostics(t *testing.T) {
	ctx := context.Background()
	q, err := query.NewMockQuery(
		[]colmeta.ColumnMetadata{
			colmeta.NewColumnMetadata("", "t", "d", colmeta.Scalar(colmeta.BsonDouble), colmeta.NoNulls, colmeta.StandardTypeMode),
			colmeta.NewColumnMetadata("", "t", "s", colmeta.Scalar(colmeta.BsonString), colmeta.NoNulls, colmeta.StandardTypeMode),
		},
		bson.D{{Key: "t", Value: bson.D{{Key: "d", Value: 1.3}, {Key: "s", Value: "hello world!"}}}},
	)
	require.NoError(t, err)

	s := NewStatement(nil)
	s.Attach(q)
	require.Equal(t, cdata.Success, s.Execute(ctx))
	require.Equal(t, cdata.Success, s.Fetch(ctx))

	buf := make([]byte, 8)
	var ind int64
	assert.Equal(t, cdata.SuccessWithInfo, s.GetData(1, cdata.SLong, buf, 8, &ind))
	require.Len(t, s.Diagnostics(), 1)
	assert.Equal(t, "01S07", s.Diagnostics()[0].SQLState)

	assert.Equal(t, cdata.Error, s.GetData(2, cdata.SLong, buf, 8, &ind))
	assert.Equal(t, "22018", s.Diagnostics()[0].SQLState)

	assert.Equal(t, cdata.SuccessWithInfo, s.GetData(2, cdata.Char, buf, 8, &ind))
	assert.Equal(t, "01004", s.Diagnostics()[0].SQLState)
	assert.Equal(t, int64(12), ind)
	assert.Equal(t, cdata.Success, s.GetData(2, cdata.Char, buf, 8, &ind))
	assert.Equal(t, "rld!", string(buf[:4]))
	assert.Empty(t, s.Diagnostics())

	assert.Equal(t, cdata.Error, s.GetData(3, cdata.Char, buf, 8, &ind))
	assert.Equal(t, "07009", s.Diagnostics()[0].SQLState)

	_, ret := s.DescribeCol(0)
	assert.Equal(t, cdata.Error, ret)

	assert.Equal(t, cdata.Success, s.Close(ctx))
	assert.Equal(t, Allocated, s.State())
	assert.Equal(t, cdata.Error, s.Fetch(ctx))
}
