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

package query

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/dolthub/docodbc/libraries/odbccore/colmeta"
)

// MockQuery is a Statement over documents held in memory.
type MockQuery struct {
	rows []bson.Raw
	md   []colmeta.ColumnMetadata
	// index of the current row, -1 before the first call to Next
	idx int
}

var _ Statement = (*MockQuery)(nil)

// NewMockQuery returns a statement yielding |docs| in order. Each doc may be anything bson.Marshal
// accepts. |md| is sorted in place.
func NewMockQuery(md []colmeta.ColumnMetadata, docs ...interface{}) (*MockQuery, error) {
	rows := make([]bson.Raw, len(docs))
	for i, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return nil, err
		}
		rows[i] = raw
	}

	colmeta.Sort(md)
	return &MockQuery{rows: rows, md: md, idx: -1}, nil
}

func (q *MockQuery) Execute(context.Context) (bool, error) {
	return true, nil
}

func (q *MockQuery) Next(context.Context) (bool, []error, error) {
	if q.idx < len(q.rows) {
		q.idx++
	}
	return q.idx < len(q.rows), nil, nil
}

func (q *MockQuery) Current() bson.Raw {
	if q.idx < 0 || q.idx >= len(q.rows) {
		return nil
	}
	return q.rows[q.idx]
}

func (q *MockQuery) ResultSetMetadata() []colmeta.ColumnMetadata {
	return q.md
}

func (q *MockQuery) Close(context.Context) error {
	q.idx = len(q.rows)
	return nil
}
