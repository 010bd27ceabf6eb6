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

// Package query provides the statements a cursor reads rows from: an in-memory statement used in
// tests and tooling, and one backed by a $sql aggregation.
package query

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/docodbc/libraries/odbccore/colmeta"
)

var (
	ErrNoDatabase           = errors.NewKind("no database set for the connection")
	ErrStatementNotExecuted = errors.NewKind("statement has not been executed")
	ErrQueryExecutionFailed = errors.NewKind("query execution failed")
	ErrQueryCursorUpdate    = errors.NewKind("failed to advance the result set cursor")
	ErrQueryDeserialization = errors.NewKind("failed to decode the result set schema")
)

// Statement is an executed or executable query with a forward only result set. Rows are documents
// keyed by table name, each holding a document keyed by column name.
type Statement interface {
	// Execute starts the query. It returns whether a result set is available.
	Execute(ctx context.Context) (bool, error)
	// Next moves to the following row, reporting whether one exists along with any warnings the
	// upstream produced while fetching it.
	Next(ctx context.Context) (bool, []error, error)
	// Current returns the row the statement is positioned on, or nil.
	Current() bson.Raw
	// ResultSetMetadata returns the columns of the result set, sorted by table then column name.
	ResultSetMetadata() []colmeta.ColumnMetadata
	Close(ctx context.Context) error
}
