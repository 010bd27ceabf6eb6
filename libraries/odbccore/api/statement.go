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

// Package api implements the statement handle verbs that drive a result set: execute, fetch and
// column retrieval. Every verb replaces the handle's diagnostics and returns an ODBC return code.
package api

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dolthub/docodbc/libraries/odbccore/buffer"
	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
	"github.com/dolthub/docodbc/libraries/odbccore/colmeta"
	"github.com/dolthub/docodbc/libraries/odbccore/cursor"
	"github.com/dolthub/docodbc/libraries/odbccore/diag"
	"github.com/dolthub/docodbc/libraries/odbccore/query"
)

var noResultSet = diag.Record{SQLState: "HY010", Message: diag.APIPrefix + "No ResultSet"}

type StatementState int

const (
	Allocated StatementState = iota
	Attached
	Executed
)

// Statement is a statement handle. It is safe for concurrent use, though calls are serialized.
type Statement struct {
	mu    sync.RWMutex
	state StatementState
	stmt  query.Statement
	cur   *cursor.Cursor
	diags diag.Stack
	lgr   *logrus.Entry
}

func NewStatement(lgr *logrus.Entry) *Statement {
	if lgr == nil {
		lgr = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Statement{lgr: lgr}
}

func (s *Statement) State() StatementState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Attach makes |stmt| the statement's result set source, replacing any previous one. Rows may be
// fetched from it immediately.
func (s *Statement) Attach(stmt query.Statement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags.Clear()
	s.stmt = stmt
	s.cur = cursor.New(stmt, s.lgr)
	s.state = Attached
}

func (s *Statement) Execute(ctx context.Context) cdata.SqlReturn {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags.Clear()

	if s.stmt == nil {
		s.diags.PushRecord(noResultSet)
		return cdata.Error
	}

	if _, err := s.stmt.Execute(ctx); err != nil {
		s.lgr.WithError(err).Warn("execute failed")
		s.diags.Push(err)
		return cdata.Error
	}
	s.cur = cursor.New(s.stmt, s.lgr)
	s.state = Executed
	return cdata.Success
}

// Fetch advances to the next row.
func (s *Statement) Fetch(ctx context.Context) cdata.SqlReturn {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags.Clear()

	if s.cur == nil {
		s.diags.PushRecord(noResultSet)
		return cdata.Error
	}

	ok, warnings, err := s.cur.Advance(ctx)
	if err != nil {
		s.lgr.WithError(err).Warn("fetch failed")
		s.diags.Push(err)
		return cdata.Error
	}
	for _, w := range warnings {
		s.diags.Push(w)
	}
	if !ok {
		return cdata.NoData
	}
	if len(warnings) > 0 {
		return cdata.SuccessWithInfo
	}
	return cdata.Success
}

// GetData reads column |col| of the current row into |buf|, as SQLGetData does. Capacity is in
// bytes, or in characters for wide character targets. |ind| may be nil unless the value is NULL.
func (s *Statement) GetData(col int, ctype cdata.CDataType, buf []byte, capacity int, ind *int64) cdata.SqlReturn {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags.Clear()

	if s.cur == nil {
		s.diags.PushRecord(noResultSet)
		return cdata.Error
	}

	tr, err := s.cur.GetData(col, buffer.Target{CType: ctype, Buf: buf, Capacity: capacity, Indicator: ind})
	if err != nil {
		s.diags.Push(err)
		return cdata.Error
	}
	for _, w := range tr.Warnings {
		s.diags.Push(w)
	}
	return tr.Status.SqlReturn()
}

// MoreResults always reports NO_DATA; statements produce a single result set.
func (s *Statement) MoreResults() cdata.SqlReturn {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags.Clear()
	return cdata.NoData
}

func (s *Statement) NumResultCols() (int, cdata.SqlReturn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags.Clear()

	if s.cur == nil {
		return 0, cdata.Success
	}
	return s.cur.NumColumns(), cdata.Success
}

// DescribeCol returns the metadata of the 1-based column |col|.
func (s *Statement) DescribeCol(col int) (colmeta.ColumnMetadata, cdata.SqlReturn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags.Clear()

	if s.cur == nil {
		s.diags.PushRecord(noResultSet)
		return colmeta.ColumnMetadata{}, cdata.Error
	}
	md, err := s.cur.ColumnMetadata(col)
	if err != nil {
		s.diags.Push(err)
		return colmeta.ColumnMetadata{}, cdata.Error
	}
	return md, cdata.Success
}

// Close releases the result set. The statement may be attached again afterwards.
func (s *Statement) Close(ctx context.Context) cdata.SqlReturn {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diags.Clear()

	if s.stmt == nil {
		return cdata.Success
	}
	err := s.stmt.Close(ctx)
	s.stmt, s.cur, s.state = nil, nil, Allocated
	if err != nil {
		s.diags.Push(err)
		return cdata.Error
	}
	return cdata.Success
}

// Diagnostics returns the records left by the most recent call.
func (s *Statement) Diagnostics() []diag.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.diags.Records()
	out := make([]diag.Record, len(records))
	copy(out, records)
	return out
}
