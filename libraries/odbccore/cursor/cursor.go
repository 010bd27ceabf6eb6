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

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/docodbc/libraries/odbccore/buffer"
	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
	"github.com/dolthub/docodbc/libraries/odbccore/coerce"
	"github.com/dolthub/docodbc/libraries/odbccore/colmeta"
	"github.com/dolthub/docodbc/libraries/odbccore/query"
)

var (
	ErrInvalidCursorState     = errors.NewKind("invalid cursor state: %s")
	ErrColumnIndexOutOfBounds = errors.NewKind("column index %d out of bounds, result set has %d columns")
	ErrValueAccess            = errors.NewKind("cannot read column %d: %s")
)

type State int

const (
	Unpositioned State = iota
	Positioned
	Exhausted
)

func (s State) String() string {
	switch s {
	case Unpositioned:
		return "unpositioned"
	case Positioned:
		return "positioned"
	case Exhausted:
		return "exhausted"
	}
	return "unknown"
}

// Cursor walks the rows of a statement and hands out column values, in pieces for variable length
// targets. Column indexes are 1-based.
type Cursor struct {
	stmt   query.Statement
	md     []colmeta.ColumnMetadata
	state  State
	pieces []buffer.PieceState
	lgr    *logrus.Entry
}

// New returns an unpositioned cursor over |stmt|, which must already be executed.
func New(stmt query.Statement, lgr *logrus.Entry) *Cursor {
	if lgr == nil {
		lgr = logrus.NewEntry(logrus.StandardLogger())
	}
	md := stmt.ResultSetMetadata()
	return &Cursor{
		stmt:   stmt,
		md:     md,
		pieces: make([]buffer.PieceState, len(md)),
		lgr:    lgr,
	}
}

func (c *Cursor) State() State {
	return c.state
}

func (c *Cursor) NumColumns() int {
	return len(c.md)
}

func (c *Cursor) Metadata() []colmeta.ColumnMetadata {
	return c.md
}

// ColumnMetadata returns the metadata of column |col|.
func (c *Cursor) ColumnMetadata(col int) (colmeta.ColumnMetadata, error) {
	if col < 1 || col > len(c.md) {
		return colmeta.ColumnMetadata{}, ErrColumnIndexOutOfBounds.New(col, len(c.md))
	}
	return c.md[col-1], nil
}

// Advance moves to the next row. Once no row remains, or the statement fails, the cursor is
// exhausted and further calls return false without consulting the statement.
func (c *Cursor) Advance(ctx context.Context) (bool, []error, error) {
	if c.state == Exhausted {
		return false, nil, nil
	}

	ok, warnings, err := c.stmt.Next(ctx)
	if err != nil || !ok {
		c.state = Exhausted
		return false, warnings, err
	}

	c.state = Positioned
	for i := range c.pieces {
		c.pieces[i].Reset()
	}
	return true, warnings, nil
}

// GetValue returns the raw value of column |col| in the current row. A field missing from the row is
// returned as the zero RawValue, which is NULL.
func (c *Cursor) GetValue(col int) (bson.RawValue, error) {
	if c.state != Positioned {
		return bson.RawValue{}, ErrInvalidCursorState.New(c.state)
	}
	md, err := c.ColumnMetadata(col)
	if err != nil {
		return bson.RawValue{}, err
	}

	row := c.stmt.Current()
	if row == nil {
		return bson.RawValue{}, ErrInvalidCursorState.New("no current row")
	}

	tbl, err := row.LookupErr(md.TableName)
	if err != nil {
		return bson.RawValue{}, ErrValueAccess.Wrap(err, col, "table "+md.TableName+" not present")
	}
	if tbl.Type != bsontype.EmbeddedDocument {
		return bson.RawValue{}, ErrValueAccess.New(col, "table "+md.TableName+" is a "+tbl.Type.String())
	}

	v, err := tbl.Document().LookupErr(md.ColName)
	if err == bsoncore.ErrElementNotFound {
		return bson.RawValue{}, nil
	} else if err != nil {
		return bson.RawValue{}, ErrValueAccess.Wrap(err, col, "malformed row")
	}
	return v, nil
}

// GetData converts column |col| for |dst| and writes the next piece of it. A Default target type
// resolves to the column's natural type. Failures leave the cursor and the column's progress as
// they were, so the caller may retry with another target.
func (c *Cursor) GetData(col int, dst buffer.Target) (buffer.Transfer, error) {
	v, err := c.GetValue(col)
	if err != nil {
		return buffer.Transfer{}, err
	}

	md := c.md[col-1]
	if dst.CType == cdata.Default {
		dst.CType = md.SqlType.DefaultCType()
	}

	cv, err := coerce.Coerce(v, dst.CType)
	if err != nil {
		return buffer.Transfer{}, err
	}

	st := &c.pieces[col-1]
	tr, err := buffer.Write(cv, dst, st)
	if err != nil {
		return buffer.Transfer{}, err
	}

	c.lgr.WithFields(logrus.Fields{
		"column": md.FullName(),
		"ctype":  dst.CType,
		"offset": st.Offset,
		"done":   st.Done,
	}).Debug(tr.Status)
	return tr, nil
}
