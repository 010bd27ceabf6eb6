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
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dolthub/docodbc/libraries/odbccore/colmeta"
)

// Database is the part of *mongo.Database a MongoQuery needs.
type Database interface {
	Name() string
	RunCommand(ctx context.Context, runCommand interface{}, opts ...*options.RunCmdOptions) *mongo.SingleResult
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
}

var _ Database = (*mongo.Database)(nil)

// MongoQuery runs a SQL statement through the $sql aggregation stage.
type MongoQuery struct {
	db      Database
	query   string
	timeout time.Duration
	md      []colmeta.ColumnMetadata
	cur     *mongo.Cursor
	row     bson.Raw
	lgr     *logrus.Entry
}

var _ Statement = (*MongoQuery)(nil)

// Prepare fetches the result set schema for |query| without running it. A zero |timeout| means
// the server applies no time limit when the query is executed.
func Prepare(ctx context.Context, db Database, query string, timeout time.Duration, mode colmeta.TypeMode, lgr *logrus.Entry) (*MongoQuery, error) {
	if db == nil {
		return nil, ErrNoDatabase.New()
	}
	if lgr == nil {
		lgr = logrus.NewEntry(logrus.StandardLogger())
	}
	lgr = lgr.WithField("database", db.Name())

	cmd := bson.D{
		{Key: "sqlGetResultSchema", Value: 1},
		{Key: "query", Value: query},
		{Key: "schemaVersion", Value: 1},
	}
	res := db.RunCommand(ctx, cmd)
	if err := res.Err(); err != nil {
		return nil, ErrQueryExecutionFailed.Wrap(err)
	}

	var resp colmeta.SqlGetSchemaResponse
	if err := res.Decode(&resp); err != nil {
		return nil, ErrQueryDeserialization.Wrap(err)
	}

	md, err := resp.ProcessResultMetadata(db.Name(), mode)
	if err != nil {
		return nil, err
	}
	lgr.WithField("columns", len(md)).Debug("prepared statement")

	return &MongoQuery{db: db, query: query, timeout: timeout, md: md, lgr: lgr}, nil
}

func (q *MongoQuery) Execute(ctx context.Context) (bool, error) {
	pipeline := bson.A{bson.D{{Key: "$sql", Value: bson.D{{Key: "statement", Value: q.query}}}}}

	opts := options.Aggregate()
	if q.timeout > 0 {
		opts.SetMaxTime(q.timeout)
	}

	start := time.Now()
	cur, err := q.db.Aggregate(ctx, pipeline, opts)
	if err != nil {
		return false, ErrQueryExecutionFailed.Wrap(err)
	}
	q.lgr.WithField("elapsed", time.Since(start)).Debug("executed statement")

	if q.cur != nil {
		if err := q.cur.Close(ctx); err != nil {
			q.lgr.WithError(err).Warn("failed to close previous cursor")
		}
	}
	q.cur, q.row = cur, nil
	return true, nil
}

func (q *MongoQuery) Next(ctx context.Context) (bool, []error, error) {
	if q.cur == nil {
		return false, nil, ErrStatementNotExecuted.New()
	}
	if q.cur.Next(ctx) {
		q.row = q.cur.Current
		return true, nil, nil
	}
	q.row = nil
	if err := q.cur.Err(); err != nil {
		return false, nil, ErrQueryCursorUpdate.Wrap(err)
	}
	return false, nil, nil
}

func (q *MongoQuery) Current() bson.Raw {
	return q.row
}

func (q *MongoQuery) ResultSetMetadata() []colmeta.ColumnMetadata {
	return q.md
}

func (q *MongoQuery) Close(ctx context.Context) error {
	if q.cur == nil {
		return nil
	}
	err := q.cur.Close(ctx)
	q.cur, q.row = nil, nil
	return err
}
