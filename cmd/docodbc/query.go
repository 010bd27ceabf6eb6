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

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/attic-labs/kingpin"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dolthub/docodbc/libraries/odbccore/api"
	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
	"github.com/dolthub/docodbc/libraries/odbccore/coerce"
	"github.com/dolthub/docodbc/libraries/odbccore/query"
	"github.com/dolthub/docodbc/libraries/utils/config"
)

var ctypes = map[string]cdata.CDataType{
	"char":   cdata.Char,
	"wchar":  cdata.WChar,
	"binary": cdata.Binary,
}

type queryArgs struct {
	configPath *string
	dsn        *string
	uri        *string
	db         *string
	timeout    *time.Duration
	ctype      *string
	pieceSize  *int
	maxRows    *int
	sql        *string
}

func queryCommand(ctx context.Context, app *kingpin.Application) (*kingpin.CmdClause, KingpinHandler) {
	cmd := app.Command("query", "Run a SQL statement and print the result set.")
	args := queryArgs{
		configPath: cmd.Flag("config", "path of a yaml driver config").String(),
		dsn:        cmd.Flag("dsn", "ODBC connection string, overriding the config file").String(),
		uri:        cmd.Flag("uri", "server uri").String(),
		db:         cmd.Flag("db", "database to run the statement in").String(),
		timeout:    cmd.Flag("timeout", "server side query time limit, 0 for none").Duration(),
		ctype:      cmd.Flag("ctype", "C type columns are read as").Default("char").Enum("char", "wchar", "binary"),
		pieceSize:  cmd.Flag("piece-size", "buffer size, in characters, of each read").Default("256").Int(),
		maxRows:    cmd.Flag("max-rows", "stop after this many rows, 0 for all").Default("0").Int(),
		sql:        cmd.Arg("sql", "the statement to run").Required().String(),
	}

	return cmd, func(string) int {
		if err := runQuery(ctx, args); err != nil {
			printErr(err)
			return 1
		}
		return 0
	}
}

func loadConfig(args queryArgs) (*config.DriverYAMLConfig, error) {
	cfg, err := config.NewYamlConfig(nil)
	if *args.configPath != "" {
		cfg, err = config.YamlConfigFromFile(*args.configPath)
	}
	if err != nil {
		return nil, err
	}

	if *args.dsn != "" {
		attrs, err := config.ParseConnectionString(*args.dsn)
		if err != nil {
			return nil, err
		}
		if err := cfg.ApplyAttributes(attrs); err != nil {
			return nil, err
		}
	}

	if *args.uri != "" {
		cfg.URIStr = args.uri
	}
	if *args.db != "" {
		cfg.DatabaseStr = args.db
	}
	if *args.timeout > 0 {
		secs := uint32(args.timeout.Seconds())
		cfg.QueryTimeoutSec = &secs
	}
	return cfg, cfg.Validate()
}

func runQuery(ctx context.Context, args queryArgs) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if cfg.Database() == "" {
		return errors.New("no database given, set database in the config, the dsn or --db")
	}

	lgr, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	entry := logrus.NewEntry(lgr)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI()))
	if err != nil {
		return errors.Wrap(err, "failed to connect")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			entry.WithError(err).Warn("disconnect failed")
		}
	}()

	mode, _ := cfg.TypeMode()
	q, err := query.Prepare(ctx, client.Database(cfg.Database()), *args.sql, cfg.QueryTimeout(), mode, entry)
	if err != nil {
		return err
	}

	stmt := api.NewStatement(entry.WithField("statement", *args.sql))
	stmt.Attach(q)
	defer stmt.Close(ctx)
	if ret := stmt.Execute(ctx); ret == cdata.Error {
		return diagError(stmt)
	}

	start := time.Now()
	stats, err := printRows(ctx, stmt, os.Stdout, ctypes[*args.ctype], *args.pieceSize, *args.maxRows)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s rows, %s read in %s\n", humanize.Comma(stats.rows), humanize.Bytes(stats.bytes), time.Since(start).Round(time.Millisecond))
	return nil
}

// diagError summarizes the statement's diagnostics as an error.
func diagError(stmt *api.Statement) error {
	records := stmt.Diagnostics()
	if len(records) == 0 {
		return errors.New("statement failed without diagnostics")
	}
	msgs := make([]string, len(records))
	for i, r := range records {
		msgs[i] = r.SQLState + ": " + r.Message
	}
	return errors.New(strings.Join(msgs, "\n"))
}

type rowStats struct {
	rows  int64
	bytes uint64
}

// printRows fetches every row of |stmt| and writes it to |w| tab separated. Columns are read as
// |ctype| through a buffer of |pieceSize| characters, so long values arrive over several calls.
func printRows(ctx context.Context, stmt *api.Statement, w io.Writer, ctype cdata.CDataType, pieceSize, maxRows int) (rowStats, error) {
	var stats rowStats
	if pieceSize < 1 {
		return stats, errors.Errorf("piece size must be positive, got %d", pieceSize)
	}

	n, _ := stmt.NumResultCols()
	header := color.New(color.Bold)
	names := make([]string, n)
	for i := range names {
		md, ret := stmt.DescribeCol(i + 1)
		if ret == cdata.Error {
			return stats, diagError(stmt)
		}
		names[i] = md.FullName()
	}
	header.Fprintln(w, strings.Join(names, "\t"))

	unit := ctype.UnitSize()
	buf := make([]byte, pieceSize*unit)
	for maxRows <= 0 || stats.rows < int64(maxRows) {
		switch ret := stmt.Fetch(ctx); ret {
		case cdata.NoData:
			return stats, nil
		case cdata.Error:
			return stats, diagError(stmt)
		}

		fields := make([]string, n)
		for col := 1; col <= n; col++ {
			val, null, err := readColumn(stmt, col, ctype, buf)
			if err != nil {
				return stats, err
			}
			stats.bytes += uint64(len(val))
			fields[col-1] = formatValue(val, null, ctype)
		}
		fmt.Fprintln(w, strings.Join(fields, "\t"))
		stats.rows++
	}
	return stats, nil
}

// readColumn reads a whole column value piece by piece.
func readColumn(stmt *api.Statement, col int, ctype cdata.CDataType, buf []byte) ([]byte, bool, error) {
	unit := ctype.UnitSize()
	capacity := len(buf) / unit
	var val []byte
	for {
		var ind int64
		ret := stmt.GetData(col, ctype, buf, capacity, &ind)
		switch ret {
		case cdata.NoData:
			return val, false, nil
		case cdata.Error:
			return nil, false, diagError(stmt)
		}
		if ind == cdata.NullData {
			return nil, true, nil
		}

		n := int(ind)
		if n > capacity {
			n = capacity
		}
		val = append(val, buf[:n*unit]...)
	}
}

func formatValue(val []byte, null bool, ctype cdata.CDataType) string {
	if null {
		return color.New(color.Faint).Sprint("NULL")
	}
	switch ctype {
	case cdata.WChar:
		s, err := coerce.DecodeUTF16(val)
		if err != nil {
			return hex.EncodeToString(val)
		}
		return s
	case cdata.Binary:
		return hex.EncodeToString(val)
	}
	return string(val)
}
