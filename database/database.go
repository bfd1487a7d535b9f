package database

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"flatdb/executor"
	"flatdb/parser"
	"flatdb/storage"
)

// Database ties the statement executor to the on-disk row store. Each
// call loads the statement's table, runs the statement, and saves the
// table back when it changed. There is no locking beyond a process-
// local mutex; the design assumes one caller per table at a time.
type Database struct {
	mu     sync.Mutex
	store  *storage.Store
	exec   *executor.Executor
	parser *parser.Parser
	log    *logrus.Entry
}

// Open creates a database over a data directory.
func Open(dataDir string) (*Database, error) {
	store, err := storage.NewStore(dataDir)
	if err != nil {
		return nil, errors.Wrap(err, "opening store")
	}

	return &Database{
		store:  store,
		exec:   executor.New(),
		parser: parser.New(),
		log:    logrus.WithField("component", "database"),
	}, nil
}

// Execute parses and runs one statement against its table, persisting
// the table when the statement mutated it. A statement that fails to
// parse never touches storage.
func (db *Database) Execute(sql string) (*executor.Result, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	start := time.Now()

	stmt, err := db.parser.Parse(sql)
	if err != nil {
		return nil, err
	}

	rows, err := db.store.Load(stmt.Table)
	if err != nil {
		return nil, errors.Wrapf(err, "loading table %q", stmt.Table)
	}

	res, err := db.exec.Run(stmt, rows)
	if err != nil {
		return nil, err
	}

	if res.Mutated {
		if err := db.store.Save(stmt.Table, res.Table); err != nil {
			return nil, errors.Wrapf(err, "saving table %q", stmt.Table)
		}
	}

	db.log.WithFields(logrus.Fields{
		"type":     stmt.Type,
		"table":    stmt.Table,
		"rows":     len(res.Table),
		"mutated":  res.Mutated,
		"duration": time.Since(start),
	}).Debug("statement executed")

	return res, nil
}
