package main

import (
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Storage is the optional results sink: when a database URL is
// configured, every ExecutionResult is also recorded there. Absent a
// URL the harness stays stdout-only.
type Storage struct {
	URL string
}

func (s *Storage) Connect() (*sql.DB, error) {
	return sql.Open("libsql", s.URL)
}

func (s *Storage) InitResultsDb(db *sql.DB, meta map[string]any) error {
	_, err := db.Exec("CREATE TABLE IF NOT EXISTS parameters (name TEXT PRIMARY KEY, value)")
	if err != nil {
		return err
	}
	parameters := make([]any, 0)
	parameters = append(parameters, "time", time.Now().Format("2006-01-02 15:04:05"))
	for key, value := range meta {
		parameters = append(parameters, key, fmt.Sprintf("%v", value))
	}
	placeholders := strings.Join(slices.Repeat([]string{"(?, ?)"}, len(parameters)/2), ", ")
	_, err = db.Exec(
		fmt.Sprintf("INSERT INTO parameters VALUES %v ON CONFLICT DO NOTHING", placeholders),
		parameters...,
	)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS results (
		input TEXT PRIMARY KEY,
		status TEXT,
		seconds REAL
	)`)
	if err != nil {
		return err
	}
	Logger.Infof("initialized results database with meta %v", meta)
	return nil
}

func (s *Storage) RecordResult(db *sql.DB, result ExecutionResult) error {
	_, err := db.Exec(
		"INSERT INTO results VALUES (?, ?, ?) ON CONFLICT DO UPDATE SET status = excluded.status, seconds = excluded.seconds",
		result.Input,
		result.Status,
		result.Seconds,
	)
	return err
}
