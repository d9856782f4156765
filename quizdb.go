package studybuddy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrQuizFileNotFound is returned when the catalog has no entry for a file name
var ErrQuizFileNotFound = errors.New("quiz file not found")

// DB is the catalog of generated quiz files
type DB struct {
	db *sql.DB
}

// OpenDB opens a new database connection
func OpenDB(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db: db}, nil
}

// CloseDB closes the database connection
func (db *DB) CloseDB() error {
	return db.db.Close()
}

// CreateTables creates the necessary tables if they don't exist
func (db *DB) CreateTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS quiz_files (
			file_name TEXT PRIMARY KEY,
			topic TEXT NOT NULL,
			question_count INTEGER NOT NULL,
			rejected_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quiz_files_updated_at ON quiz_files(updated_at)`,
	}

	for _, query := range queries {
		if _, err := db.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute %s: %w", query, err)
		}
	}
	return nil
}

// RecordQuizFile inserts or refreshes the entry for a generated file.
// Regenerating a topic keeps the first created_at.
func (db *DB) RecordQuizFile(ctx context.Context, rec *QuizFileRecord) error {
	_, err := db.db.ExecContext(ctx,
		`INSERT INTO quiz_files (file_name, topic, question_count, rejected_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_name) DO UPDATE SET
			topic = excluded.topic,
			question_count = excluded.question_count,
			rejected_count = excluded.rejected_count,
			updated_at = excluded.updated_at`,
		rec.FileName, rec.Topic, rec.QuestionCount, rec.RejectedCount, rec.CreatedAt.UTC(), rec.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record quiz file: %w", err)
	}
	return nil
}

// GetQuizFile retrieves the entry for a file name
func (db *DB) GetQuizFile(ctx context.Context, fileName string) (*QuizFileRecord, error) {
	var rec QuizFileRecord
	err := db.db.QueryRowContext(ctx,
		"SELECT file_name, topic, question_count, rejected_count, created_at, updated_at FROM quiz_files WHERE file_name = ?",
		fileName,
	).Scan(&rec.FileName, &rec.Topic, &rec.QuestionCount, &rec.RejectedCount, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", ErrQuizFileNotFound, fileName)
		}
		return nil, fmt.Errorf("failed to get quiz file: %w", err)
	}
	return &rec, nil
}

// ListQuizFiles retrieves entries, most recently generated first, optionally limited by count
func (db *DB) ListQuizFiles(ctx context.Context, limit int) ([]QuizFileRecord, error) {
	query := "SELECT file_name, topic, question_count, rejected_count, created_at, updated_at FROM quiz_files ORDER BY updated_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz files: %w", err)
	}
	return scanQuizFiles(rows)
}

// StaleQuizFiles retrieves entries last generated before the given time
func (db *DB) StaleQuizFiles(ctx context.Context, before time.Time) ([]QuizFileRecord, error) {
	rows, err := db.db.QueryContext(ctx,
		"SELECT file_name, topic, question_count, rejected_count, created_at, updated_at FROM quiz_files WHERE updated_at < ? ORDER BY updated_at",
		before.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale quiz files: %w", err)
	}
	return scanQuizFiles(rows)
}

// DeleteQuizFile removes the entry for a file name
func (db *DB) DeleteQuizFile(ctx context.Context, fileName string) error {
	_, err := db.db.ExecContext(ctx, "DELETE FROM quiz_files WHERE file_name = ?", fileName)
	if err != nil {
		return fmt.Errorf("failed to delete quiz file: %w", err)
	}
	return nil
}

func scanQuizFiles(rows *sql.Rows) ([]QuizFileRecord, error) {
	defer rows.Close()

	var records []QuizFileRecord
	for rows.Next() {
		var rec QuizFileRecord
		err := rows.Scan(&rec.FileName, &rec.Topic, &rec.QuestionCount, &rec.RejectedCount, &rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz file: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quiz files: %w", err)
	}

	return records, nil
}
