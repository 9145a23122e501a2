package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eduardo/initializr/internal/domain"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS generated_projects (
	id TEXT PRIMARY KEY,
	application_name TEXT NOT NULL UNIQUE,
	framework_type TEXT NOT NULL,
	database_type TEXT NOT NULL,
	jwt_auth_enabled INTEGER NOT NULL DEFAULT 0,
	base_entity_enabled INTEGER NOT NULL DEFAULT 0,
	base_response_enabled INTEGER NOT NULL DEFAULT 0,
	package_name TEXT NOT NULL,
	project_path TEXT NOT NULL,
	file_size_bytes INTEGER NOT NULL DEFAULT 0,
	download_count INTEGER NOT NULL DEFAULT 0,
	group_id TEXT,
	artifact_id TEXT,
	version TEXT,
	java_version TEXT,
	files TEXT NOT NULL DEFAULT '[]',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_generated_projects_created ON generated_projects(created_at);
`

// createdAtLayout is fixed width so created_at sorts chronologically as text.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

const recordColumns = `id, application_name, framework_type, database_type,
	jwt_auth_enabled, base_entity_enabled, base_response_enabled,
	package_name, project_path, file_size_bytes, download_count,
	group_id, artifact_id, version, java_version, files, created_at`

// SQLiteLedger implements domain.LedgerPort on a SQLite database.
type SQLiteLedger struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the ledger at path.
// ":memory:" gives a private in-memory ledger.
func OpenSQLite(path string) (*SQLiteLedger, error) {
	dsn := path
	memory := path == ":memory:"
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create ledger directory: %w", err)
		}
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if memory {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteLedger{db: db}, nil
}

func (l *SQLiteLedger) Insert(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	files, err := json.Marshal(record.Files)
	if err != nil {
		return nil, fmt.Errorf("encode files: %w", err)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err = l.db.ExecContext(ctx, `INSERT INTO generated_projects (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.ApplicationName, string(record.Framework), string(record.Database),
		record.JwtAuthEnabled, record.BaseEntityEnabled, record.BaseResponseEnabled,
		record.PackageName, record.ProjectPath, record.FileSizeBytes, record.DownloadCount,
		record.GroupID, record.ArtifactID, record.Version, record.JavaVersion,
		string(files), record.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("insert", fmt.Sprintf("project %q already exists", record.ApplicationName))
		}
		return nil, domain.NewStorageError("insert", "failed to insert record", err)
	}

	return l.FindByApplicationName(ctx, record.ApplicationName)
}

func (l *SQLiteLedger) FindByApplicationName(ctx context.Context, name string) (*domain.Record, error) {
	row := l.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM generated_projects WHERE application_name = ?`, name)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("find", fmt.Sprintf("project %q is not found", name))
	}
	if err != nil {
		return nil, domain.NewStorageError("find", "failed to read record", err)
	}
	return rec, nil
}

// IncrementDownloadCount is a single UPDATE, so concurrent increments are
// serialized by SQLite and never lost.
func (l *SQLiteLedger) IncrementDownloadCount(ctx context.Context, name string) (int64, error) {
	res, err := l.db.ExecContext(ctx,
		`UPDATE generated_projects SET download_count = download_count + 1 WHERE application_name = ?`, name)
	if err != nil {
		return 0, domain.NewStorageError("increment", "failed to increment download count", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, domain.NewStorageError("increment", "failed to read affected rows", err)
	}
	return n, nil
}

func (l *SQLiteLedger) List(ctx context.Context) ([]*domain.Record, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM generated_projects ORDER BY created_at, application_name`)
	if err != nil {
		return nil, domain.NewStorageError("list", "failed to query records", err)
	}
	defer rows.Close()

	var out []*domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, domain.NewStorageError("list", "failed to read record", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStorageError("list", "failed to iterate records", err)
	}
	return out, nil
}

func (l *SQLiteLedger) Close() error {
	return l.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.Record, error) {
	var (
		rec                                   domain.Record
		framework, database, files, createdAt string
		groupID, artifactID, version, javaVer sql.NullString
	)
	err := row.Scan(
		&rec.ID, &rec.ApplicationName, &framework, &database,
		&rec.JwtAuthEnabled, &rec.BaseEntityEnabled, &rec.BaseResponseEnabled,
		&rec.PackageName, &rec.ProjectPath, &rec.FileSizeBytes, &rec.DownloadCount,
		&groupID, &artifactID, &version, &javaVer, &files, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Framework = domain.FrameworkKind(framework)
	rec.Database = domain.DatabaseKind(database)
	rec.GroupID = groupID.String
	rec.ArtifactID = artifactID.String
	rec.Version = version.String
	rec.JavaVersion = javaVer.String

	if err := json.Unmarshal([]byte(files), &rec.Files); err != nil {
		return nil, fmt.Errorf("decode files: %w", err)
	}
	rec.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return &rec, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
