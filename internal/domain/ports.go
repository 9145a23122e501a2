package domain

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// FileSystemPort defines the interface for the store generated trees live on
type FileSystemPort interface {
	MkdirAll(path string) error
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
	Open(path string) (io.ReadCloser, error)
	Stat(path string) (os.FileInfo, error)
	RemoveAll(path string) error
	// Rename moves a file or a whole directory; to must not exist.
	Rename(from, to string) error
	// Walk visits path and everything below it in lexical order.
	Walk(root string, fn filepath.WalkFunc) error
}

// TemplatePort defines the interface for rendering templates
type TemplatePort interface {
	Render(name, tmpl string, data interface{}) ([]byte, error)
}

// ParserPort defines the interface for reading a generation request
type ParserPort interface {
	Parse(filename string) (*Config, error)
}

// LedgerPort is the keyed record store holding one Record per generated project.
type LedgerPort interface {
	// Insert stores a new record. It fails with ErrConflict when the
	// application name already has one.
	Insert(ctx context.Context, record *Record) (*Record, error)
	// FindByApplicationName fails with ErrNotFound when no record exists.
	FindByApplicationName(ctx context.Context, name string) (*Record, error)
	// IncrementDownloadCount atomically adds one to the download counter and
	// returns the number of records updated (0 when the name is unknown).
	IncrementDownloadCount(ctx context.Context, name string) (int64, error)
	List(ctx context.Context) ([]*Record, error)
	Close() error
}

// InitializrServicePort defines the interface for the generation and download use cases
type InitializrServicePort interface {
	Generate(ctx context.Context, config Config) (*Record, error)
	Download(ctx context.Context, applicationName string, sink io.Writer) error
	Find(ctx context.Context, applicationName string) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
}
