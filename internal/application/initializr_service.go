package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/eduardo/initializr/internal/archive"
	"github.com/eduardo/initializr/internal/domain"
	"github.com/eduardo/initializr/internal/generator"
)

// GenerateFunc writes a project tree and returns its manifest.
type GenerateFunc func(ctx context.Context, config domain.Config, root string, fs domain.FileSystemPort, template domain.TemplatePort) (*domain.Manifest, error)

// InitializrService implements domain.InitializrServicePort
type InitializrService struct {
	fs       domain.FileSystemPort
	template domain.TemplatePort
	ledger   domain.LedgerPort
	streamer *archive.Streamer
	root     string
	logger   *log.Logger

	generateFunc GenerateFunc
	now          func() time.Time

	mu    sync.Mutex
	locks map[string]*nameLock
}

type nameLock struct {
	mu   sync.Mutex
	refs int
}

func NewInitializrService(fs domain.FileSystemPort, template domain.TemplatePort, ledger domain.LedgerPort, root string, logger *log.Logger, generateFunc GenerateFunc) *InitializrService {
	if generateFunc == nil {
		generateFunc = generator.Generate
	}
	return &InitializrService{
		fs:           fs,
		template:     template,
		ledger:       ledger,
		streamer:     archive.NewStreamer(fs),
		root:         root,
		logger:       logger,
		generateFunc: generateFunc,
		now:          func() time.Time { return time.Now().UTC() },
		locks:        make(map[string]*nameLock),
	}
}

// stagingDir holds trees that are written but not yet claimed in the ledger.
// Application names start with a letter, so it never collides with a project.
const stagingDir = ".staging"

// Generate writes the project for config and records it in the ledger.
// Generations of the same application name are serialized; a name that is
// already recorded is rejected with ErrConflict before anything is written.
//
// The tree is written under a private staging directory and only moved to
// its final path after the ledger insert succeeded, so a generation that
// loses the name to another process never touches the winner's files.
func (s *InitializrService) Generate(ctx context.Context, config domain.Config) (*domain.Record, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	cfg := config.WithDefaults()
	name := cfg.ApplicationName

	unlock := s.lock(name)
	defer unlock()

	if _, err := s.ledger.FindByApplicationName(ctx, name); err == nil {
		return nil, domain.NewConflictError("generate", fmt.Sprintf("project %q already exists", name))
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	id := uuid.NewString()
	staging := path.Join(s.root, stagingDir, id)
	defer s.discard(staging)

	s.logger.Info("generating project", "application", name, "database", cfg.Database,
		"jwt", cfg.JwtAuthEnabled, "baseEntity", cfg.BaseEntityEnabled, "baseResponse", cfg.BaseResponseEnabled)

	manifest, err := s.generateFunc(ctx, cfg, staging, s.fs, s.template)
	if err != nil {
		s.logger.Error("generation failed", "application", name, "err", err)
		return nil, err
	}
	for _, f := range manifest.Files {
		s.logger.Debug("wrote file", "path", f.Path, "size", f.Size)
	}

	projectPath := generator.ProjectPath(s.root, name)
	record := domain.NewRecord(cfg, manifest)
	record.ID = id
	record.ProjectPath = projectPath
	record.CreatedAt = s.now()

	stored, err := s.ledger.Insert(ctx, record)
	if err != nil {
		return nil, err
	}

	// the name is ours now; anything at projectPath is unrecorded leftovers
	if err := s.publish(manifest.ProjectPath, projectPath); err != nil {
		s.logger.Error("failed to publish project tree", "application", name, "err", err)
		return nil, err
	}

	s.logger.Info("project generated", "application", name, "files", len(manifest.Files), "bytes", manifest.TotalBytes)
	return stored, nil
}

func (s *InitializrService) publish(staged, projectPath string) error {
	if _, err := s.fs.Stat(projectPath); err == nil {
		s.logger.Warn("removing unrecorded project tree", "path", projectPath)
		if err := s.fs.RemoveAll(projectPath); err != nil {
			return domain.NewStorageError("generate", "failed to remove stale tree "+projectPath, err)
		}
	}
	if err := s.fs.MkdirAll(s.root); err != nil {
		return domain.NewStorageError("generate", "failed to create "+s.root, err)
	}
	if err := s.fs.Rename(staged, projectPath); err != nil {
		return domain.NewStorageError("generate", "failed to move project into "+projectPath, err)
	}
	return nil
}

func (s *InitializrService) discard(staging string) {
	if err := s.fs.RemoveAll(staging); err != nil {
		s.logger.Warn("failed to remove staging tree", "path", staging, "err", err)
	}
}

// Download streams the recorded project as a zip onto sink and then counts
// the download. An unknown name fails with ErrNotFound before anything is
// written. The count is bumped even when the stream failed, but not after
// ctx was cancelled.
func (s *InitializrService) Download(ctx context.Context, applicationName string, sink io.Writer) error {
	record, err := s.ledger.FindByApplicationName(ctx, applicationName)
	if err != nil {
		return err
	}

	stats, streamErr := s.streamer.Stream(ctx, record.ProjectPath, sink)
	if streamErr != nil {
		s.logger.Error("download failed", "application", applicationName, "entries", stats.Entries, "err", streamErr)
	} else {
		s.logger.Info("download complete", "application", applicationName, "entries", stats.Entries, "bytes", stats.Bytes)
	}

	if ctx.Err() != nil {
		return streamErr
	}

	updated, err := s.ledger.IncrementDownloadCount(ctx, applicationName)
	switch {
	case err != nil:
		s.logger.Error("failed to increment download count", "application", applicationName, "err", err)
		if streamErr == nil {
			return err
		}
	case updated == 0:
		s.logger.Warn("download count not incremented", "application", applicationName)
	default:
		s.logger.Info("download count incremented", "application", applicationName)
	}
	return streamErr
}

func (s *InitializrService) Find(ctx context.Context, applicationName string) (*domain.Record, error) {
	return s.ledger.FindByApplicationName(ctx, applicationName)
}

func (s *InitializrService) List(ctx context.Context) ([]*domain.Record, error) {
	return s.ledger.List(ctx)
}

func (s *InitializrService) lock(name string) func() {
	s.mu.Lock()
	l, ok := s.locks[name]
	if !ok {
		l = &nameLock{}
		s.locks[name] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, name)
		}
		s.mu.Unlock()
	}
}
