// Package db holds the Generation Record stores.
package db

import (
	"context"
	"path/filepath"

	"github.com/eduardo/initializr/internal/config"
	"github.com/eduardo/initializr/internal/domain"
)

// Open returns the ledger selected by cfg. Relative SQLite paths resolve
// against the storage base directory.
func Open(ctx context.Context, cfg *config.Config) (domain.LedgerPort, error) {
	switch cfg.Ledger.Driver {
	case config.DriverFirestore:
		l, err := OpenFirestore(ctx, FirestoreOptions{
			ProjectID:       cfg.Ledger.Firestore.ProjectID,
			CredentialsFile: cfg.Ledger.Firestore.CredentialsFile,
			Collection:      cfg.Ledger.Firestore.Collection,
		})
		if err != nil {
			return nil, err
		}
		return l, nil
	case config.DriverSQLite, "":
		p := cfg.Ledger.SQLitePath
		if p != ":memory:" && !filepath.IsAbs(p) {
			p = filepath.Join(cfg.Storage.BaseDir, p)
		}
		l, err := OpenSQLite(p)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, domain.NewConfigurationError("open ledger", "unknown ledger driver "+cfg.Ledger.Driver)
	}
}
