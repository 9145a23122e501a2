package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eduardo/initializr/internal/domain"
)

// FirestoreLedger implements domain.LedgerPort on a Firestore collection.
// Each record is the document whose id is the application name.
type FirestoreLedger struct {
	client     *firestore.Client
	collection string
}

// FirestoreOptions configures OpenFirestore.
type FirestoreOptions struct {
	ProjectID       string
	CredentialsFile string
	Collection      string
}

// OpenFirestore initializes the Firestore client through a Firebase app.
// Without a credentials file Application Default Credentials are used, which
// also covers FIRESTORE_EMULATOR_HOST.
func OpenFirestore(ctx context.Context, opts FirestoreOptions) (*FirestoreLedger, error) {
	conf := &firebase.Config{ProjectID: opts.ProjectID}

	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firestore: %w", err)
	}

	return NewFirestoreLedger(client, opts.Collection), nil
}

// NewFirestoreLedger wraps an existing client.
func NewFirestoreLedger(client *firestore.Client, collection string) *FirestoreLedger {
	return &FirestoreLedger{client: client, collection: collection}
}

func (l *FirestoreLedger) doc(name string) *firestore.DocumentRef {
	return l.client.Collection(l.collection).Doc(name)
}

func (l *FirestoreLedger) Insert(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	// Create fails when the document exists, which makes the name unique.
	if _, err := l.doc(record.ApplicationName).Create(ctx, record); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, domain.NewConflictError("insert", fmt.Sprintf("project %q already exists", record.ApplicationName))
		}
		return nil, domain.NewStorageError("insert", "failed to create document", err)
	}

	return l.FindByApplicationName(ctx, record.ApplicationName)
}

func (l *FirestoreLedger) FindByApplicationName(ctx context.Context, name string) (*domain.Record, error) {
	snap, err := l.doc(name).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.NewNotFoundError("find", fmt.Sprintf("project %q is not found", name))
		}
		return nil, domain.NewStorageError("find", "failed to get document", err)
	}

	var rec domain.Record
	if err := snap.DataTo(&rec); err != nil {
		return nil, domain.NewStorageError("find", "failed to decode document", err)
	}
	return &rec, nil
}

// IncrementDownloadCount uses a server side increment transform so concurrent
// downloads are never lost.
func (l *FirestoreLedger) IncrementDownloadCount(ctx context.Context, name string) (int64, error) {
	_, err := l.doc(name).Update(ctx, []firestore.Update{
		{Path: "download_count", Value: firestore.Increment(1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, nil
		}
		return 0, domain.NewStorageError("increment", "failed to increment download count", err)
	}
	return 1, nil
}

func (l *FirestoreLedger) List(ctx context.Context) ([]*domain.Record, error) {
	iter := l.client.Collection(l.collection).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var out []*domain.Record
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domain.NewStorageError("list", "failed to iterate documents", err)
		}
		var rec domain.Record
		if err := snap.DataTo(&rec); err != nil {
			return nil, domain.NewStorageError("list", "failed to decode document "+snap.Ref.ID, err)
		}
		out = append(out, &rec)
	}
	return out, nil
}

func (l *FirestoreLedger) Close() error {
	return l.client.Close()
}
