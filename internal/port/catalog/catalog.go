package catalog

import (
	"context"
	"errors"

	domaincatalog "github.com/alanyang/agent-catalog/internal/domain/catalog"
)

// ErrNotFound is returned by a Source whose backing artifact does not exist.
var ErrNotFound = errors.New("catalog: source not found")

// Source provides a parsed catalog document. The file adapter is the only
// production implementation; tests substitute in-memory fakes.
type Source interface {
	Load(ctx context.Context) (domaincatalog.Document, error)
}

// Sink persists a catalog document. A write failure is fatal: there is no
// retry or partial-catalog recovery.
type Sink interface {
	Write(ctx context.Context, doc domaincatalog.Document) error
}
