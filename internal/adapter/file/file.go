// Package file is the flat-file catalog adapter: JSON in, JSON out.
// It is the only production implementation of the catalog Source and Sink
// ports.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	domaincatalog "github.com/alanyang/agent-catalog/internal/domain/catalog"
	portcatalog "github.com/alanyang/agent-catalog/internal/port/catalog"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load parses the catalog file. A missing file maps to catalog.ErrNotFound;
// malformed JSON (including wrong attribute types) surfaces as a parse error.
// Schema validation is the registry's job, not the adapter's.
func (s *Store) Load(_ context.Context) (domaincatalog.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domaincatalog.Document{}, fmt.Errorf("%w: %s", portcatalog.ErrNotFound, s.path)
		}
		return domaincatalog.Document{}, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc domaincatalog.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return domaincatalog.Document{}, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return doc, nil
}

// Write persists the document as indented JSON so the catalog stays
// human-readable and diffs cleanly.
func (s *Store) Write(_ context.Context, doc domaincatalog.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
