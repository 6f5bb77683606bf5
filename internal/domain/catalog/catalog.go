package catalog

import (
	"errors"
	"fmt"

	domainagent "github.com/alanyang/agent-catalog/internal/domain/agent"
)

// Version is the interchange format version written by the generator.
const Version = "1.0"

// ErrSchema marks a document that failed validation. One malformed record
// invalidates the whole document; records are never skipped.
var ErrSchema = errors.New("catalog: schema violation")

// Document is the interchange artifact: the full ordered collection of
// agent records plus summary metadata. It is the sole file contract
// between the generator and the registry.
type Document struct {
	Version     string              `json:"version"`
	TotalAgents int                 `json:"total_agents"`
	Categories  []string            `json:"categories"`
	Agents      []domainagent.Agent `json:"agents"`
}

// Validate checks the document-level invariants and every record's schema.
// All failures wrap ErrSchema so callers can classify with errors.Is.
func (d Document) Validate() error {
	if d.Version == "" {
		return fmt.Errorf("%w: missing version", ErrSchema)
	}
	if d.TotalAgents != len(d.Agents) {
		return fmt.Errorf("%w: total_agents is %d but document carries %d records",
			ErrSchema, d.TotalAgents, len(d.Agents))
	}
	for i, a := range d.Agents {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrSchema, i, err)
		}
	}
	return nil
}
