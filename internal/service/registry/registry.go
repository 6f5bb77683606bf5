package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainagent "github.com/alanyang/agent-catalog/internal/domain/agent"
	portcatalog "github.com/alanyang/agent-catalog/internal/port/catalog"
)

// Registry indexes a validated catalog by agent id and serves lookups plus
// the stub dispatch. It never creates, mutates, or deletes records.
//
// Load is the only mutating operation and is single-writer by contract:
// the replacement index is built off to the side and swapped in whole, so a
// reader racing a reload observes either the old or the new catalog, never
// a partially built one.
type Registry struct {
	index map[string]domainagent.Agent
	order []string // first-seen id order from the loaded document
}

// New returns an unloaded registry. Get and List on an unloaded registry
// return empty results rather than failing.
func New() *Registry {
	return &Registry{}
}

// Load reads a catalog document from src, validates it, and replaces the
// index. On any failure — missing source, parse error, schema violation —
// the registry keeps its previous state unchanged.
//
// Duplicate ids within a document are not rejected: the later record
// replaces the earlier one in the index and keeps its original position.
func (r *Registry) Load(ctx context.Context, src portcatalog.Source) error {
	doc, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	index := make(map[string]domainagent.Agent, len(doc.Agents))
	order := make([]string, 0, len(doc.Agents))
	for _, a := range doc.Agents {
		if _, ok := index[a.ID]; !ok {
			order = append(order, a.ID)
		}
		index[a.ID] = a
	}

	r.index = index
	r.order = order

	slog.InfoContext(ctx, "catalog loaded", "agents", len(index))
	return nil
}

// Get returns the record for id. A miss is a routine outcome, reported via
// the bool, never an error.
func (r *Registry) Get(id string) (domainagent.Agent, bool) {
	a, ok := r.index[id]
	return a, ok
}

// List returns all records in load order. The slice is freshly allocated;
// the records are read-only views and must not be mutated by callers.
func (r *Registry) List() []domainagent.Agent {
	out := make([]domainagent.Agent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.index[id])
	}
	return out
}

// Len reports how many agents are indexed.
func (r *Registry) Len() int {
	return len(r.index)
}

// Execute routes a prompt to the identified agent and returns the formatted
// dispatch result. No inference happens here — this is the seam where a real
// backend call keyed by the agent's model would be substituted. An unknown
// id yields ok=false, mirroring Get.
func (r *Registry) Execute(ctx context.Context, id, prompt string) (string, bool) {
	a, ok := r.index[id]
	if !ok {
		return "", false
	}

	slog.InfoContext(ctx, "dispatching prompt",
		"request_id", uuid.NewString(), "agent_id", a.ID, "model", a.Model)

	return fmt.Sprintf("[%s] Processed request: %s using model %s", a.Name, prompt, a.Model), true
}
