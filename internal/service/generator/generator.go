package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainagent "github.com/alanyang/agent-catalog/internal/domain/agent"
	domaincatalog "github.com/alanyang/agent-catalog/internal/domain/catalog"
	"github.com/alanyang/agent-catalog/internal/domain/taxonomy"
	portcatalog "github.com/alanyang/agent-catalog/internal/port/catalog"
)

// VariantsPerSubcategory is how many numbered agent variants each
// (category, subcategory) pair expands into.
const VariantsPerSubcategory = 5

// CategoryCount pairs a category with the number of records generated for it.
type CategoryCount struct {
	Category string
	Count    int
}

// Summary reports what a generation run produced, in taxonomy order.
type Summary struct {
	Total      int
	Categories []CategoryCount
}

// Service expands the static taxonomy into a catalog document and persists
// it through the sink. Generation is pure and deterministic; the sink write
// is the only side effect.
type Service struct {
	sink portcatalog.Sink
}

func NewService(sink portcatalog.Sink) *Service {
	return &Service{sink: sink}
}

// AgentID derives the unique record id for a variant:
// lowercase category and subcategory, spaces to underscores.
func AgentID(category, subcategory string, variant int) string {
	return fmt.Sprintf("%s_%s_%d",
		strings.ToLower(category),
		strings.ReplaceAll(strings.ToLower(subcategory), " ", "_"),
		variant)
}

// Generate walks the taxonomy in order and expands every subcategory into
// VariantsPerSubcategory records. It asserts id uniqueness across the whole
// catalog: the taxonomy is trusted data, but a collision after lowercasing
// would silently shadow records downstream, so it fails loudly here.
func Generate() (domaincatalog.Document, error) {
	var agents []domainagent.Agent
	seen := make(map[string]string)

	for _, cat := range taxonomy.Categories {
		for _, sub := range cat.Subcategories {
			model := ModelFor(sub)
			capabilities := CapabilitiesFor(sub)

			for variant := 1; variant <= VariantsPerSubcategory; variant++ {
				id := AgentID(cat.Name, sub, variant)
				if prior, ok := seen[id]; ok {
					return domaincatalog.Document{}, fmt.Errorf(
						"generate: id %q from %q collides with %q", id, sub, prior)
				}
				seen[id] = sub

				agents = append(agents, domainagent.Agent{
					ID:   id,
					Name: fmt.Sprintf("%s Agent %d", sub, variant),
					Role: cat.Name,
					Description: fmt.Sprintf("Specialized %s agent for %s - variant %d",
						strings.ToLower(cat.Name), strings.ToLower(sub), variant),
					Capabilities: capabilities,
					Model:        model,
				})
			}
		}
	}

	return domaincatalog.Document{
		Version:     domaincatalog.Version,
		TotalAgents: len(agents),
		Categories:  taxonomy.Names(),
		Agents:      agents,
	}, nil
}

// Run generates the catalog and writes it through the sink.
// The returned summary carries per-category counts for console reporting.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	doc, err := Generate()
	if err != nil {
		return Summary{}, err
	}

	if err := s.sink.Write(ctx, doc); err != nil {
		return Summary{}, fmt.Errorf("write catalog: %w", err)
	}

	slog.InfoContext(ctx, "catalog generated",
		"agents", doc.TotalAgents, "categories", len(doc.Categories))

	return summarize(doc), nil
}

func summarize(doc domaincatalog.Document) Summary {
	counts := make(map[string]int, len(doc.Categories))
	for _, a := range doc.Agents {
		counts[a.Role]++
	}
	s := Summary{Total: doc.TotalAgents}
	for _, name := range doc.Categories {
		s.Categories = append(s.Categories, CategoryCount{Category: name, Count: counts[name]})
	}
	return s
}
