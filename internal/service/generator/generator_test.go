package generator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainagent "github.com/alanyang/agent-catalog/internal/domain/agent"
	domaincatalog "github.com/alanyang/agent-catalog/internal/domain/catalog"
	"github.com/alanyang/agent-catalog/internal/domain/taxonomy"
	"github.com/alanyang/agent-catalog/internal/service/generator"
)

func TestGenerateCountInvariant(t *testing.T) {
	doc, err := generator.Generate()
	require.NoError(t, err)

	want := 0
	for _, c := range taxonomy.Categories {
		want += len(c.Subcategories) * generator.VariantsPerSubcategory
	}
	assert.Equal(t, want, len(doc.Agents))
	assert.Equal(t, 1600, doc.TotalAgents)
	assert.Equal(t, doc.TotalAgents, len(doc.Agents))
	assert.Equal(t, taxonomy.Names(), doc.Categories)
	assert.Equal(t, domaincatalog.Version, doc.Version)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := generator.Generate()
	require.NoError(t, err)
	b, err := generator.Generate()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateIDsUnique(t *testing.T) {
	doc, err := generator.Generate()
	require.NoError(t, err)

	seen := make(map[string]bool, len(doc.Agents))
	for _, a := range doc.Agents {
		assert.Falsef(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

func TestGeneratedDocumentValidates(t *testing.T) {
	doc, err := generator.Generate()
	require.NoError(t, err)
	require.NoError(t, doc.Validate())
}

func TestFirstRecordShape(t *testing.T) {
	doc, err := generator.Generate()
	require.NoError(t, err)

	first := doc.Agents[0]
	assert.Equal(t, "sales_lead_generation_1", first.ID)
	assert.Equal(t, "Lead Generation Agent 1", first.Name)
	assert.Equal(t, "Sales", first.Role)
	assert.Equal(t, "Specialized sales agent for lead generation - variant 1", first.Description)
	assert.Equal(t, domainagent.ModelStandard, first.Model)
	assert.Equal(t, []string{"automation", "processing", "coordination"}, first.Capabilities)
}

func TestAgentID(t *testing.T) {
	assert.Equal(t, "sales_lead_generation_3", generator.AgentID("Sales", "Lead Generation", 3))
	assert.Equal(t, "customer success_onboarding_1", generator.AgentID("Customer Success", "Onboarding", 1))
	assert.Equal(t, "support_tier_1_support_5", generator.AgentID("Support", "Tier 1 Support", 5))
}

func TestModelFor(t *testing.T) {
	tests := []struct {
		subcategory string
		want        domainagent.Model
	}{
		{"Competitor Analysis", domainagent.ModelAdvanced},
		{"Pricing Strategy", domainagent.ModelAdvanced},
		{"Tax Advisory", domainagent.ModelAdvanced},
		{"Tier 1 Support", domainagent.ModelBasic},
		{"Demo Scheduling", domainagent.ModelBasic},
		{"Diversity Tracking", domainagent.ModelBasic},
		{"Account Management", domainagent.ModelStandard},
		{"Territory Planning", domainagent.ModelStandard},
		// "Routing" matches nothing — default tier.
		{"Ticket Routing", domainagent.ModelStandard},
		{"SLA Monitoring", domainagent.ModelStandard},
		{"Invoicing", domainagent.ModelStandard},
		// Analysis outranks Management when both could apply.
		{"Analysis Management", domainagent.ModelAdvanced},
	}

	for _, tt := range tests {
		t.Run(tt.subcategory, func(t *testing.T) {
			assert.Equal(t, tt.want, generator.ModelFor(tt.subcategory))
		})
	}
}

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		subcategory string
		want        []string
	}{
		{"Competitor Analysis", []string{"data_analysis", "reporting", "insights"}},
		{"Account Management", []string{"coordination", "tracking", "optimization"}},
		{"Tier 1 Support", []string{"assistance", "troubleshooting", "guidance"}},
		{"Territory Planning", []string{"forecasting", "scheduling", "resource_allocation"}},
		{"SLA Monitoring", []string{"tracking", "alerting", "diagnostics"}},
		{"Ticket Routing", []string{"automation", "processing", "coordination"}},
		{"Invoicing", []string{"automation", "processing", "coordination"}},
	}

	for _, tt := range tests {
		t.Run(tt.subcategory, func(t *testing.T) {
			assert.Equal(t, tt.want, generator.CapabilitiesFor(tt.subcategory))
		})
	}
}

// ── Run (sink wiring) ─────────────────────────────────────────────────────

type captureSink struct {
	doc domaincatalog.Document
	err error
}

func (c *captureSink) Write(_ context.Context, doc domaincatalog.Document) error {
	if c.err != nil {
		return c.err
	}
	c.doc = doc
	return nil
}

func TestRunWritesAndSummarizes(t *testing.T) {
	sink := &captureSink{}
	svc := generator.NewService(sink)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1600, summary.Total)
	require.Len(t, summary.Categories, 20)
	assert.Equal(t, "Sales", summary.Categories[0].Category)
	for _, c := range summary.Categories {
		assert.Equalf(t, 80, c.Count, "category %s", c.Category)
	}

	assert.Equal(t, 1600, sink.doc.TotalAgents)
}

func TestRunSinkFailureIsFatal(t *testing.T) {
	sink := &captureSink{err: errors.New("disk full")}
	svc := generator.NewService(sink)

	_, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write catalog")
}
