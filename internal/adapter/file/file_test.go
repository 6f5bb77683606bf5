package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/agent-catalog/internal/adapter/file"
	domainagent "github.com/alanyang/agent-catalog/internal/domain/agent"
	domaincatalog "github.com/alanyang/agent-catalog/internal/domain/catalog"
	portcatalog "github.com/alanyang/agent-catalog/internal/port/catalog"
)

func sampleDoc() domaincatalog.Document {
	return domaincatalog.Document{
		Version:     domaincatalog.Version,
		TotalAgents: 1,
		Categories:  []string{"Sales"},
		Agents: []domainagent.Agent{{
			ID:           "sales_closing_1",
			Name:         "Closing Agent 1",
			Role:         "Sales",
			Description:  "Specialized sales agent for closing - variant 1",
			Capabilities: []string{"automation", "processing", "coordination"},
			Model:        domainagent.ModelStandard,
		}},
	}
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	ctx := context.Background()
	store := file.NewStore(filepath.Join(t.TempDir(), "agents.json"))

	want := sampleDoc()
	require.NoError(t, store.Write(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	store := file.NewStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, portcatalog.ErrNotFound))
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := file.NewStore(path).Load(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, portcatalog.ErrNotFound))
}

func TestLoadWrongAttributeType(t *testing.T) {
	// capabilities must be a list of strings; a bare string is a parse error.
	path := filepath.Join(t.TempDir(), "agents.json")
	raw := `{"version":"1.0","total_agents":1,"categories":["Sales"],
		"agents":[{"id":"x","name":"X","role":"Sales","description":"d",
		"capabilities":"automation","model":"gpt-4"}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := file.NewStore(path).Load(context.Background())
	require.Error(t, err)
}

func TestWriteIsHumanReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	store := file.NewStore(path)
	require.NoError(t, store.Write(context.Background(), sampleDoc()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"version\": \"1.0\"")
	assert.Contains(t, string(data), "\"total_agents\": 1")
}
