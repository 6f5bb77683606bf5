package agent

import "fmt"

// Model identifies the backend model an agent would invoke. The set is
// closed: records carrying any other value fail validation.
type Model string

const (
	ModelBasic       Model = "gpt-3.5-turbo"
	ModelStandard    Model = "gpt-4"
	ModelAdvanced    Model = "gpt-4-turbo"
	ModelSpecialized Model = "claude-3-opus"
)

func (m Model) Valid() bool {
	switch m {
	case ModelBasic, ModelStandard, ModelAdvanced, ModelSpecialized:
		return true
	}
	return false
}

// Agent is a catalog record describing a task-specialized assistant:
// a role-tagged configuration, not an executable entity.
type Agent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
	Model        Model    `json:"model"`
}

// Validate checks the record against the catalog schema: every string
// field present, capabilities non-empty, model from the closed set.
func (a Agent) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("agent: missing id")
	}
	if a.Name == "" {
		return fmt.Errorf("agent %q: missing name", a.ID)
	}
	if a.Role == "" {
		return fmt.Errorf("agent %q: missing role", a.ID)
	}
	if a.Description == "" {
		return fmt.Errorf("agent %q: missing description", a.ID)
	}
	if len(a.Capabilities) == 0 {
		return fmt.Errorf("agent %q: capabilities must be non-empty", a.ID)
	}
	for i, c := range a.Capabilities {
		if c == "" {
			return fmt.Errorf("agent %q: capability %d is empty", a.ID, i)
		}
	}
	if !a.Model.Valid() {
		return fmt.Errorf("agent %q: unknown model %q", a.ID, a.Model)
	}
	return nil
}

func (a Agent) HasCapability(capability string) bool {
	for _, c := range a.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}
