package mcp

import (
	"context"
	"encoding/json"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domainagent "github.com/alanyang/agent-catalog/internal/domain/agent"
	registrysvc "github.com/alanyang/agent-catalog/internal/service/registry"
)

// RegisterTools registers the catalog tools on the server.
// Add a new tool by adding a new AddTool call — server.go never changes.
func RegisterTools(s *mcpserver.MCPServer, reg *registrysvc.Registry) {
	s.AddTool(mcpmcp.NewTool("list_agents",
		mcpmcp.WithDescription("List agents in the catalog. Optionally filter by role (category name, e.g. Sales)."),
		mcpmcp.WithString("role", mcpmcp.Description("Category name to filter by. Empty returns the full catalog.")),
	), listAgentsHandler(reg))

	s.AddTool(mcpmcp.NewTool("get_agent",
		mcpmcp.WithDescription("Look up a single agent definition by its catalog id."),
		mcpmcp.WithString("agent_id", mcpmcp.Required(), mcpmcp.Description("Agent id, e.g. sales_lead_generation_1")),
	), getAgentHandler(reg))

	s.AddTool(mcpmcp.NewTool("execute_agent",
		mcpmcp.WithDescription("Route a prompt to an agent. Returns the formatted dispatch result — no model is invoked."),
		mcpmcp.WithString("agent_id", mcpmcp.Required(), mcpmcp.Description("Agent id to dispatch to")),
		mcpmcp.WithString("prompt", mcpmcp.Required(), mcpmcp.Description("Free-text prompt")),
	), executeAgentHandler(reg))
}

// ── Tool handlers ─────────────────────────────────────────────────────────

func listAgentsHandler(reg *registrysvc.Registry) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		role := mcpmcp.ParseString(req, "role", "")

		agents := reg.List()
		if role != "" {
			filtered := make([]domainagent.Agent, 0)
			for _, a := range agents {
				if a.Role == role {
					filtered = append(filtered, a)
				}
			}
			agents = filtered
		}

		data, err := json.Marshal(agents)
		if err != nil {
			return mcpmcp.NewToolResultText("error: encoding agents"), nil
		}
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}

func getAgentHandler(reg *registrysvc.Registry) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id := mcpmcp.ParseString(req, "agent_id", "")
		if id == "" {
			return mcpmcp.NewToolResultText("error: agent_id is required"), nil
		}

		a, ok := reg.Get(id)
		if !ok {
			// A miss is a routine outcome, not a protocol error.
			return mcpmcp.NewToolResultText("null"), nil
		}

		data, _ := json.Marshal(a)
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}

func executeAgentHandler(reg *registrysvc.Registry) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id := mcpmcp.ParseString(req, "agent_id", "")
		prompt := mcpmcp.ParseString(req, "prompt", "")
		if id == "" {
			return mcpmcp.NewToolResultText("error: agent_id is required"), nil
		}

		out, ok := reg.Execute(ctx, id, prompt)
		if !ok {
			return mcpmcp.NewToolResultText("error: agent not found"), nil
		}
		return mcpmcp.NewToolResultText(out), nil
	}
}
