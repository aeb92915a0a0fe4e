package mcptools

import (
	"context"

	"github.com/jonathan/skillsync/internal/simulator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerSimulateScenario(s *server.MCPServer) {
	tool := mcp.NewTool("simulate_scenario",
		mcp.WithDescription("Show a workplace scenario, or score an option for it when option_id is given. Without scenario_id, lists all scenarios"),
	)
	tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"scenario_id": stringProp("Scenario id (optional)"),
			"option_id":   stringProp("Chosen option a-d (optional)"),
		},
	}
	s.AddTool(tool, handleSimulateScenario)
}

func handleSimulateScenario(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	scenarioID := stringArg(args, "scenario_id")
	optionID := stringArg(args, "option_id")

	switch {
	case scenarioID == "":
		return jsonResult(simulator.Scenarios())
	case optionID == "":
		scenario, err := simulator.Get(scenarioID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(scenario)
	default:
		result, err := simulator.Submit(scenarioID, optionID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	}
}
