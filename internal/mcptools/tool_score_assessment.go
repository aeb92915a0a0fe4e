package mcptools

import (
	"context"
	"fmt"

	"github.com/jonathan/skillsync/internal/assessment"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AssessmentResult is the score_assessment payload
type AssessmentResult struct {
	Result   types.AssessmentResult `json:"result"`
	Progress int                    `json:"progress"`
}

func registerScoreAssessment(s *server.MCPServer) {
	tool := mcp.NewTool("score_assessment",
		mcp.WithDescription("Score psychometric assessment answers and return the dominant trait with matching careers"),
	)
	tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"answers": map[string]interface{}{
				"type":                 "object",
				"description":          "Option letter (A-D) keyed by 0-based question index, e.g. {\"0\": \"A\"}",
				"additionalProperties": map[string]interface{}{"type": "string"},
			},
		},
		Required: []string{"answers"},
	}
	s.AddTool(tool, handleScoreAssessment)
}

func handleScoreAssessment(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	rawAnswers, ok := args["answers"].(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("missing required field: answers"), nil
	}

	raw := make(map[string]string, len(rawAnswers))
	for key, value := range rawAnswers {
		letter, ok := value.(string)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("answer for question %s must be a letter", key)), nil
		}
		raw[key] = letter
	}

	answers, err := assessment.ParseAnswers(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(AssessmentResult{
		Result:   assessment.Tally(answers),
		Progress: assessment.Progress(answers),
	})
}
