package mcptools

import (
	"context"

	"github.com/jonathan/skillsync/internal/classifier"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ClassifyResult is the classify_profile payload
type ClassifyResult struct {
	Analysis types.CareerAnalysis  `json:"analysis"`
	Scores   []types.CategoryScore `json:"scores"`
}

func registerClassifyProfile(s *server.MCPServer) {
	tool := mcp.NewTool("classify_profile",
		mcp.WithDescription("Classify a student profile into a career field, personality label and suggested roles"),
	)
	tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"major":       stringProp("Field of study"),
			"skills":      stringListProp("Skills the student has"),
			"interests":   stringListProp("Areas of interest"),
			"resume_text": stringProp("Plain resume text (optional)"),
		},
		Required: []string{"major"},
	}
	s.AddTool(tool, handleClassifyProfile)
}

func handleClassifyProfile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	in := classifier.Input{
		Major:      stringArg(args, "major"),
		Skills:     stringListArg(args, "skills"),
		Interests:  stringListArg(args, "interests"),
		ResumeText: stringArg(args, "resume_text"),
	}
	if in.Major == "" {
		return mcp.NewToolResultError("missing required field: major"), nil
	}

	return jsonResult(ClassifyResult{
		Analysis: classifier.Classify(in),
		Scores:   classifier.ScoreCategories(in),
	})
}
