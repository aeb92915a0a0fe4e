package mcptools

import (
	"context"

	"github.com/jonathan/skillsync/internal/mentorship"
	"github.com/jonathan/skillsync/internal/ranking"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// defaultMentorLimit is how many mentors are returned when no limit is given
const defaultMentorLimit = 3

func registerRecommendMentors(s *server.MCPServer) {
	tool := mcp.NewTool("recommend_mentors",
		mcp.WithDescription("Recommend mentors by match score, optionally narrowed to an expertise, role or company"),
	)
	tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"expertise": stringProp("Text matched against mentor expertise, role and company (optional)"),
			"limit":     map[string]interface{}{"type": "integer", "description": "Max mentors to return (default: 3)"},
		},
	}
	s.AddTool(tool, handleRecommendMentors)
}

func handleRecommendMentors(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	mentors := ranking.FilterByText(mentorship.Recommended(mentorship.Directory()), stringArg(args, "expertise"),
		func(m types.Mentor) []string {
			return append([]string{m.Role, m.Company}, m.Expertise...)
		})

	return jsonResult(ranking.Top(mentors, intArg(args, "limit", defaultMentorLimit)))
}
