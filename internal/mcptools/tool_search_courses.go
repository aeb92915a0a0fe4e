package mcptools

import (
	"context"

	"github.com/jonathan/skillsync/internal/courses"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CoursesResult is the search_courses payload
type CoursesResult struct {
	Courses []types.Course `json:"courses"`
	Stats   courses.Stats  `json:"stats"`
}

func registerSearchCourses(s *server.MCPServer) {
	tool := mcp.NewTool("search_courses",
		mcp.WithDescription("Search the course catalog by text and delivery type, best matches first"),
	)
	tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"search": stringProp("Text matched against course titles and skills"),
			"type": map[string]interface{}{
				"type":        "string",
				"enum":        []string{"all", "online", "offline", "hybrid"},
				"description": "Delivery type (default: all)",
			},
			"limit": map[string]interface{}{"type": "integer", "description": "Max courses to return (optional)"},
		},
	}
	s.AddTool(tool, handleSearchCourses)
}

func handleSearchCourses(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	courseType, err := courses.ParseType(stringArg(args, "type"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	found := courses.Search(courses.Query{Search: stringArg(args, "search"), Type: courseType})
	if limit := intArg(args, "limit", 0); limit > 0 && limit < len(found) {
		found = found[:limit]
	}

	return jsonResult(CoursesResult{Courses: found, Stats: courses.CatalogStats()})
}
