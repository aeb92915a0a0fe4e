package mcptools

import (
	"context"

	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/skills"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerSkillPathway(s *server.MCPServer) {
	tool := mcp.NewTool("skill_pathway",
		mcp.WithDescription("Build the skill pathway for a student: completed skills, priorities and roadmap"),
	)
	tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"major":     stringProp("Field of study, used to pick the target career (optional)"),
			"skills":    stringListProp("Skills the student already has"),
			"interests": stringListProp("Areas of interest (optional)"),
			"completed": stringListProp("Pathway skills to mark as completed (optional)"),
		},
	}
	s.AddTool(tool, handleSkillPathway)
}

func handleSkillPathway(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := arguments(request)
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	p := profile.New()
	p.Major = stringArg(args, "major")
	for _, skill := range stringListArg(args, "skills") {
		profile.AddSkill(p, skill)
	}
	for _, interest := range stringListArg(args, "interests") {
		profile.AddInterest(p, interest)
	}
	if p.Major != "" {
		profile.Finalize(p)
	}

	state := skills.Seed(p.Skills)
	for _, name := range stringListArg(args, "completed") {
		next, err := skills.Complete(state, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		state = next
	}

	return jsonResult(skills.Build(p, state))
}
