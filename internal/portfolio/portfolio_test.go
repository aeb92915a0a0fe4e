package portfolio

import (
	"errors"
	"testing"

	"github.com/jonathan/skillsync/internal/toggle"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_Involution(t *testing.T) {
	projects := Templates()

	once, err := Toggle(projects, "3")
	require.NoError(t, err)
	assert.True(t, once[2].Completed)
	assert.False(t, projects[2].Completed)

	twice, err := Toggle(once, "3")
	require.NoError(t, err)
	assert.Equal(t, projects, twice)
}

func TestToggle_Unknown(t *testing.T) {
	_, err := Toggle(Templates(), "7")
	var nf *toggle.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestSteps(t *testing.T) {
	steps, err := Steps(Templates(), "5")
	require.NoError(t, err)
	require.Len(t, steps, 5)
	assert.Equal(t, "Design pipeline architecture", steps[0])

	_, err = Steps(Templates(), "")
	assert.Error(t, err)
}

func TestByCategory(t *testing.T) {
	assert.Len(t, ByCategory(Templates(), ""), 6)
	design := ByCategory(Templates(), "Design")
	require.Len(t, design, 1)
	assert.Equal(t, "Mobile App UI/UX Design", design[0].Title)
}

func TestBuild(t *testing.T) {
	projects, err := Toggle(Templates(), "1")
	require.NoError(t, err)
	projects, err = Toggle(projects, "2")
	require.NoError(t, err)

	p := &types.Profile{Projects: []types.Project{{Title: "Chatbot", Description: "Support bot"}}}
	board := Build(p, projects)

	assert.Equal(t, 2, board.Completed)
	assert.Equal(t, 33, board.Completion)
	assert.Equal(t, p.Projects, board.OwnProjects)
}

func TestBuild_NoProjects(t *testing.T) {
	board := Build(nil, nil)
	assert.Equal(t, 0, board.Completion)
	assert.NotNil(t, board.OwnProjects)
}
