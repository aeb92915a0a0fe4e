package dashboard

import (
	"testing"

	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_FinalizedProfile(t *testing.T) {
	p := profile.New()
	p.Name = "Asha"
	p.Major = "Computer Science"
	for _, s := range []string{"Python", "SQL", "Go", "Docker", "React", "Figma"} {
		profile.AddSkill(p, s)
	}
	profile.AddInterest(p, "AI")
	profile.Finalize(p)

	v := Build(p)

	require.NotNil(t, v.TopCareer)
	assert.Equal(t, "Software Engineer", v.TopCareer.Role)
	assert.Equal(t, "The Tech Innovator", v.PersonalityType)
	require.Len(t, v.Careers, 3)
	assert.Equal(t, "₹8,00,000", v.Careers[0].SalaryFrom)
	assert.Equal(t, []string{"Python", "SQL", "Go", "Docker", "React"}, v.Skills)
	assert.Equal(t, []string{"AI"}, v.Interests)
}

func TestBuild_TopCareerIsACopy(t *testing.T) {
	p := &types.Profile{CareerMatches: []types.RoleMatch{{Role: "UX Designer", Match: 96}}}
	v := Build(p)
	v.TopCareer.Role = "changed"
	assert.Equal(t, "UX Designer", p.CareerMatches[0].Role)
}

func TestBuild_Unfinalized(t *testing.T) {
	v := Build(&types.Profile{Name: "Ravi"})
	assert.Nil(t, v.TopCareer)
	assert.Empty(t, v.Careers)

	assert.Nil(t, Build(nil).TopCareer)
}

func TestSalaryFloor(t *testing.T) {
	assert.Equal(t, "₹4,00,000", SalaryFloor("₹4,00,000 - ₹12,00,000"))
	assert.Equal(t, "Negotiable", SalaryFloor("Negotiable"))
}
