// Package mentorship is the mentor matching view. The caller owns the mentor
// list; Connect returns a rebuilt list rather than mutating it.
package mentorship

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/ranking"
	"github.com/jonathan/skillsync/internal/toggle"
	"github.com/jonathan/skillsync/internal/types"
)

var connected = toggle.Flag[types.Mentor, string]{
	Name: "mentor",
	Key:  func(m types.Mentor) string { return m.ID },
	Get:  func(m types.Mentor) bool { return m.IsConnected },
	Set: func(m types.Mentor, v bool) types.Mentor {
		m.IsConnected = v
		return m
	},
}

// Stats describe the recommended list shown to the student.
type Stats struct {
	Recommended int `json:"recommended"`
	Connected   int `json:"connected"`
	AvgMatch    int `json:"avg_match"`
	TopMatch    int `json:"top_match"`
}

// Directory returns the mentor catalog with nobody connected.
func Directory() []types.Mentor {
	return catalog.Mentors()
}

// Connect marks the mentor with id as connected. Connecting twice is a no-op.
func Connect(mentors []types.Mentor, id string) ([]types.Mentor, error) {
	return connected.SetTo(mentors, id, true)
}

// Recommended returns unconnected mentors, best match first.
func Recommended(mentors []types.Mentor) []types.Mentor {
	open := ranking.Filter(mentors, func(m types.Mentor) bool { return !m.IsConnected })
	return ranking.SortByScoreDesc(open, matchScore)
}

// Connected returns connected mentors in directory order.
func Connected(mentors []types.Mentor) []types.Mentor {
	return ranking.Filter(mentors, func(m types.Mentor) bool { return m.IsConnected })
}

// ComputeStats summarises mentors. Averages and top match cover the
// recommended list only and are 0 once everyone is connected.
func ComputeStats(mentors []types.Mentor) Stats {
	rec := Recommended(mentors)
	stats := Stats{
		Recommended: len(rec),
		Connected:   len(mentors) - len(rec),
		AvgMatch:    ranking.Average(rec, matchScore),
	}
	if len(rec) > 0 {
		stats.TopMatch = rec[0].MatchScore
	}
	return stats
}

// Initials returns the first letter of each space-separated part of name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
	}
	return b.String()
}

// FirstName returns the first word of name, used in connect prompts.
func FirstName(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func matchScore(m types.Mentor) int { return m.MatchScore }
