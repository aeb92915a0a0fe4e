// Package courses is the course recommendation view over the catalog.
package courses

import (
	"fmt"
	"strings"

	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/ranking"
	"github.com/jonathan/skillsync/internal/types"
)

// Query selects courses by free text and delivery type.
type Query struct {
	Search string
	Type   types.CourseType
}

// Stats summarise the whole catalog, independent of any query.
type Stats struct {
	Total        int `json:"total"`
	AvgMatch     int `json:"avg_match"`
	Certificates int `json:"certificates"`
	Online       int `json:"online"`
}

// ParseType maps user input to a delivery type. Empty input means all.
func ParseType(s string) (types.CourseType, error) {
	switch t := types.CourseType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return types.CourseTypeAll, nil
	case types.CourseTypeAll, types.CourseTypeOnline, types.CourseTypeOffline, types.CourseTypeHybrid:
		return t, nil
	default:
		return "", &QueryError{Message: fmt.Sprintf("unknown course type %q (want all, online, offline or hybrid)", s)}
	}
}

// Search filters the catalog by q and orders it by match score, best first.
func Search(q Query) []types.Course {
	return Filter(catalog.Courses(), q)
}

// Filter applies q to courses. The search text matches the title or any
// skill; courses with equal match scores keep catalog order.
func Filter(courses []types.Course, q Query) []types.Course {
	kind := q.Type
	if kind == "" {
		kind = types.CourseTypeAll
	}
	out := ranking.FilterByText(courses, q.Search, searchFields)
	out = ranking.FilterByEnum(out, kind, types.CourseTypeAll, func(c types.Course) types.CourseType { return c.Type })
	return ranking.SortByScoreDesc(out, matchScore)
}

// ComputeStats summarises courses.
func ComputeStats(courses []types.Course) Stats {
	return Stats{
		Total:        len(courses),
		AvgMatch:     ranking.Average(courses, matchScore),
		Certificates: ranking.Count(courses, func(c types.Course) bool { return c.Certificate }),
		Online:       ranking.Count(courses, func(c types.Course) bool { return c.Type == types.CourseTypeOnline }),
	}
}

// CatalogStats summarises the full course catalog.
func CatalogStats() Stats {
	return ComputeStats(catalog.Courses())
}

func searchFields(c types.Course) []string {
	return append([]string{c.Title}, c.Skills...)
}

func matchScore(c types.Course) int { return c.MatchScore }
