package mentorship

import (
	"errors"
	"testing"

	"github.com/jonathan/skillsync/internal/toggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommended_SortedByMatch(t *testing.T) {
	rec := Recommended(Directory())

	require.Len(t, rec, 10)
	assert.Equal(t, "Priya Sharma", rec[0].Name)
	assert.Equal(t, "Dr. Meera Nair", rec[1].Name)
	for i := 1; i < len(rec); i++ {
		assert.GreaterOrEqual(t, rec[i-1].MatchScore, rec[i].MatchScore)
	}
}

func TestConnect(t *testing.T) {
	dir := Directory()

	after, err := Connect(dir, "1")
	require.NoError(t, err)
	assert.False(t, dir[0].IsConnected, "input list is not modified")

	conn := Connected(after)
	require.Len(t, conn, 1)
	assert.Equal(t, "Priya Sharma", conn[0].Name)

	rec := Recommended(after)
	assert.Len(t, rec, 9)
	assert.Equal(t, "Dr. Meera Nair", rec[0].Name)
}

func TestConnect_Idempotent(t *testing.T) {
	once, err := Connect(Directory(), "3")
	require.NoError(t, err)
	twice, err := Connect(once, "3")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestConnect_UnknownMentor(t *testing.T) {
	_, err := Connect(Directory(), "404")
	var nf *toggle.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(Directory())
	assert.Equal(t, 10, stats.Recommended)
	assert.Equal(t, 0, stats.Connected)
	// 915 / 10 = 91.5
	assert.Equal(t, 92, stats.AvgMatch)
	assert.Equal(t, 96, stats.TopMatch)
}

func TestComputeStats_AllConnected(t *testing.T) {
	mentors := Directory()
	var err error
	for _, m := range Directory() {
		mentors, err = Connect(mentors, m.ID)
		require.NoError(t, err)
	}

	stats := ComputeStats(mentors)
	assert.Equal(t, Stats{Recommended: 0, Connected: 10, AvgMatch: 0, TopMatch: 0}, stats)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "PS", Initials("Priya Sharma"))
	assert.Equal(t, "DMN", Initials("Dr. Meera Nair"))
	assert.Equal(t, "", Initials(""))
	assert.Equal(t, "Prof.", FirstName("Prof. Rajesh Gupta"))
	assert.Equal(t, "", FirstName("  "))
}
