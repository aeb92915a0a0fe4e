package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/skillsync/internal/courses"
	"github.com/jonathan/skillsync/internal/dashboard"
	"github.com/jonathan/skillsync/internal/institutional"
	"github.com/jonathan/skillsync/internal/portfolio"
	"github.com/jonathan/skillsync/internal/resume"
	"github.com/jonathan/skillsync/internal/skills"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "http://localhost:5173"

func newTestServer() *Server {
	return New(Config{Addr: ":0", AllowedOrigins: []string{testOrigin}})
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func onboard(t *testing.T, s *Server) OnboardingResponse {
	t.Helper()
	body := `{"name": "Meera", "education": "B.Tech", "major": "Computer Science", "gpa": "8.4",
		"skills": ["Python", "  ", "Python"], "interests": ["AI"],
		"projects": [{"title": "Chat bot", "description": "Answers FAQs"}]}`
	w := doRequest(t, s, http.MethodPost, "/onboarding", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[OnboardingResponse](t, w)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, s.SessionID(), resp["session_id"])
}

func TestOnboarding(t *testing.T) {
	s := newTestServer()

	resp := onboard(t, s)

	assert.Equal(t, "technology", resp.Analysis.CareerField)
	assert.Equal(t, "Software Engineer", resp.Profile.TopMatch().Role)
	assert.Equal(t, []string{"Python"}, resp.Profile.Skills)
	assert.InDelta(t, 8.4, resp.Profile.GPA, 0.001)
	assert.True(t, resp.Profile.AssessmentComplete)

	w := doRequest(t, s, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Meera", decode[types.Profile](t, w).Name)
}

func TestOnboarding_MissingName(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodPost, "/onboarding", `{"major": "Law"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, decode[map[string]string](t, w)["error"])
}

func TestOnboarding_InvalidJSON(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodPost, "/onboarding", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOnboardingOptions(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodGet, "/onboarding/options", "")

	require.Equal(t, http.StatusOK, w.Code)
	opts := decode[OnboardingOptions](t, w)
	assert.Contains(t, opts.Skills, "Python")
	assert.Contains(t, opts.Interests, "Psychology")
	assert.Equal(t, "Technology/IT", opts.PreferredFields[0])
	assert.Equal(t, "Other", opts.PreferredFields[len(opts.PreferredFields)-1])
}

func TestProfile_BeforeOnboarding(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodGet, "/profile", "")

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAssessment(t *testing.T) {
	s := newTestServer()
	onboard(t, s)

	w := doRequest(t, s, http.MethodGet, "/assessment/questions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 8, decode[map[string]any](t, w)["total"])

	// three empathetic answers against one analytical
	w = doRequest(t, s, http.MethodPost, "/assessment", `{"answers": {"0": "A", "5": "D", "6": "B", "7": "C"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[AssessmentResponse](t, w)
	assert.Equal(t, "empathetic", resp.Result.DominantTrait)
	assert.Equal(t, 50, resp.Progress)
	assert.Equal(t, resp.Result.PersonalityType, resp.Profile.PersonalityType)
	assert.Equal(t, "technology", resp.Profile.CareerField)
}

func TestAssessment_InvalidLetter(t *testing.T) {
	s := newTestServer()
	onboard(t, s)

	w := doRequest(t, s, http.MethodPost, "/assessment", `{"answers": {"0": "E"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssessment_LowercaseLetters(t *testing.T) {
	s := newTestServer()
	onboard(t, s)

	w := doRequest(t, s, http.MethodPost, "/assessment", `{"answers": {"0": "a", "5": "d", "6": "b", "7": " c"}}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "empathetic", decode[AssessmentResponse](t, w).Result.DominantTrait)
}

func TestAssessment_RequiresOnboarding(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodPost, "/assessment", `{"answers": {"0": "A"}}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCourses(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodGet, "/courses?type=online&search=python", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[CoursesResponse](t, w)
	assert.Equal(t, courses.CatalogStats(), resp.Stats)
	for _, c := range resp.Courses {
		assert.Equal(t, types.CourseTypeOnline, c.Type)
	}

	w = doRequest(t, s, http.MethodGet, "/courses?type=weekly", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMentors_Connect(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodPost, "/mentors/1/connect", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[MentorsResponse](t, w)
	assert.Equal(t, 1, resp.Stats.Connected)
	require.Len(t, resp.Connected, 1)
	assert.Equal(t, "1", resp.Connected[0].ID)

	// connecting again changes nothing
	w = doRequest(t, s, http.MethodPost, "/mentors/1/connect", "")
	assert.Equal(t, 1, decode[MentorsResponse](t, w).Stats.Connected)

	w = doRequest(t, s, http.MethodPost, "/mentors/999/connect", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkills_SeededAndToggled(t *testing.T) {
	s := newTestServer()
	onboard(t, s)

	w := doRequest(t, s, http.MethodGet, "/skills", "")
	require.Equal(t, http.StatusOK, w.Code)
	pathway := decode[skills.Pathway](t, w)
	assert.Equal(t, 1, pathway.Completed)
	assert.Equal(t, "Software Engineer", pathway.TopCareer)

	w = doRequest(t, s, http.MethodPost, "/skills/toggle", `{"name": "Python Programming"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[skills.Pathway](t, w).Completed)

	w = doRequest(t, s, http.MethodPost, "/skills/toggle", `{"name": "Juggling"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s, http.MethodPost, "/skills/toggle", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjects(t *testing.T) {
	s := newTestServer()
	onboard(t, s)

	w := doRequest(t, s, http.MethodPost, "/projects/1/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[portfolio.Board](t, w)
	assert.Equal(t, 1, board.Completed)
	require.Len(t, board.OwnProjects, 1)
	assert.Equal(t, "Chat bot", board.OwnProjects[0].Title)

	w = doRequest(t, s, http.MethodGet, "/projects/1/steps", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string]any](t, w)["steps"], 5)

	w = doRequest(t, s, http.MethodPost, "/projects/nope/toggle", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScenarios_Attempts(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodPost, "/scenarios/1/attempts", `{"option_id": "b"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	attempt := decode[AttemptResponse](t, w)
	assert.True(t, attempt.Result.IsCorrect)
	assert.Equal(t, 100, attempt.Result.Score)
	assert.NotEmpty(t, attempt.Result.AttemptID)

	w = doRequest(t, s, http.MethodPost, "/scenarios/1/attempts", `{"option_id": "d"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, s, http.MethodGet, "/scenarios", "")
	resp := decode[ScenariosResponse](t, w)
	assert.Len(t, resp.Scenarios, 5)
	assert.Equal(t, 2, resp.Summary.Attempts)
	assert.Equal(t, 100, resp.Summary.BestScore)
	assert.Equal(t, []string{"1"}, resp.Summary.Completed)

	w = doRequest(t, s, http.MethodPost, "/scenarios/99/attempts", `{"option_id": "a"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, s, http.MethodPost, "/scenarios/1/attempts", `{"option_id": "z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboard(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[dashboard.View](t, w).TopCareer)

	onboard(t, s)
	w = doRequest(t, s, http.MethodGet, "/dashboard", "")
	view := decode[dashboard.View](t, w)
	require.NotNil(t, view.TopCareer)
	assert.Equal(t, "Software Engineer", view.TopCareer.Role)
	assert.Equal(t, 1, view.Projects)
}

func TestInstitutional(t *testing.T) {
	s := newTestServer()

	w := doRequest(t, s, http.MethodGet, "/institutional", "")
	require.Equal(t, http.StatusOK, w.Code)
	report := decode[institutional.Report](t, w)
	assert.Len(t, report.CriticalGaps, institutional.HighlightedGaps)
}

func TestResumeUpload(t *testing.T) {
	s := newTestServer()

	upload := func(filename, content string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/resume", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)
		return w
	}

	w := upload("resume.txt", "Python developer\nbuilt web apps")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[map[string]string](t, w)
	assert.Equal(t, "text", resp["format"])
	assert.Contains(t, resp["text"], "Python developer")

	w = upload("resume.exe", "MZ")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = doRequest(t, s, http.MethodPost, "/resume", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResumeUpload_TooLarge(t *testing.T) {
	s := newTestServer()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), resume.MaxFileSize+1))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["error"], "larger than")
}

func TestCORS(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/courses", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Less(t, w.Code, 300)
	assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_WithProfile(t *testing.T) {
	p := &types.Profile{Name: "Ravi", Major: "Law", Skills: []string{"Communication"}}
	s := New(Config{Addr: ":0", Profile: p})

	w := doRequest(t, s, http.MethodGet, "/skills", "")
	assert.Equal(t, 1, decode[skills.Pathway](t, w).Completed)
}

func TestConcurrentToggles(t *testing.T) {
	s := newTestServer()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doRequest(t, s, http.MethodPost, "/projects/2/toggle", "")
		}()
	}
	wg.Wait()

	// an even number of flips leaves the project incomplete
	w := doRequest(t, s, http.MethodGet, "/projects", "")
	assert.Equal(t, 0, decode[portfolio.Board](t, w).Completed)
}

func TestConcurrentOnboardingAndAssessment(t *testing.T) {
	s := newTestServer()
	onboard(t, s)

	body := `{"name": "Meera", "major": "Computer Science", "skills": ["Python"]}`
	var wg sync.WaitGroup
	codes := make(chan int, 20)
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			codes <- doRequest(t, s, http.MethodPost, "/onboarding", body).Code
		}()
		go func() {
			defer wg.Done()
			codes <- doRequest(t, s, http.MethodPost, "/assessment", `{"answers": {"0": "B"}}`).Code
		}()
	}
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Contains(t, []int{http.StatusCreated, http.StatusOK}, code)
	}
}
