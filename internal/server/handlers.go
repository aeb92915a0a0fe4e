package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/skillsync/internal/assessment"
	"github.com/jonathan/skillsync/internal/catalog"
	"github.com/jonathan/skillsync/internal/courses"
	"github.com/jonathan/skillsync/internal/dashboard"
	"github.com/jonathan/skillsync/internal/institutional"
	"github.com/jonathan/skillsync/internal/mentorship"
	"github.com/jonathan/skillsync/internal/portfolio"
	"github.com/jonathan/skillsync/internal/profile"
	"github.com/jonathan/skillsync/internal/resume"
	"github.com/jonathan/skillsync/internal/simulator"
	"github.com/jonathan/skillsync/internal/skills"
	"github.com/jonathan/skillsync/internal/types"
)

// OnboardingResponse is returned after onboarding is submitted
type OnboardingResponse struct {
	Profile  *types.Profile       `json:"profile"`
	Analysis types.CareerAnalysis `json:"analysis"`
}

// OnboardingOptions lists the quick picks offered on the onboarding form
type OnboardingOptions struct {
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	PreferredFields []string `json:"preferred_fields"`
}

// AssessmentResponse is returned after answers are scored
type AssessmentResponse struct {
	Result   types.AssessmentResult `json:"result"`
	Progress int                    `json:"progress"`
	Profile  *types.Profile         `json:"profile"`
}

// CoursesResponse is the filtered course list with catalog stats
type CoursesResponse struct {
	Courses []types.Course `json:"courses"`
	Stats   courses.Stats  `json:"stats"`
}

// MentorsResponse splits mentors into recommended and connected
type MentorsResponse struct {
	Recommended []types.Mentor   `json:"recommended"`
	Connected   []types.Mentor   `json:"connected"`
	Stats       mentorship.Stats `json:"stats"`
}

// ScenariosResponse lists scenarios with the session's attempt summary
type ScenariosResponse struct {
	Scenarios []types.Scenario  `json:"scenarios"`
	Summary   simulator.Summary `json:"summary"`
}

// AttemptResponse is one scored attempt with the updated summary
type AttemptResponse struct {
	Result  types.SimulationResult `json:"result"`
	Summary simulator.Summary      `json:"summary"`
}

// handleOnboarding validates the onboarding form, classifies it and starts
// a fresh pathway seeded from the submitted skills.
func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	var req types.OnboardingRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, err)
		return
	}

	p := profile.FromRequest(&req)
	analysis := profile.Finalize(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.profile = p
	s.session.skills = skills.Seed(p.Skills)

	s.jsonResponse(w, http.StatusCreated, OnboardingResponse{Profile: p, Analysis: analysis})
}

func (s *Server) handleOnboardingOptions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, OnboardingOptions{
		Skills:          catalog.SuggestedSkills(),
		Interests:       catalog.SuggestedInterests(),
		PreferredFields: catalog.PreferredFields(),
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.profile == nil {
		s.handleError(w, &ErrNotOnboarded{})
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.profile)
}

// handleResumeUpload extracts text from a multipart "file" upload. The
// format is taken from the uploaded file name.
func (s *Server) handleResumeUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, resume.MaxFileSize+1<<10)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "file", Message: err.Error()})
		return
	}
	defer func() { _ = file.Close() }()

	format, err := resume.FormatFromPath(header.Filename)
	if err != nil {
		s.handleError(w, err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, resume.MaxFileSize+1))
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "file", Message: err.Error()})
		return
	}
	if len(data) > resume.MaxFileSize {
		s.handleError(w, &ErrValidation{
			Field:   "file",
			Message: fmt.Sprintf("%s is larger than %d bytes", header.Filename, resume.MaxFileSize),
		})
		return
	}

	text, err := resume.Extract(format, data)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"format": string(format), "text": text})
}

func (s *Server) handleListQuestions(w http.ResponseWriter, _ *http.Request) {
	questions := assessment.Questions()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": questions,
		"total":     len(questions),
	})
}

// handleSubmitAssessment tallies the answers and overwrites the profile's
// personality and career matches with the result.
func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	var req types.AnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.handleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.profile == nil {
		s.handleError(w, &ErrNotOnboarded{})
		return
	}

	result := assessment.Tally(req.Answers)
	if err := profile.ApplyAssessment(s.session.profile, result); err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, AssessmentResponse{
		Result:   result,
		Progress: assessment.Progress(req.Answers),
		Profile:  s.session.profile,
	})
}

// handleListCourses filters by ?search= and ?type=.
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courseType, err := courses.ParseType(r.URL.Query().Get("type"))
	if err != nil {
		s.handleError(w, err)
		return
	}

	q := courses.Query{Search: r.URL.Query().Get("search"), Type: courseType}
	s.jsonResponse(w, http.StatusOK, CoursesResponse{
		Courses: courses.Search(q),
		Stats:   courses.CatalogStats(),
	})
}

func (s *Server) handleListMentors(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, s.mentorsResponse())
}

func (s *Server) handleConnectMentor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	mentors, err := mentorship.Connect(s.session.mentors, id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.session.mentors = mentors

	s.jsonResponse(w, http.StatusOK, s.mentorsResponse())
}

// mentorsResponse must be called with s.mu held.
func (s *Server) mentorsResponse() MentorsResponse {
	return MentorsResponse{
		Recommended: mentorship.Recommended(s.session.mentors),
		Connected:   mentorship.Connected(s.session.mentors),
		Stats:       mentorship.ComputeStats(s.session.mentors),
	}
}

func (s *Server) handleGetPathway(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, skills.Build(s.session.profile, s.session.skills))
}

func (s *Server) handleToggleSkill(w http.ResponseWriter, r *http.Request) {
	var req types.SkillToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := skills.Toggle(s.session.skills, strings.TrimSpace(req.Name))
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.session.skills = next

	s.jsonResponse(w, http.StatusOK, skills.Build(s.session.profile, s.session.skills))
}

func (s *Server) handleGetPortfolio(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, portfolio.Build(s.session.profile, s.session.projects))
}

func (s *Server) handleGetProjectSteps(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	steps, err := portfolio.Steps(s.session.projects, id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"id": id, "steps": steps})
}

func (s *Server) handleToggleProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := portfolio.Toggle(s.session.projects, id)
	if err != nil {
		s.handleError(w, err)
		return
	}
	s.session.projects = next

	s.jsonResponse(w, http.StatusOK, portfolio.Build(s.session.profile, s.session.projects))
}

func (s *Server) handleListScenarios(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, ScenariosResponse{
		Scenarios: simulator.Scenarios(),
		Summary:   simulator.Summarize(s.session.results),
	})
}

func (s *Server) handleSubmitAttempt(w http.ResponseWriter, r *http.Request) {
	var req types.AttemptRequest
	if err := decodeJSON(r, &req); err != nil {
		s.handleError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.handleError(w, err)
		return
	}

	result, err := simulator.Submit(r.PathValue("id"), req.OptionID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.results = append(s.session.results, result)
	s.jsonResponse(w, http.StatusCreated, AttemptResponse{
		Result:  result,
		Summary: simulator.Summarize(s.session.results),
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, dashboard.Build(s.session.profile))
}

func (s *Server) handleInstitutional(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, institutional.Build())
}
