package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/swingtrack/swing-pose/internal/poses"
	"github.com/swingtrack/swing-pose/internal/skeleton"
	"github.com/swingtrack/swing-pose/internal/validation"
)

// maxSceneRequestBytes bounds POST bodies.
const maxSceneRequestBytes = 16 << 10

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"dataset": s.dataset.ID,
		"version": s.dataset.Version,
	})
}

// handleDataset returns the full dataset
func (s *Server) handleDataset(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.dataset)
}

// IssuesResponse is the body of GET /dataset/issues.
type IssuesResponse struct {
	DatasetID string             `json:"dataset_id"`
	Version   string             `json:"version"`
	Valid     bool               `json:"valid"`
	Issues    []validation.Issue `json:"issues"`
}

// handleDatasetIssues re-runs the validator over the served dataset
func (s *Server) handleDatasetIssues(w http.ResponseWriter, _ *http.Request) {
	issues := validation.Validate(s.dataset)
	if issues == nil {
		issues = []validation.Issue{}
	}
	s.jsonResponse(w, http.StatusOK, IssuesResponse{
		DatasetID: s.dataset.ID,
		Version:   s.dataset.Version,
		Valid:     len(issues) == 0,
		Issues:    issues,
	})
}

// handlePose returns one pose
func (s *Server) handlePose(w http.ResponseWriter, r *http.Request) {
	position, err := skeleton.ParsePPosition(r.PathValue("position"))
	if err != nil {
		s.failResponse(w, r, err)
		return
	}
	handedness, err := skeleton.ParseHandedness(r.PathValue("handedness"))
	if err != nil {
		s.failResponse(w, r, err)
		return
	}

	pose, ok := s.dataset.Pose(position, handedness)
	if !ok {
		s.failResponse(w, r, &ErrPoseNotFound{Position: position, Handedness: handedness})
		return
	}
	s.jsonResponse(w, http.StatusOK, pose)
}

// handleScene projects a pose and returns the scene as JSON
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	params, pose, ok := s.decodeScene(w, r)
	if !ok {
		return
	}
	scene := s.renderer.Projector().ProjectScene(pose, params.Camera, params.Viewport, params.Grid)
	s.jsonResponse(w, http.StatusOK, scene)
}

// handleScenePNG projects a pose and returns it rendered as PNG
func (s *Server) handleScenePNG(w http.ResponseWriter, r *http.Request) {
	params, pose, ok := s.decodeScene(w, r)
	if !ok {
		return
	}

	// Buffer so a render failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := s.renderer.RenderPose(&buf, pose, params.Camera, params.Viewport, params.Grid); err != nil {
		s.failResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// decodeScene reads, validates and resolves a SceneRequest. On failure the error response
// has already been written.
func (s *Server) decodeScene(w http.ResponseWriter, r *http.Request) (SceneParams, poses.Pose, bool) {
	var req SceneRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSceneRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.failResponse(w, r, &ErrValidation{Field: "(body)", Message: err.Error()})
		return SceneParams{}, poses.Pose{}, false
	}
	if err := req.Validate(); err != nil {
		s.failResponse(w, r, err)
		return SceneParams{}, poses.Pose{}, false
	}

	params, err := req.Resolve(s.defaults)
	if err != nil {
		s.failResponse(w, r, err)
		return SceneParams{}, poses.Pose{}, false
	}

	pose, ok := s.dataset.Pose(params.Position, params.Handedness)
	if !ok {
		s.failResponse(w, r, &ErrPoseNotFound{Position: params.Position, Handedness: params.Handedness})
		return SceneParams{}, poses.Pose{}, false
	}
	return params, pose, true
}

// handleListSnapshots lists published snapshots, newest first
func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.failResponse(w, r, ErrStoreUnavailable)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.failResponse(w, r, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}

	snapshots, err := s.store.ListSnapshots(r.Context(), limit)
	if err != nil {
		s.failResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshots)
}

// handleLatestSnapshot returns the newest snapshot of the served dataset id
func (s *Server) handleLatestSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.failResponse(w, r, ErrStoreUnavailable)
		return
	}

	snapshot, err := s.store.LatestSnapshot(r.Context(), s.dataset.ID)
	if err != nil {
		s.failResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleGetSnapshot returns one snapshot with content
func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.failResponse(w, r, ErrStoreUnavailable)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.failResponse(w, r, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	snapshot, err := s.store.GetSnapshot(r.Context(), id)
	if err != nil {
		s.failResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}
