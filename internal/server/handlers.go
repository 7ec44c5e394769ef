package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-optimizer/internal/extraction"
	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/optimizer"
	"github.com/jonathan/cv-optimizer/internal/parsing"
	"github.com/jonathan/cv-optimizer/internal/rendering"
	"github.com/jonathan/cv-optimizer/internal/schemas"
	"github.com/jonathan/cv-optimizer/internal/store"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// enrichmentCallTimeout bounds each LLM rewrite call made on behalf of
// an HTTP request.
const enrichmentCallTimeout = 60 * time.Second

// optimizeRequest is the body for POST /api/v1/optimize. Either job_text
// or job_url must be provided.
type optimizeRequest struct {
	CVText         string `json:"cv_text" validate:"required"`
	JobText        string `json:"job_text" validate:"required_without=JobURL"`
	JobURL         string `json:"job_url" validate:"omitempty,url"`
	Template       string `json:"template" validate:"omitempty,oneof=modern professional creative"`
	SkipEnrichment bool   `json:"skip_enrichment"`
}

// optimizeResponse is the body returned by POST /api/v1/optimize.
type optimizeResponse struct {
	Result     *types.OptimizationResult `json:"result"`
	Statistics types.ProfileStatistics   `json:"statistics"`
	RenderedCV string                    `json:"rendered_cv,omitempty"`
	RunID      string                    `json:"run_id,omitempty"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "cv_optimizer",
	})
}

// handleOptimize runs the full optimization pipeline on the request
// body: parse CV and job, re-weight the profile, score, render.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ctx := r.Context()

	jobText := req.JobText
	if jobText == "" {
		content, _, err := ingestion.IngestJobFromURL(ctx, req.JobURL, true, s.verbose)
		if err != nil {
			s.errorResponse(w, httpStatus(err), "failed to fetch job posting: "+err.Error())
			return
		}
		jobText = content
	}

	profile, err := parsing.ParseCandidateProfile(ctx, s.client, req.CVText)
	if err != nil {
		s.errorResponse(w, httpStatus(err), "failed to parse CV: "+err.Error())
		return
	}

	job, err := parsing.ParseJobProfile(ctx, s.client, jobText)
	if err != nil {
		s.errorResponse(w, httpStatus(err), "failed to parse job posting: "+err.Error())
		return
	}

	var enricher llm.TextEnrichmentService
	if !req.SkipEnrichment {
		enricher = llm.NewEnricher(s.client, enrichmentCallTimeout)
	}

	opt := optimizer.New(optimizer.Options{
		Enricher: enricher,
		Verbose:  s.verbose,
	})

	result, err := opt.Optimize(ctx, profile, job)
	if err != nil {
		s.errorResponse(w, httpStatus(err), "optimization failed: "+err.Error())
		return
	}

	resp := optimizeResponse{
		Result:     result,
		Statistics: optimizer.Statistics(result.Optimized),
	}

	// Render failure degrades: the result is still valid.
	rendered, err := rendering.RenderText(result.Optimized)
	if err != nil {
		log.Printf("Warning: failed to render optimized CV: %v", err)
	} else {
		resp.RenderedCV = rendered
	}

	if runID := s.persistRun(r, &req, job, result, rendered); runID != uuid.Nil {
		resp.RunID = runID.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// persistRun saves the run and its artifacts when a store is
// configured. Persistence failures are logged, never surfaced.
func (s *Server) persistRun(r *http.Request, req *optimizeRequest, job *types.JobProfile, result *types.OptimizationResult, rendered string) uuid.UUID {
	if s.store == nil {
		return uuid.Nil
	}

	ctx := r.Context()
	source := req.JobURL
	if source == "" {
		source = "inline"
	}

	runID, err := s.store.CreateRun(ctx,
		result.Original.ContactInfo.FullName,
		job.Title,
		job.Company.Name,
		source,
	)
	if err != nil {
		log.Printf("Warning: failed to persist run: %v", err)
		return uuid.Nil
	}

	artifacts := map[string]any{
		store.ArtifactOriginalProfile:  result.Original,
		store.ArtifactJobProfile:       job,
		store.ArtifactOptimizedProfile: result.Optimized,
		store.ArtifactResult:           result,
	}
	for kind, content := range artifacts {
		if err := s.store.SaveArtifact(ctx, runID, kind, content); err != nil {
			log.Printf("Warning: failed to save artifact %s: %v", kind, err)
		}
	}
	if rendered != "" {
		if err := s.store.SaveTextArtifact(ctx, runID, store.ArtifactRenderedCV, rendered); err != nil {
			log.Printf("Warning: failed to save rendered CV: %v", err)
		}
	}

	if err := s.store.CompleteRun(ctx, runID, store.StatusCompleted, result.Score); err != nil {
		log.Printf("Warning: failed to complete run: %v", err)
	}
	return runID
}

// handleListRuns returns recent persisted optimization runs.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run persistence is not configured")
		return
	}

	runs, err := s.store.ListRuns(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns a single persisted run by ID.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "run persistence is not configured")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.store.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleFormats reports the supported input and output formats.
func (s *Server) handleFormats(w http.ResponseWriter, _ *http.Request) {
	inputDescriptions := map[string]string{
		".pdf":  "Portable Document Format",
		".docx": "Microsoft Word Document",
		".txt":  "Plain Text",
		".md":   "Markdown",
	}
	outputDescriptions := map[string]string{
		rendering.FormatPDF:  "Portable Document Format",
		rendering.FormatDocx: "Microsoft Word Document",
		rendering.FormatText: "Plain Text",
	}

	type formatInfo struct {
		Format      string `json:"format"`
		Description string `json:"description"`
		Recommended bool   `json:"recommended,omitempty"`
	}

	var inputs []formatInfo
	for _, ext := range extraction.SupportedExtensions() {
		inputs = append(inputs, formatInfo{Format: ext, Description: inputDescriptions[ext]})
	}
	var outputs []formatInfo
	for _, format := range rendering.FormatNames() {
		outputs = append(outputs, formatInfo{
			Format:      format,
			Description: outputDescriptions[format],
			Recommended: format == rendering.FormatPDF,
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"input_formats":  inputs,
		"output_formats": outputs,
	})
}

// handleTemplates lists the available CV templates.
func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	type templateInfo struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		SuitableFor []string `json:"suitable_for"`
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": []templateInfo{
			{
				ID:          rendering.TemplateModern,
				Name:        "Modern Professional",
				Description: "Clean and contemporary design",
				SuitableFor: []string{"technology", "startups", "creative"},
			},
			{
				ID:          rendering.TemplateProfessional,
				Name:        "Traditional Professional",
				Description: "Classic business format",
				SuitableFor: []string{"finance", "consulting", "corporate"},
			},
			{
				ID:          rendering.TemplateCreative,
				Name:        "Creative Modern",
				Description: "Bold and innovative design",
				SuitableFor: []string{"design", "marketing", "advertising"},
			},
		},
	})
}

// handleTips returns general CV optimization tips.
func (s *Server) handleTips(w http.ResponseWriter, _ *http.Request) {
	type tipGroup struct {
		Category string   `json:"category"`
		Tips     []string `json:"tips"`
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"tips": []tipGroup{
			{
				Category: "content",
				Tips: []string{
					"Use action verbs to start bullet points",
					"Quantify achievements with numbers and percentages",
					"Tailor skills to match job requirements",
					"Keep summary concise and impactful",
				},
			},
			{
				Category: "formatting",
				Tips: []string{
					"Use consistent formatting throughout",
					"Keep it to 1-2 pages maximum",
					"Use standard fonts (Arial, Times New Roman)",
					"Ensure proper spacing and margins",
				},
			},
			{
				Category: "ats",
				Tips: []string{
					"Include relevant keywords from job description",
					"Avoid graphics and complex formatting",
					"Use standard section headings",
					"Save as PDF for best compatibility",
				},
			},
		},
	})
}

// httpStatus maps pipeline errors to HTTP status codes.
func httpStatus(err error) int {
	var parseErr *parsing.ParseError
	var apiErr *parsing.APICallError
	var inputErr *optimizer.InputError
	var validationErr *schemas.ValidationError

	switch {
	case errors.As(err, &parseErr), errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.Is(err, ingestion.ErrHTTPRequestFailed),
		errors.Is(err, ingestion.ErrContentExtractionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
