package handler

import (
	"log"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"scorecard-engine/internal/catalog"
	"scorecard-engine/internal/engine"
	"scorecard-engine/internal/lead"
	"scorecard-engine/internal/model"
	"scorecard-engine/internal/recommend"
	"scorecard-engine/internal/report"
)

// Server routes all scorecard endpoints. A non-empty bookingBase
// overrides the default demo-booking base URL.
type Server struct {
	bookingBase string
}

func New(bookingBase string) *Server {
	return &Server{bookingBase: bookingBase}
}

func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/health" && method == fasthttp.MethodGet:
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	case path == "/v1/catalog" && method == fasthttp.MethodGet:
		handleCatalog(ctx)
	case path == "/v1/assessments" && method == fasthttp.MethodPost:
		s.handleAssessment(ctx)
	case path == "/v1/assessments/report" && method == fasthttp.MethodPost:
		handleReport(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func handleCatalog(ctx *fasthttp.RequestCtx) {
	ed := catalog.Default()
	if version := string(ctx.QueryArgs().Peek("version")); version != "" {
		known, ok := catalog.Get(version)
		if !ok {
			writeError(ctx, fasthttp.StatusNotFound, "Unknown catalog version: "+version)
			return
		}
		ed = known
	}
	writeJSON(ctx, fasthttp.StatusOK, catalog.View(ed))
}

func (s *Server) handleAssessment(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}

	resp := assess(req)
	resp.AssessmentResult.BookingURL = report.BookingURL(s.bookingBase, req.Lead, resp.AssessmentResult.Score.OverallScore)
	resp.AssessmentResult.ReportFilename = report.Filename(req.Lead.Company)

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func handleReport(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}

	resp := assess(req)
	artifact, err := report.Generate(req.Lead, resp.AssessmentResult.Score, resp.AssessmentResult.Recommendations, time.Now().UTC())
	if err != nil {
		// Terminal but non-fatal: logged, never retried, the caller may
		// trigger the download again.
		log.Printf("Report generation failed for %s: %v", req.Lead.Company, err)
		writeError(ctx, fasthttp.StatusBadGateway, "Report generation failed")
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+report.Filename(req.Lead.Company)+`"`)
	ctx.SetBody(artifact)
}

func decodeRequest(ctx *fasthttp.RequestCtx) (*model.AssessmentRequest, bool) {
	var req model.AssessmentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}

	if errs := lead.Validate(req.Lead); len(errs) > 0 {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, model.ValidationErrorResponse{
			Status:  fasthttp.StatusUnprocessableEntity,
			Message: "Invalid lead information",
			Fields:  errs,
		})
		return nil, false
	}

	return &req, true
}

// assess runs the engine and degrades to the neutral fallback result if it
// panics. The user-visible flow never dead-ends on an engine failure.
func assess(req *model.AssessmentRequest) (resp *model.AssessmentResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Engine failure, serving fallback result: %v", r)
			resp = fallbackResponse()
		}
	}()
	return engine.Process(req)
}

func fallbackResponse() *model.AssessmentResponse {
	score, recs := recommend.Fallback()
	now := time.Now().UTC().Format(time.RFC3339)

	return &model.AssessmentResponse{
		AssessmentMetadata: model.AssessmentMetadata{
			AssessmentID:          uuid.New().String(),
			CatalogVersion:        catalog.Default().Version,
			AssessmentStartedAt:   now,
			AssessmentCompletedAt: now,
			AssessmentOutcome:     model.OutcomeDegraded,
		},
		AssessmentResult: model.AssessmentResult{
			Score:           score,
			Recommendations: recs,
			Messages: []model.AssessmentMessage{{
				Level:   model.LevelWarning,
				Code:    "ENGINE_FAILURE",
				Message: "Scoring failed; a neutral default result was substituted",
			}},
		},
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		log.Printf("Response encoding failed: %v", err)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
