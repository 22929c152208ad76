package server

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/marketwise/savings-calculator/internal/calculation"
	"github.com/marketwise/savings-calculator/internal/domain"
)

const contentTypeJSON = "application/json; charset=utf-8"

// errorResponse is the uniform error envelope for every non-2xx answer.
type errorResponse struct {
	Error   bool     `json:"error"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCalculate(ctx *fasthttp.RequestCtx) {
	var raw domain.RawInput
	if err := json.Unmarshal(ctx.PostBody(), &raw); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := s.engine.Calculate(ctx, raw)
	if err != nil {
		var verr *calculation.ValidationError
		if errors.As(err, &verr) {
			writeJSON(ctx, fasthttp.StatusUnprocessableEntity, errorResponse{
				Error:   true,
				Message: verr.Error(),
				Errors:  verr.Problems,
			})
			return
		}
		s.logger.Error("calculation failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "calculation failed")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, result)
}

// leadRequest is the lead submission payload. Input is optional; when present
// the calculation is rerun so the stored lead carries a trusted result rather
// than client-supplied numbers.
type leadRequest struct {
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Phone   string           `json:"phone"`
	Company string           `json:"company"`
	Input   *domain.RawInput `json:"input"`
}

func (s *Server) handleLead(ctx *fasthttp.RequestCtx) {
	var req leadRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var problems []string
	if req.Name == "" {
		problems = append(problems, "name is required")
	}
	if req.Email == "" {
		problems = append(problems, "email is required")
	}
	if len(problems) > 0 {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, errorResponse{
			Error:   true,
			Message: "invalid lead submission",
			Errors:  problems,
		})
		return
	}

	lead := domain.Lead{
		ID:          s.newID(),
		SubmittedAt: s.now().UTC(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
	}

	if req.Input != nil {
		result, err := s.engine.Calculate(ctx, *req.Input)
		if err != nil {
			var verr *calculation.ValidationError
			if errors.As(err, &verr) {
				writeJSON(ctx, fasthttp.StatusUnprocessableEntity, errorResponse{
					Error:   true,
					Message: verr.Error(),
					Errors:  verr.Problems,
				})
				return
			}
			s.logger.Error("lead calculation failed", zap.Error(err))
			writeError(ctx, fasthttp.StatusInternalServerError, "calculation failed")
			return
		}
		lead.Result = result
	}

	if err := s.leads.Dispatch(ctx, lead); err != nil {
		s.logger.Error("lead dispatch failed", zap.Error(err), zap.String("lead_id", lead.ID))
		writeError(ctx, fasthttp.StatusInternalServerError, "lead submission failed")
		return
	}

	writeJSON(ctx, fasthttp.StatusAccepted, map[string]string{
		"id":           lead.ID,
		"submitted_at": lead.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, payload any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType(contentTypeJSON)
	data, err := json.Marshal(payload)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":true,"message":"response encoding failed"}`)
		return
	}
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, errorResponse{Error: true, Message: message})
}
