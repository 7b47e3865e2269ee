package http

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/windfall/lingua_service/internal/errors"
	"github.com/windfall/lingua_service/internal/service"
	"github.com/windfall/lingua_service/pkg/models"
	"github.com/windfall/lingua_service/pkg/response"
)

// PreflightAllowHeaders is advertised on every OPTIONS response.
const PreflightAllowHeaders = "authorization, x-client-info, apikey, content-type"

// FunctionsHandler serves the analysis functions under /functions/v1.
type FunctionsHandler struct {
	log           zerolog.Logger
	grammar       *service.GrammarService
	pronunciation *service.PronunciationService
	lookup        *service.LookupService
	maxBodyBytes  int64
}

// NewFunctionsHandler creates a new FunctionsHandler.
func NewFunctionsHandler(
	log zerolog.Logger,
	grammar *service.GrammarService,
	pronunciation *service.PronunciationService,
	lookup *service.LookupService,
	maxBodyBytes int64,
) *FunctionsHandler {
	return &FunctionsHandler{
		log:           log,
		grammar:       grammar,
		pronunciation: pronunciation,
		lookup:        lookup,
		maxBodyBytes:  maxBodyBytes,
	}
}

// CheckGrammar handles POST /functions/v1/check-grammar
func (h *FunctionsHandler) CheckGrammar(w http.ResponseWriter, r *http.Request) {
	var req models.GrammarCheckRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.grammar.Check(r.Context(), req.Text)
	if err != nil {
		h.handleError(w, models.FunctionCheckGrammar, err)
		return
	}

	response.OK(w, result)
}

// AnalyzePronunciation handles POST /functions/v1/analyze-pronunciation
func (h *FunctionsHandler) AnalyzePronunciation(w http.ResponseWriter, r *http.Request) {
	var req models.PronunciationRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.pronunciation.Analyze(r.Context(), req.Audio)
	if err != nil {
		h.handleError(w, models.FunctionAnalyzePronunciation, err)
		return
	}

	response.OK(w, result)
}

// LookupWord handles POST /functions/v1/lookup-word
func (h *FunctionsHandler) LookupWord(w http.ResponseWriter, r *http.Request) {
	var req models.WordLookupRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.lookup.Lookup(r.Context(), req.Word)
	if err != nil {
		h.handleError(w, models.FunctionLookupWord, err)
		return
	}

	response.OK(w, result)
}

// Preflight handles OPTIONS on every function route.
func (h *FunctionsHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", PreflightAllowHeaders)
	response.Empty(w, http.StatusOK)
}

// decode reads a size-limited JSON body into v. An empty body leaves v zeroed
// so the service reports the missing field.
func (h *FunctionsHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	err := json.NewDecoder(body).Decode(v)
	if err == nil || stderrors.Is(err, io.EOF) {
		return true
	}

	var maxErr *http.MaxBytesError
	if stderrors.As(err, &maxErr) {
		response.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}

	h.log.Debug().Err(err).Str("path", r.URL.Path).Msg("invalid request body")
	response.BadRequest(w, "invalid request body")
	return false
}

func (h *FunctionsHandler) handleError(w http.ResponseWriter, function string, err error) {
	if appErr, ok := errors.As(err); ok {
		event := h.log.Warn()
		if appErr.HTTPStatus() >= http.StatusInternalServerError {
			event = h.log.Error()
		}
		event.Err(appErr.Err).
			Str("function", function).
			Str("code", string(appErr.Code)).
			Msg(appErr.Message)
		response.Error(w, appErr.HTTPStatus(), appErr.Message)
		return
	}
	h.log.Error().Err(err).Str("function", function).Msg("Internal server error")
	response.InternalError(w, "internal server error")
}
