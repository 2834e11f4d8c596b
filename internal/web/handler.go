package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"oldphonepad/internal/app"
	"oldphonepad/internal/config"
	"oldphonepad/internal/metrics"
	"oldphonepad/internal/repository"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PadHandler struct {
	decoder  *app.Decoder
	repo     repository.History
	metrics  *metrics.Decoder
	logger   *zap.Logger
	maxInput int
	maxBody  int64
}

const defaultMaxBody = 1 << 20

func NewPadHandler(repo repository.History, m *metrics.Decoder, cfg *config.Config, logger *zap.Logger) *PadHandler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBody
	}
	return &PadHandler{
		decoder:  app.NewDecoder(app.DefaultKeypad()),
		repo:     repo,
		metrics:  m,
		logger:   logger,
		maxInput: cfg.MaxInputLength,
		maxBody:  maxBody,
	}
}

// DecodingResponse is the envelope of a single decoding.
type DecodingResponse struct {
	Result *app.Decoding `json:"result"`
}

// DecodingListResponse is the envelope of a list of decodings.
type DecodingListResponse struct {
	Result []*app.Decoding `json:"result"`
}

// Decode godoc
// @Summary Decode key presses
// @Description Decode an old phone keypad key sequence terminated by '#'
// @Tags decode
// @Accept json
// @Produce json
// @Param request body app.DecodeRequest true "Key presses"
// @Success 	 200 {object} DecodingResponse "decoded text"
// @Failure 	 400  {object} ErrorResponse "missing input, send marker or input too long"
// @Failure 	 413  {object} ErrorResponse "request body too large"
// @Failure 	 500  {object} ErrorResponse "internal server error"
// @Router /decode [post]
func (h *PadHandler) Decode(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)

	var dr app.DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&dr); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.metrics.Fail(metrics.ResultRejected)
			writeError(w, fmt.Sprintf("request body larger than %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Warn("invalid request body", zap.Error(err))
		writeError(w, "bad decode request", http.StatusBadRequest)
		return
	}
	if dr.Input == nil {
		h.metrics.Fail(metrics.ResultMissing)
		errParser(w, h.logger, app.ErrMissingInput, "input is required")
		return
	}
	// после '#' ввод отбрасывается, поэтому считаем только до него
	if n := strings.IndexByte(*dr.Input, app.SendKey); n > h.maxInput {
		h.metrics.Fail(metrics.ResultRejected)
		writeError(w, fmt.Sprintf("input longer than %d bytes", h.maxInput), http.StatusBadRequest)
		return
	}

	res, err := h.decoder.Decode(*dr.Input)
	if err != nil {
		h.metrics.Fail(metrics.ResultMissingSend)
		errParser(w, h.logger, err, "send marker '#' not found")
		return
	}
	h.metrics.Observe(res)

	d, err := h.repo.Save(*dr.Input, res)
	if err != nil {
		errParser(w, h.logger, err, "save failed")
		return
	}
	h.logger.Info("input decoded", zap.String("id", d.ID.String()), zap.Int("presses", d.Presses))
	writeJson(w, DecodingResponse{Result: d})
}

// GetDecoding godoc
// @Summary      Decoding by id
// @Description  Get a previously decoded input
// @Tags         decode
// @Produce      json
// @Param        id  path  string  true  "Decoding ID"
// @Success      200  {object}  DecodingResponse
// @Failure 	 400  {object} ErrorResponse "invalid id"
// @Failure 	 404  {object} ErrorResponse "not found"
// @Failure 	 500  {object} ErrorResponse "internal server error"
// @Router       /decode/{id} [get]
func (h *PadHandler) GetDecoding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d, err := h.repo.Load(id)
	if err != nil {
		errParser(w, h.logger, err, "decoding load failed")
		return
	}
	writeJson(w, DecodingResponse{Result: d})
}

// History godoc
// @Summary      Recent decodings
// @Description  List recent decodings, newest first
// @Tags         decode
// @Produce      json
// @Param        limit  query  int  false  "Max number of decodings"
// @Success      200  {object}  DecodingListResponse
// @Failure 	 400  {object} ErrorResponse "invalid limit"
// @Failure 	 500  {object} ErrorResponse "internal server error"
// @Router       /history [get]
func (h *PadHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			h.logger.Warn("invalid limit", zap.String("limit", s))
			writeError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	list, err := h.repo.Recent(limit)
	if err != nil {
		errParser(w, h.logger, err, "history load failed")
		return
	}
	h.logger.Debug("history fetched", zap.Int("count", len(list)))
	writeJson(w, DecodingListResponse{Result: list})
}

func errParser(w http.ResponseWriter, logger *zap.Logger, err error, msg string) {
	logger.Debug(msg, zap.Error(err))
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		writeError(w, msg, http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, msg, http.StatusNotFound)
	case errors.Is(err, app.ErrBusinessLogic):
		writeError(w, msg, http.StatusServiceUnavailable)
	default:
		writeError(w, msg, http.StatusInternalServerError)
	}
}

func writeJson(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
