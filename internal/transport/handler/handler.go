package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/trunov/rawhub/internal/apperr"
	"github.com/trunov/rawhub/internal/config"
	"github.com/trunov/rawhub/internal/converter"
)

const (
	ServiceName    = "rawhub"
	ServiceVersion = "1.1.0"
)

type Pipeline interface {
	Convert(ctx context.Context, rawFileURL, uploadURL string, preset converter.Preset) (converter.Result, error)
}

type Handler struct {
	pipeline  Pipeline
	cfg       *config.Config
	validator *validator.Validate
}

func New(pipeline Pipeline, cfg *config.Config) *Handler {
	return &Handler{
		pipeline:  pipeline,
		cfg:       cfg,
		validator: validator.New(),
	}
}

func (h *Handler) GenerateThumbnail(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, converter.Thumbnail)
}

func (h *Handler) GenerateHighQualityJPEG(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, converter.HighQuality)
}

func (h *Handler) GenerateBaselineJPEG(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, converter.Baseline)
}

func (h *Handler) GenerateWebPPreview(w http.ResponseWriter, r *http.Request) {
	h.convert(w, r, converter.WebPPreview)
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request, preset converter.Preset) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Server.MaxRequestBodyKB<<10)

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBodyError(w, err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Missing rawFileUrl or uploadUrl", "")
		return
	}

	// Requests run to completion even if the caller disconnects, so the
	// pipeline is deliberately not tied to the request context.
	ctx := context.Background()

	res, err := h.pipeline.Convert(ctx, req.RawFileURL, req.UploadURL, preset)
	if err != nil {
		h.writeConvertError(w, preset, err)
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		Success:    true,
		StorageID:  res.StorageID,
		Dimensions: fmt.Sprintf("%dx%d", res.Width, res.Height),
		FileSize:   res.FileSize,
		Type:       res.Preset,
	})
}

func (h *Handler) writeConvertError(w http.ResponseWriter, preset converter.Preset, err error) {
	kind := apperr.KindOf(err)
	status := kind.HTTPStatus()

	label := "RAW to JPEG conversion failed"
	if kind == apperr.Network {
		label = "Network error during processing"
	}

	log.Error().Err(err).Str("preset", preset.Name).Str("kind", kind.String()).Msg("conversion failed")
	if status >= http.StatusInternalServerError {
		sentry.CaptureException(err)
	}

	writeJSONError(w, status, label, err.Error())
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Service:  ServiceName,
		Version:  ServiceVersion,
		Features: []string{"dcraw", "imaging", "webp", "thumbnail-optimization"},
	})
}
