// Package server exposes the stylist pipeline over HTTP: a multipart style
// endpoint, the ranked model listing, and a health probe.
package server

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"outfitai/internal/models"
	"outfitai/internal/stylist"
)

// Styler is the pipeline entry point the handlers call.
type Styler interface {
	Style(ctx context.Context, sess stylist.Session, img stylist.Image) (*stylist.Result, error)
}

// ModelSource lists the model identifiers the user may pick.
type ModelSource interface {
	Available(ctx context.Context) []string
}

type Handler struct {
	styler        Styler
	catalog       ModelSource
	defaultModel  string
	maxImageBytes int64
	log           zerolog.Logger
}

func NewHandler(styler Styler, catalog ModelSource, defaultModel string, maxImageBytes int64, log zerolog.Logger) *Handler {
	return &Handler{
		styler:        styler,
		catalog:       catalog,
		defaultModel:  defaultModel,
		maxImageBytes: maxImageBytes,
		log:           log,
	}
}

// Routes mounts all endpoints on the router.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/health", h.Health)
	v1 := r.Group("/api/v1")
	v1.GET("/models", h.Models)
	v1.POST("/style", h.StyleOutfit)
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (h *Handler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsResponse{Models: h.catalog.Available(c.Request.Context())})
}

// StyleOutfit accepts a multipart form with an "image" file plus the profile
// and scene fields, runs the two-stage pipeline, and returns the classified
// item with styling advice.
func (h *Handler) StyleOutfit(c *gin.Context) {
	img, ok := h.readImage(c)
	if !ok {
		return
	}

	profile := models.UserProfile{
		Gender:   c.PostForm("gender"),
		SkinTone: c.PostForm("skin_tone"),
		BodyType: c.PostForm("body_type"),
	}
	if err := profile.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	scene := models.SceneContext{
		Occasion: c.PostForm("occasion"),
		Weather:  c.PostForm("weather"),
	}
	if err := scene.Validate(); err != nil {
		badRequest(c, err.Error())
		return
	}

	model := c.PostForm("model")
	if model == "" {
		model = h.defaultModel
	}

	sess := stylist.Session{Model: model, Profile: profile, Scene: scene}
	result, err := h.styler.Style(c.Request.Context(), sess, img)
	if err != nil {
		h.log.Error().Err(err).Str("model", model).Msg("styling pipeline failed")
		if se, ok := stylist.AsStageError(err); ok {
			c.JSON(stageStatus(se.Kind), ErrorResponse{Error: se.UserMessage(), Kind: string(se.Kind)})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "styling failed, please try again"})
		return
	}

	c.JSON(http.StatusOK, StyleResponse{
		Item:    result.Item,
		Summary: result.Item.Summary(),
		Advice:  result.Advice,
	})
}

// readImage pulls the uploaded file out of the form and sniffs its type.
// Only JPEG and PNG are accepted, matching what the vision API supports here.
func (h *Handler) readImage(c *gin.Context) (stylist.Image, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "missing image file (form field 'image')")
		return stylist.Image{}, false
	}
	if file.Size > h.maxImageBytes {
		badRequest(c, "image too large")
		return stylist.Image{}, false
	}

	f, err := file.Open()
	if err != nil {
		badRequest(c, "failed to open uploaded file")
		return stylist.Image{}, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		badRequest(c, "failed to read image")
		return stylist.Image{}, false
	}

	var format string
	switch http.DetectContentType(data) {
	case "image/jpeg":
		format = "jpeg"
	case "image/png":
		format = "png"
	default:
		badRequest(c, "unsupported image type (JPEG or PNG only)")
		return stylist.Image{}, false
	}
	return stylist.Image{Format: format, Data: data}, true
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func stageStatus(kind stylist.FailureKind) int {
	switch kind {
	case stylist.RateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
