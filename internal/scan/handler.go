package scan

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"atscan-backend/internal/shared/metrics"
	"atscan-backend/internal/shared/server/middleware"
	"atscan-backend/internal/shared/server/respond"
	"atscan-backend/internal/shared/storage/object"
	"atscan-backend/internal/shared/telemetry"
	"atscan-backend/internal/usage"
)

// Handler exposes the scan endpoint.
type Handler struct {
	Pipeline *Pipeline
	Usage    *usage.Service
	Store    object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(pipeline *Pipeline, usageSvc *usage.Service, store object.ObjectStore) *Handler {
	return &Handler{Pipeline: pipeline, Usage: usageSvc, Store: store}
}

// RegisterRoutes attaches the scan route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scan-resume", h.scanResume)
}

// scanError writes the scan endpoint's flat error body. The rest of the API
// uses the enveloped respond.Error shape; this endpoint keeps the flat one
// its clients already parse.
func scanError(c *gin.Context, status int, message, details string) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"request_id": c.GetString("requestId"),
	}
	if userID := middleware.UserIDFromContext(c); userID != "" {
		fields["user_id"] = userID
	}
	if details != "" {
		fields["details"] = details
	}
	telemetry.Error("scan.error", fields)

	body := gin.H{"error": message}
	if details != "" {
		body["details"] = details
	}
	c.AbortWithStatusJSON(status, body)
}

func (h *Handler) scanResume(c *gin.Context) {
	metrics.IncScanStarted()
	started := time.Now()
	userID := middleware.UserIDFromContext(c)

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		metrics.IncScanRejected()
		scanError(c, http.StatusBadRequest, "Resume file is required", "")
		return
	}
	defer file.Close()

	resumeBytes, err := io.ReadAll(file)
	if err != nil || len(resumeBytes) == 0 {
		metrics.IncScanRejected()
		scanError(c, http.StatusBadRequest, "Resume file is required", "")
		return
	}

	jobDescription := strings.TrimSpace(c.PostForm("jobDescription"))
	if jobDescription == "" {
		metrics.IncScanRejected()
		scanError(c, http.StatusBadRequest, "Job description is required", "")
		return
	}

	years := 0.0
	if raw := strings.TrimSpace(c.PostForm("yearsOfExperience")); raw != "" {
		years, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			metrics.IncScanRejected()
			scanError(c, http.StatusBadRequest, "Years of experience must be a number", "")
			return
		}
	}

	// Consume up-front so two concurrent scans on the last remaining slot
	// cannot both reach the generator; failed scans refund below.
	if h.Usage != nil {
		if _, err := h.Usage.Consume(c.Request.Context(), userID, 1); err != nil {
			if errors.Is(err, usage.ErrLimitReached) {
				metrics.IncScanRejected()
				respond.Error(c, http.StatusTooManyRequests, "limit_reached", "You've reached your scan limit. Upgrade your plan to continue.", []map[string]string{
					{"field": "usage", "issue": "limit_reached"},
				})
				return
			}
			metrics.IncScanFailed()
			scanError(c, http.StatusInternalServerError, "Failed to scan resume", err.Error())
			return
		}
	}

	fields, err := h.Pipeline.Scan(c.Request.Context(), Input{
		ResumeBytes:       resumeBytes,
		MimeType:          header.Header.Get("Content-Type"),
		FileName:          header.Filename,
		JobDescription:    jobDescription,
		YearsOfExperience: years,
	})
	if err != nil {
		h.refund(c, userID)
		if errors.Is(err, ErrInvalidInput) {
			metrics.IncScanRejected()
			scanError(c, http.StatusBadRequest, "Invalid scan request", err.Error())
			return
		}
		metrics.IncScanFailed()
		scanError(c, http.StatusInternalServerError, "Failed to scan resume", err.Error())
		return
	}

	h.archive(c, userID, header.Filename, resumeBytes, fields.ResumeText)

	metrics.IncScanCompleted()
	metrics.ObserveScanDurationMs(float64(time.Since(started).Milliseconds()))
	respond.JSON(c, http.StatusOK, fields)
}

// refund gives back the scan consumed up-front when the pipeline failed.
func (h *Handler) refund(c *gin.Context, userID string) {
	if h.Usage == nil {
		return
	}
	if _, err := h.Usage.Refund(c.Request.Context(), userID, 1); err != nil {
		telemetry.Error("scan.usage_refund_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

// archive keeps a copy of the upload and its extracted text. Failures are
// logged and never fail the scan.
func (h *Handler) archive(c *gin.Context, userID, fileName string, resumeBytes []byte, resumeText string) {
	if h.Store == nil {
		return
	}
	if fileName == "" {
		fileName = "resume.pdf"
	}
	ctx := c.Request.Context()
	if _, _, _, err := h.Store.Save(ctx, userID, fileName, bytes.NewReader(resumeBytes)); err != nil {
		telemetry.Error("scan.archive_failed", map[string]any{"user_id": userID, "object": fileName, "error": err.Error()})
	}
	if _, _, _, err := h.Store.Save(ctx, userID, fileName+".txt", strings.NewReader(resumeText)); err != nil {
		telemetry.Error("scan.archive_failed", map[string]any{"user_id": userID, "object": fileName + ".txt", "error": err.Error()})
	}
}
