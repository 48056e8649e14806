package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"atscan-backend/internal/shared/server/middleware"
	"atscan-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the reports service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports", h.createReport)
	rg.GET("/reports", h.listReports)
	rg.GET("/reports/:id", h.getReport)
}

type createReportRequest struct {
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
	Fields
}

// reportResponse flattens the report and adds the dashboard's score band.
type reportResponse struct {
	Report
	Band string `json:"band"`
}

func toResponse(report Report) reportResponse {
	return reportResponse{Report: report, Band: Band(report.MatchScore)}
}

func (h *Handler) createReport(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid report payload", nil)
		return
	}

	report, err := h.Svc.Create(c.Request.Context(), Report{
		UserID:         userID,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		JobDescription: req.JobDescription,
		Fields:         req.Fields,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrLimitReached):
			respond.Error(c, http.StatusTooManyRequests, "limit_reached", "You've reached your report limit. Upgrade your plan to continue.", []map[string]string{
				{"field": "usage", "issue": "limit_reached"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save report", nil)
		}
		return
	}

	c.Set("reportId", report.ID)
	respond.JSON(c, http.StatusCreated, toResponse(report))
}

func (h *Handler) listReports(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch reports", nil)
		return
	}

	out := make([]reportResponse, 0, len(list))
	for _, report := range list {
		out = append(out, toResponse(report))
	}
	respond.JSON(c, http.StatusOK, gin.H{"reports": out})
}

func (h *Handler) getReport(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	reportID := c.Param("id")
	if reportID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "report id is required", nil)
		return
	}

	report, err := h.Svc.Get(c.Request.Context(), userID, reportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch report", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(report))
}
