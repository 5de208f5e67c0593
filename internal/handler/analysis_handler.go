package handler

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/razorspoint/timeline-backend-go/internal/models"
	"github.com/razorspoint/timeline-backend-go/internal/service"
	"github.com/razorspoint/timeline-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for analysis runs
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// analyzeRequest is the POST /api/v1/analysis body: run parameters
// plus the raw timeline export document.
type analyzeRequest struct {
	TargetYear int                   `json:"target_year" binding:"required"`
	CostPerKm  float64               `json:"cost_per_km"`
	Profile    string                `json:"profile"`
	Timeline   models.TimelineExport `json:"timeline"`
}

// Create handles POST /api/v1/analysis. The export document comes
// either inline in a JSON body or as a multipart file upload with the
// run parameters in form fields.
func (h *AnalysisHandler) Create(c *gin.Context) {
	var req analyzeRequest
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := bindMultipart(c, &req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		// the document not being valid JSON surfaces here, before
		// any analysis starts
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	report, err := h.analysisService.Run(c.Request.Context(), req.Timeline, service.RunRequest{
		TargetYear: req.TargetYear,
		CostPerKm:  req.CostPerKm,
		Profile:    req.Profile,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, report)
}

func bindMultipart(c *gin.Context, req *analyzeRequest) error {
	year, err := strconv.Atoi(c.PostForm("target_year"))
	if err != nil {
		return fmt.Errorf("invalid or missing target_year field")
	}
	req.TargetYear = year

	if v := c.PostForm("cost_per_km"); v != "" {
		req.CostPerKm, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid cost_per_km field")
		}
	}
	req.Profile = c.PostForm("profile")

	fh, err := c.FormFile("file")
	if err != nil {
		return fmt.Errorf("missing timeline file upload")
	}
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to read timeline file upload")
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&req.Timeline); err != nil {
		return fmt.Errorf("timeline file is not valid JSON: %v", err)
	}
	return nil
}

// List handles GET /api/v1/analysis
func (h *AnalysisHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		response.BadRequest(c, "Invalid offset parameter")
		return
	}

	reports, err := h.analysisService.ListReports(limit, offset)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  reports,
		"count": len(reports),
	})
}

// Get handles GET /api/v1/analysis/:id
func (h *AnalysisHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	report, err := h.analysisService.GetReport(id)
	if err != nil {
		response.NotFound(c, "Report not found")
		return
	}

	response.Success(c, report)
}

// ExportCSV handles GET /api/v1/analysis/:id/export and streams the
// report's visit list as CSV.
func (h *AnalysisHandler) ExportCSV(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid report ID")
		return
	}

	report, err := h.analysisService.GetReport(id)
	if err != nil {
		response.NotFound(c, "Report not found")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="visits_%d_%d.csv"`, report.TargetYear, report.ID))

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"date", "location", "address", "travel_reason", "distance_km", "cost"})
	for _, v := range report.Visits {
		w.Write([]string{
			v.Date,
			v.LocationName,
			v.Address,
			v.TravelReason,
			strconv.FormatFloat(v.DistanceKm, 'f', 3, 64),
			strconv.FormatFloat(v.Cost, 'f', 2, 64),
		})
	}
	w.Flush()
}
