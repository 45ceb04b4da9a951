package report

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	httperr "github.com/stockroom-lab/stockroom/internal/core/errors"
	"github.com/stockroom-lab/stockroom/internal/core/reporting"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all report API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	reports := r.Group("/v1/reports")
	reports.GET("/summary", s.HandleSummary)
	reports.GET("/trend", s.HandleTrend)
	reports.GET("/performance", s.HandlePerformance)
	reports.GET("/alerts", s.HandleAlerts)
	reports.GET("/export", s.HandleExport)

	r.GET("/v1/charts", s.HandleChart)
	r.GET("/v1/dashboard", s.HandleDashboard)
}

// HandleSummary handles GET /v1/reports/summary?period=daily|weekly|monthly|annual
func (s *Service) HandleSummary(c *gin.Context) {
	kind, ok := s.bindPeriod(c)
	if !ok {
		return
	}

	rows, err := s.GetSummary(c.Request.Context(), kind)
	if err != nil {
		writeReportError(c, err, "Failed to build sales summary")
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Period: kind, Rows: rows})
}

// HandleTrend handles GET /v1/reports/trend
func (s *Service) HandleTrend(c *gin.Context) {
	trend, err := s.GetTrendReport(c.Request.Context())
	if err != nil {
		writeReportError(c, err, "Failed to build sales trend")
		return
	}

	c.JSON(http.StatusOK, trend)
}

// HandlePerformance handles GET /v1/reports/performance
func (s *Service) HandlePerformance(c *gin.Context) {
	perf, err := s.GetPerformance(c.Request.Context())
	if err != nil {
		writeReportError(c, err, "Failed to build performance report")
		return
	}

	top, bottom := s.RankPerformers(perf)
	c.JSON(http.StatusOK, PerformanceResponse{Items: perf, Top: top, Bottom: bottom})
}

// HandleAlerts handles GET /v1/reports/alerts
func (s *Service) HandleAlerts(c *gin.Context) {
	alerts, err := s.GetAlerts(c.Request.Context())
	if err != nil {
		writeReportError(c, err, "Failed to evaluate alerts")
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// HandleExport handles GET /v1/reports/export?period=&format=csv
func (s *Service) HandleExport(c *gin.Context) {
	kind, ok := s.bindPeriod(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", ExportFormatCSV)
	if format != ExportFormatCSV {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpUnsupportedFormat,
			Message:   "Unsupported export format",
			Details:   format,
		})
		return
	}

	// Buffer so a failed read still produces a JSON error instead of a truncated file.
	var buf bytes.Buffer
	if err := s.ExportSummaryCSV(c.Request.Context(), &buf, kind); err != nil {
		writeReportError(c, err, "Failed to export report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ExportFilename(kind)+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// HandleChart handles GET /v1/charts?type=sales_trend|inventory|performance
func (s *Service) HandleChart(c *gin.Context) {
	chartType, err := ParseChartType(c.Query("type"))
	if err != nil {
		writeReportError(c, err, "Unknown chart type")
		return
	}

	chart, err := s.GetChart(c.Request.Context(), chartType)
	if err != nil {
		writeReportError(c, err, "Failed to build chart")
		return
	}

	c.JSON(http.StatusOK, chart)
}

// HandleDashboard handles GET /v1/dashboard
func (s *Service) HandleDashboard(c *gin.Context) {
	dash, err := s.GetDashboard(c.Request.Context())
	if err != nil {
		writeReportError(c, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dash)
}

func (s *Service) bindPeriod(c *gin.Context) (reporting.BucketKind, bool) {
	kind, err := s.ResolveBucketKind(c.Query("period"))
	if err != nil {
		writeReportError(c, err, "Invalid report period")
		return "", false
	}
	return kind, true
}

func writeReportError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, reporting.ErrInvalidBucketKind):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidPeriodError,
			Message:   message,
			Details:   err.Error(),
		})
	case errors.Is(err, ErrUnknownChart):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   message,
			Details:   err.Error(),
		})
	default:
		slog.Error("[Report] Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}
