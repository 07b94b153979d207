package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/pharmacy-api/internal/application/service"
	"github.com/sangkips/pharmacy-api/internal/presentation/http/dto/request"
	"github.com/sangkips/pharmacy-api/internal/presentation/http/dto/response"
	"github.com/sangkips/pharmacy-api/pkg/export"
	"github.com/sangkips/pharmacy-api/pkg/pagination"
)

// ReportHandler handles reporting, search, export and retention requests
type ReportHandler struct {
	reportService    *service.ReportService
	retentionService *service.RetentionService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, retentionService *service.RetentionService) *ReportHandler {
	return &ReportHandler{
		reportService:    reportService,
		retentionService: retentionService,
	}
}

// Full returns the complete sales report payload
// @Summary Sales report
// @Description Daily, weekly and monthly totals, best sellers, expiry alerts and profit
// @Tags reports
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /reports [get]
func (h *ReportHandler) Full(c *gin.Context) {
	report, err := h.reportService.FullReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated", report)
}

// Overview returns the dashboard payload
func (h *ReportHandler) Overview(c *gin.Context) {
	overview, err := h.reportService.GetOverview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Overview generated", overview)
}

// BestSellers ranks medicines by total quantity sold
func (h *ReportHandler) BestSellers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	sellers, err := h.reportService.BestSellers(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Best sellers retrieved", sellers)
}

// Profit returns the all-time profit summary
func (h *ReportHandler) Profit(c *gin.Context) {
	summary, err := h.reportService.ProfitSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profit summary generated", summary)
}

// Search filters sales by id or name plus an inclusive date range
// @Summary Search sales
// @Tags reports
// @Produce json
// @Param q query string false "Sale id (all digits) or medicine/customer name"
// @Param from_date query string false "YYYY-MM-DD"
// @Param to_date query string false "YYYY-MM-DD"
// @Success 200 {object} response.APIResponse
// @Router /sales/search [get]
func (h *ReportHandler) Search(c *gin.Context) {
	var req request.SaleSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.reportService.SearchSales(c.Request.Context(), &service.SaleSearchInput{
		Query:    req.Query,
		FromDate: parseDateParam(req.FromDate),
		ToDate:   parseDateParam(req.ToDate),
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Search completed", result)
}

// Export streams the filtered sales as an xlsx attachment
func (h *ReportHandler) Export(c *gin.Context) {
	var req request.SaleSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	sales, err := h.reportService.ExportSales(c.Request.Context(), &service.SaleSearchInput{
		Query:    req.Query,
		FromDate: parseDateParam(req.FromDate),
		ToDate:   parseDateParam(req.ToDate),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	workbook, err := export.SalesWorkbook(sales)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer workbook.Close()

	filename := export.SalesFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		// Headers are already out; nothing sensible left to send
		c.Status(http.StatusInternalServerError)
	}
}

// PreviewReset reports what a retention reset would delete
func (h *ReportHandler) PreviewReset(c *gin.Context) {
	period := c.Query("period")

	preview, err := h.retentionService.PreviewReset(c.Request.Context(), period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reset preview generated", preview)
}

// ApplyReset deletes sales older than the period cutoff
// @Summary Reset sales history
// @Tags reports
// @Accept json
// @Produce json
// @Param request body request.ResetSalesRequest true "Reset period"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales/reset [post]
func (h *ReportHandler) ApplyReset(c *gin.Context) {
	var req request.ResetSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if !req.Confirm {
		response.BadRequest(c, "Reset requires confirmation")
		return
	}

	deleted, err := h.retentionService.ApplyReset(c.Request.Context(), req.Period)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales history reset", gin.H{
		"period":  req.Period,
		"deleted": deleted,
	})
}
