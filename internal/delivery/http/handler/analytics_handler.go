package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/aspk74/auto-apply/internal/delivery/http/dto"
	"github.com/aspk74/auto-apply/internal/export"
	"github.com/aspk74/auto-apply/internal/pkg/response"
	"github.com/aspk74/auto-apply/internal/usecase"
)

type AnalyticsHandler struct {
	analytics *usecase.Analytics
}

func NewAnalyticsHandler(analytics *usecase.Analytics) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/analytics")
	grp.Get("/overview", h.GetOverview)
	grp.Get("/status", h.GetStatusBreakdown)
	grp.Get("/sources", h.GetSources)
	grp.Get("/timeline", h.GetTimeline)

	r.Get("/applications", h.ListApplications)
	r.Get("/export.xlsx", h.ExportWorkbook)
}

func (h *AnalyticsHandler) GetOverview(c fiber.Ctx) error {
	overview, err := h.analytics.Overview()
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.OverviewResponse{
		TotalApplications: overview.TotalApplications,
		LastSevenDays:     overview.LastSevenDays,
		ResponseRate:      overview.ResponseRate,
		InterviewRate:     overview.InterviewRate,
	})
}

func (h *AnalyticsHandler) GetStatusBreakdown(c fiber.Ctx) error {
	breakdown, err := h.analytics.StatusBreakdown()
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.StatusBreakdownResponse{
		ByStatus:        breakdown.ByStatus,
		CompanyByStatus: breakdown.CompanyByStatus,
	})
}

func (h *AnalyticsHandler) GetSources(c fiber.Ctx) error {
	sources, err := h.analytics.Sources()
	if err != nil {
		return err
	}
	top := make([]dto.CompanyCountItem, 0, len(sources.TopCompanies))
	for _, it := range sources.TopCompanies {
		top = append(top, dto.CompanyCountItem{Company: it.Company, Count: it.Count})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SourceAnalysisResponse{
		BySource:             sources.BySource,
		ResponseRateBySource: sources.ResponseRateBySource,
		TopCompanies:         top,
	})
}

func (h *AnalyticsHandler) GetTimeline(c fiber.Ctx) error {
	timeline, err := h.analytics.Timeline()
	if err != nil {
		return err
	}
	out := make([]dto.DayCountItem, 0, len(timeline))
	for _, d := range timeline {
		out = append(out, dto.DayCountItem{Date: d.Date, Count: d.Count})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalyticsHandler) ListApplications(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	entries, err := h.analytics.Recent(limit)
	if err != nil {
		return err
	}
	out := make([]dto.ApplicationItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ApplicationItem{
			JobID:            e.JobID,
			Company:          e.Company,
			Title:            e.Title,
			Location:         e.Location,
			Source:           e.Source,
			AppliedAt:        e.AppliedAt.Format(time.RFC3339),
			Status:           e.Status,
			ResponseReceived: e.ResponseReceived,
			Notes:            e.Notes,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalyticsHandler) ExportWorkbook(c fiber.Ctx) error {
	overview, err := h.analytics.Overview()
	if err != nil {
		return err
	}
	entries, err := h.analytics.All()
	if err != nil {
		return err
	}

	data, err := export.Workbook(overview, entries)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("autoapply_export_%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func parseQueryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
