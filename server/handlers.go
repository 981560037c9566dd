package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousemazhar/crashboard/dataset"
	"github.com/yousemazhar/crashboard/engine"
	"github.com/yousemazhar/crashboard/query"
)

// Handler contains all HTTP handlers. It holds the identity view over the
// immutable table; per-request filtered views are ephemeral.
type Handler struct {
	view engine.View
}

// NewHandler creates a new handler over a loaded table.
func NewHandler(table *dataset.Table) *Handler {
	return &Handler{view: engine.NewView(table)}
}

// ReportRequest is the body of POST /api/v1/report.
type ReportRequest struct {
	Criteria engine.Criteria      `json:"criteria"`
	Options  engine.ReportOptions `json:"options"`
}

// SearchRequest is the body of POST /api/v1/search.
type SearchRequest struct {
	Text string `json:"text"`
}

// HealthCheck returns service health status.
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "crashboard",
		"records": h.view.Len(),
	})
}

// GenerateReport runs one full report request: filter, summarize, chart.
// An empty filtered subset comes back as a NoData report, not an error.
func (h *Handler) GenerateReport(c *fiber.Ctx) error {
	var req ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	report := engine.BuildReport(h.view, req.Criteria, req.Options)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}

// Search parses free text into criteria. When nothing is detected the
// response says so explicitly; the client must leave its current filters
// untouched in that case.
func (h *Handler) Search(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	result, ok := query.Parse(req.Text)
	if !ok {
		return c.JSON(fiber.Map{
			"success":   true,
			"noFilters": true,
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"noFilters": false,
		"data":      result,
	})
}

// Defaults is the reset call: the full criteria set at its "All" values.
func (h *Handler) Defaults(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    engine.DefaultCriteria(),
	})
}

// Fields returns the dropdown values the filter panel needs.
func (h *Handler) Fields(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"boroughs":     []string{"MANHATTAN", "BROOKLYN", "QUEENS", "BRONX", "STATEN ISLAND"},
			"vehicleTypes": dataset.VehicleCategories(),
		},
	})
}
