// Package httpapi exposes the planner over HTTP with echo.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"rental-planner/internal/advisor"
	"rental-planner/internal/app"
	"rental-planner/internal/catalog"
	"rental-planner/internal/seating"
)

const defaultUsageDays = 7

// Handler serves the planner endpoints.
type Handler struct {
	app *app.App
}

// NewHandler creates a Handler backed by a.
func NewHandler(a *app.App) *Handler {
	return &Handler{app: a}
}

// Health reports that the service is up.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// ListCatalog returns the inventory, optionally filtered by ?category=.
func (h *Handler) ListCatalog(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": catalog.ByCategory(c.QueryParam("category"))})
}

// GetCatalogItem returns a single item by id.
func (h *Handler) GetCatalogItem(c echo.Context) error {
	item, ok := catalog.Find(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) ListLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": catalog.Locations()})
}

func (h *Handler) ListStyles(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": seating.Styles(), "default": seating.DefaultStyle})
}

type planResponse struct {
	seating.Plan
	ExtraTables int                  `json:"extra_tables"`
	Layout      []seating.TableGlyph `json:"layout"`
}

// GetSeatingPlan computes a plan from ?guests= and ?style=. Missing or
// non-numeric guest counts are treated as zero.
func (h *Handler) GetSeatingPlan(c echo.Context) error {
	guests := seating.DefaultGuestCount
	if raw, ok := c.QueryParams()["guests"]; ok && len(raw) > 0 {
		guests = seating.ParseGuestCount(raw[0])
	}
	plan := h.app.PlanSeating(guests, c.QueryParam("style"))
	return c.JSON(http.StatusOK, planResponse{
		Plan:        plan,
		ExtraTables: plan.ExtraTables(),
		Layout:      plan.Layout(),
	})
}

type adviceRequest struct {
	Description string `json:"description"`
	GuestCount  int    `json:"guest_count"`
	Location    string `json:"location"`
	TableStyle  string `json:"table_style"`
}

// RequestAdvice generates event advice for the posted description.
func (h *Handler) RequestAdvice(c echo.Context) error {
	var req adviceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "description is required"})
	}

	location := ""
	if strings.TrimSpace(req.Location) != "" {
		canonical, ok := catalog.NormalizeLocation(req.Location)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "location is not in our service area"})
		}
		location = canonical
	}

	advice, err := h.app.GenerateAdvice(c.Request().Context(), app.AdviceInput{
		Description: req.Description,
		GuestCount:  req.GuestCount,
		Location:    location,
		TableStyle:  req.TableStyle,
		Source:      "http",
	})
	if err != nil {
		return adviceError(c, err)
	}
	return c.JSON(http.StatusOK, advice)
}

func adviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": "advice request timed out, please try again"})
	case errors.Is(err, advisor.ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, advisor.ErrAdviceGenerationFailed):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not generate advice, please try again"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// GetUsage reports token usage for ?days= (default 7).
func (h *Handler) GetUsage(c echo.Context) error {
	days := defaultUsageDays
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "days must be a positive integer"})
		}
		days = n
	}

	report, err := h.app.Usage(days)
	if err != nil {
		c.Logger().Errorf("usage report failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load usage"})
	}
	return c.JSON(http.StatusOK, report)
}
