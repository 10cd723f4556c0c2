package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the tooth state vocabulary.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the catalogue endpoints on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/tooth-states", h.List)
}

type stateDTO struct {
	State    State  `json:"state"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

// List returns the catalogue, filtered by the search query parameter when
// present.
func (h *Handler) List(c echo.Context) error {
	matches := Search(c.QueryParam("search"))

	out := make([]stateDTO, len(matches))
	for i, e := range matches {
		out[i] = stateDTO{
			State:    e.State,
			Label:    e.Label,
			Category: e.Category,
			Color:    DisplayColor(e.State),
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  out,
		"total": len(out),
	})
}
