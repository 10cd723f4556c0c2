package visit

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/odonto/odonto/internal/domain/odontogram"
	"github.com/odonto/odonto/internal/platform/auth"
	"github.com/odonto/odonto/pkg/pagination"
)

type Handler struct {
	mgr    *Manager
	charts *odontogram.Service
}

func NewHandler(mgr *Manager, charts *odontogram.Service) *Handler {
	return &Handler{mgr: mgr, charts: charts}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/patients/:patientId/visit", auth.RequireRole("dentist"))
	g.POST("/enter", h.Enter)
	g.POST("/exit", h.Exit)
	g.PUT("/observations", h.Observations)
	g.GET("/view", h.View)
}

func practitionerID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(auth.PractitionerIDFromContext(c.Request().Context()))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid practitioner identity")
	}
	return id, nil
}

func patientID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid patientId")
	}
	return id, nil
}

type enterResponse struct {
	Snapshot *odontogram.Odontogram `json:"snapshot"`
	Editable bool                   `json:"editable"`
}

func (h *Handler) Enter(c echo.Context) error {
	prac, err := practitionerID(c)
	if err != nil {
		return err
	}
	pat, err := patientID(c)
	if err != nil {
		return err
	}

	o, err := h.mgr.Enter(c.Request().Context(), prac, pat)
	if err != nil {
		if errors.Is(err, ErrEnterInProgress) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, enterResponse{Snapshot: o, Editable: !o.Closed})
}

func (h *Handler) Exit(c echo.Context) error {
	prac, err := practitionerID(c)
	if err != nil {
		return err
	}
	pat, err := patientID(c)
	if err != nil {
		return err
	}

	if err := h.mgr.Exit(c.Request().Context(), prac, pat); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

type observationsRequest struct {
	Observations string `json:"observations"`
}

// Observations accepts an edit for debounced persistence. The write lands
// after the autosave delay, not before the response.
func (h *Handler) Observations(c echo.Context) error {
	prac, err := practitionerID(c)
	if err != nil {
		return err
	}
	pat, err := patientID(c)
	if err != nil {
		return err
	}
	var req observationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.mgr.RecordObservations(prac, pat, req.Observations); err != nil {
		if errors.Is(err, ErrNoActiveVisit) || errors.Is(err, ErrNotEditable) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusAccepted)
}

type viewResponse struct {
	Snapshot *odontogram.Odontogram   `json:"snapshot"`
	Editable bool                     `json:"editable"`
	History  []*odontogram.Odontogram `json:"history"`
}

// View resolves which snapshot to display: the one named by the snapshot
// query parameter when it belongs to the patient, else the newest. The
// selection is resolved by id, never by searching the history page, so it
// works for snapshots older than the page cap.
func (h *Handler) View(c echo.Context) error {
	ctx := c.Request().Context()
	pat, err := patientID(c)
	if err != nil {
		return err
	}

	history, _, err := h.charts.History(ctx, pat, pagination.MaxLimit, 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var active *odontogram.Odontogram
	if raw := c.QueryParam("snapshot"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid snapshot id")
		}
		o, err := h.charts.Get(ctx, id)
		if errors.Is(err, odontogram.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "snapshot not found")
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if o.PatientID != pat {
			return echo.NewHTTPError(http.StatusNotFound, "snapshot not found")
		}
		active = o
	} else {
		if len(history) == 0 {
			return echo.NewHTTPError(http.StatusNotFound, "patient has no odontograms")
		}
		o, err := h.charts.Get(ctx, history[0].ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		active = o
	}

	var latest *odontogram.Odontogram
	if len(history) > 0 {
		latest = history[0]
	}
	return c.JSON(http.StatusOK, viewResponse{
		Snapshot: active,
		Editable: IsEditable(active, latest),
		History:  history,
	})
}
