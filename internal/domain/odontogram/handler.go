package odontogram

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/odonto/odonto/internal/platform/auth"
	"github.com/odonto/odonto/internal/platform/telemetry"
	"github.com/odonto/odonto/pkg/pagination"
)

type Handler struct {
	svc     *Service
	metrics *telemetry.Provider
}

func NewHandler(svc *Service, metrics *telemetry.Provider) *Handler {
	return &Handler{svc: svc, metrics: metrics}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("dentist", "assistant")

	read := api.Group("", role)
	read.GET("/patients/:patientId/odontograms", h.History)
	read.GET("/patients/:patientId/odontograms/latest", h.Latest)
	read.GET("/odontograms/:id", h.Get)

	write := api.Group("", auth.RequireRole("dentist"))
	write.POST("/patients/:patientId/odontograms", h.Create)
	write.PATCH("/odontograms/:id/teeth/:number", h.UpdateTooth)
	write.POST("/odontograms/:id/teeth/:number/interfering-field", h.ToggleInterferingField)
	write.PUT("/odontograms/:id/observations", h.UpdateObservations)
	write.POST("/odontograms/:id/close", h.Close)
}

// httpError maps domain errors onto HTTP status codes.
func httpError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "odontogram not found")
	case errors.Is(err, ErrToothNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "tooth not found")
	case errors.Is(err, ErrSnapshotClosed):
		return echo.NewHTTPError(http.StatusConflict, "odontogram is closed")
	case errors.Is(err, ErrOpenSnapshotExists):
		return echo.NewHTTPError(http.StatusConflict, "patient already has an open odontogram")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func parseID(c echo.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+param)
	}
	return id, nil
}

type createRequest struct {
	Reason     string     `json:"reason"`
	CopyFromID *uuid.UUID `json:"copy_from_id"`
}

func (h *Handler) Create(c echo.Context) error {
	patientID, err := parseID(c, "patientId")
	if err != nil {
		return err
	}
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	practitionerID, err := uuid.Parse(auth.PractitionerIDFromContext(c.Request().Context()))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid practitioner identity")
	}

	o, err := h.svc.Create(c.Request().Context(), patientID, practitionerID, CreateOptions{
		Reason:     req.Reason,
		CopyFromID: req.CopyFromID,
	})
	if err != nil {
		if errors.Is(err, ErrOpenSnapshotExists) || errors.Is(err, ErrNotFound) {
			return httpError(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.metrics.ChartOperation("create")
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) Latest(c echo.Context) error {
	patientID, err := parseID(c, "patientId")
	if err != nil {
		return err
	}
	o, err := h.svc.Latest(c.Request().Context(), patientID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) History(c echo.Context) error {
	patientID, err := parseID(c, "patientId")
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.History(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateTooth(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tooth number")
	}
	var upd ToothUpdate
	if err := c.Bind(&upd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.svc.UpdateTooth(c.Request().Context(), id, number, upd)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrToothNotFound) || errors.Is(err, ErrSnapshotClosed) {
			return httpError(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.metrics.ChartOperation("update_tooth")
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) ToggleInterferingField(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tooth number")
	}
	t, err := h.svc.ToggleInterferingField(c.Request().Context(), id, number)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrToothNotFound) || errors.Is(err, ErrSnapshotClosed) {
			return httpError(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.metrics.ChartOperation("toggle_interfering_field")
	return c.JSON(http.StatusOK, t)
}

type observationsRequest struct {
	Observations string `json:"observations"`
}

func (h *Handler) UpdateObservations(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req observationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateObservations(c.Request().Context(), id, req.Observations); err != nil {
		return httpError(err)
	}
	h.metrics.ChartOperation("update_observations")
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Close(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	o, err := h.svc.Close(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	h.metrics.ChartOperation("close")
	return c.JSON(http.StatusOK, o)
}
