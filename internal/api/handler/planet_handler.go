package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planetary/planetary-api/internal/core/domain"
	"github.com/planetary/planetary-api/internal/core/ports"
)

// PlanetHandler handles the planet catalog routes.
type PlanetHandler struct {
	service ports.PlanetService
}

func NewPlanetHandler(service ports.PlanetService) *PlanetHandler {
	return &PlanetHandler{service: service}
}

// List handles GET /planets.
//
// @Summary      List all planets
// @Tags         planets
// @Produce      json
// @Success      200  {array}   domain.Planet
// @Failure      500  {object}  messageResponse
// @Router       /planets [get]
func (h *PlanetHandler) List(c echo.Context) error {
	planets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, planets)
}

// Details handles GET /planet_details/:id.
//
// @Summary      Get one planet by id
// @Tags         planets
// @Produce      json
// @Param        id   path      int  true  "Planet id"
// @Success      200  {object}  domain.Planet
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /planet_details/{id} [get]
func (h *PlanetHandler) Details(c echo.Context) error {
	id, err := bindPlanetID(c)
	if err != nil {
		return err
	}

	p, err := h.service.Get(c.Request().Context(), id)
	if errors.Is(err, domain.ErrPlanetNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "That planet does not exist")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Add handles POST /add_planet.
//
// @Summary      Add a planet
// @Tags         planets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addPlanetRequest  true  "Planet"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /add_planet [post]
func (h *PlanetHandler) Add(c echo.Context) error {
	var req addPlanetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.service.Add(c.Request().Context(), req.toInput())
	if errors.Is(err, domain.ErrPlanetExists) {
		return echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("There is already a planet %s", req.PlanetName))
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("Successfully added planet %s", req.PlanetName)})
}

// UpdateByName handles PUT /update_planet.
//
// @Summary      Update a planet by name
// @Tags         planets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePlanetRequest  true  "Planet name and new attributes"
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /update_planet [put]
func (h *PlanetHandler) UpdateByName(c echo.Context) error {
	var req updatePlanetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.service.UpdateByName(c.Request().Context(), req.PlanetName, req.toAttributes())
	if errors.Is(err, domain.ErrPlanetNotFound) {
		return notInRecords(req.PlanetName)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, messageResponse{Message: fmt.Sprintf("Successfully updated planet %s", req.PlanetName)})
}

// DeleteByName handles DELETE /delete_planet/:name.
//
// @Summary      Delete a planet by name
// @Tags         planets
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Planet name"
// @Success      202   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /delete_planet/{name} [delete]
func (h *PlanetHandler) DeleteByName(c echo.Context) error {
	name, err := pathParam(c, "name")
	if err != nil {
		return err
	}
	err = h.service.DeleteByName(c.Request().Context(), name)
	if errors.Is(err, domain.ErrPlanetNotFound) {
		return notInRecords(name)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, messageResponse{Message: "Successfully deleted planet"})
}

// UpdateByID handles PUT /planets/:id.
//
// @Summary      Update a planet by id
// @Tags         planets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Planet id"
// @Param        body  body      planetAttributesRequest  true  "New attributes"
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /planets/{id} [put]
func (h *PlanetHandler) UpdateByID(c echo.Context) error {
	id, err := bindPlanetID(c)
	if err != nil {
		return err
	}
	var req planetAttributesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.UpdateByID(c.Request().Context(), id, req.toAttributes())
	if errors.Is(err, domain.ErrPlanetNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "That planet does not exist")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, messageResponse{Message: fmt.Sprintf("Successfully updated planet %s", p.PlanetName)})
}

// DeleteByID handles DELETE /planets/:id.
//
// @Summary      Delete a planet by id
// @Tags         planets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Planet id"
// @Success      202  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /planets/{id} [delete]
func (h *PlanetHandler) DeleteByID(c echo.Context) error {
	id, err := bindPlanetID(c)
	if err != nil {
		return err
	}

	err = h.service.DeleteByID(c.Request().Context(), id)
	if errors.Is(err, domain.ErrPlanetNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "That planet does not exist")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, messageResponse{Message: "Successfully deleted planet"})
}

func notInRecords(name string) error {
	return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("There is no planet %s in my records", name))
}

func bindPlanetID(c echo.Context) (int64, error) {
	var p planetIDParam
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return p.ID, nil
}

// bindAndValidate decodes the request body into req and runs the validator.
// Both failures are reported as 400.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
