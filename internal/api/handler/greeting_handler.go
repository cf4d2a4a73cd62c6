package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/planetary/planetary-api/internal/core/domain"
)

// GreetingHandler serves the static demo routes and the age-gated greetings.
type GreetingHandler struct{}

func NewGreetingHandler() *GreetingHandler {
	return &GreetingHandler{}
}

// HelloWorld handles GET /.
//
// @Summary      Hello world
// @Tags         greeting
// @Produce      html
// @Success      200  {string}  string
// @Router       / [get]
func (h *GreetingHandler) HelloWorld(c echo.Context) error {
	return c.HTML(http.StatusOK, "<p>Hello, World!</p>")
}

// SuperSimple handles GET /super_simple.
//
// @Summary      Static JSON greeting
// @Tags         greeting
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /super_simple [get]
func (h *GreetingHandler) SuperSimple(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "Hello from the planetary API"})
}

// NotFound handles GET /error and always answers 404.
//
// @Summary      Demonstrates an error response
// @Tags         greeting
// @Produce      json
// @Failure      404  {object}  messageResponse
// @Router       /error [get]
func (h *GreetingHandler) NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, messageResponse{Message: "That resource was not found"})
}

// Parameters handles GET /parameters?name=&age=.
//
// @Summary      Age-gated greeting from query parameters
// @Tags         greeting
// @Produce      json
// @Param        name  query     string  true  "Name"
// @Param        age   query     int     true  "Age"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /parameters [get]
func (h *GreetingHandler) Parameters(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	age, err := parseAge(c.QueryParam("age"))
	if err != nil {
		return err
	}
	return greet(c, name, age)
}

// URLVariables handles GET /url_variables/:name/:age.
//
// @Summary      Age-gated greeting from path variables
// @Tags         greeting
// @Produce      json
// @Param        name  path      string  true  "Name"
// @Param        age   path      int     true  "Age"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /url_variables/{name}/{age} [get]
func (h *GreetingHandler) URLVariables(c echo.Context) error {
	age, err := parseAge(c.Param("age"))
	if err != nil {
		return err
	}
	name, err := pathParam(c, "name")
	if err != nil {
		return err
	}
	return greet(c, name, age)
}

func parseAge(raw string) (int, error) {
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "age is required")
	}
	age, err := strconv.Atoi(raw)
	if err != nil || age < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "age must be a non-negative integer")
	}
	return age, nil
}

func greet(c echo.Context, name string, age int) error {
	if !domain.OldEnough(age) {
		return c.JSON(http.StatusUnauthorized, messageResponse{
			Message: fmt.Sprintf("Sorry %s, you are not old enough", name),
		})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Welcome, " + name})
}
