package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// pathParam returns the decoded value of a string path parameter. Echo
// matches routes against the escaped path whenever the request carries one,
// so parameters such as "test%40test.com" arrive still encoded.
func pathParam(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw, nil
	}
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s is not a valid path segment", name))
	}
	return value, nil
}
