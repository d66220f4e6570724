package handler

import (
	"log"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"closet/internal/auth"
	"closet/internal/errors"
)

// currentIdentity resolves the caller identity from the validated JWT the
// echo-jwt middleware stored on the context. Every guarded handler calls
// this before anything else.
func currentIdentity(c echo.Context) (auth.Identity, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	return claims.Identity(), nil
}

// mapError converts a service error to an echo HTTPError, logging internal
// failures server-side while the response body stays generic.
func mapError(c echo.Context, err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
