package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed api.yaml
var openAPISpec []byte

// NewOpenAPIValidationMiddleware builds Echo middleware that validates
// incoming requests against the embedded OpenAPI document before they reach
// the handlers. Requests for paths the document does not describe (health
// checks, the swagger UI) pass through untouched.
func NewOpenAPIValidationMiddleware() (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()
	loader.Context = context.Background()

	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			requestValidationInput := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}

			if validateErr := openapi3filter.ValidateRequest(req.Context(), requestValidationInput); validateErr != nil {
				return respondError(ctx, http.StatusBadRequest, validateErr.Error())
			}

			return next(ctx)
		}
	}, nil
}
