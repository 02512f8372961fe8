package graphql

import (
	"errors"
	"net/http"
	"strings"

	"fulfillment/internal/identity"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
)

// request is the JSON body of a POST /graphql call.
type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// gqlError is one entry of a pre-execution errors response.
type gqlError struct {
	Message string `json:"message"`
}

// errorsResponse is the body of requests rejected before execution.
// It deliberately carries no data key.
type errorsResponse struct {
	Errors []gqlError `json:"errors"`
}

func rejected(message string) errorsResponse {
	return errorsResponse{Errors: []gqlError{{Message: message}}}
}

// Server executes the fulfillment schema over HTTP. Every operation requires
// a token whose claims grant the admin group; requests failing that are
// rejected before the schema ever runs.
type Server struct {
	schema   graphql.Schema
	verifier *identity.Verifier
}

// NewServer creates an API server around an executable schema and a token
// verifier.
func NewServer(schema graphql.Schema, verifier *identity.Verifier) *Server {
	return &Server{
		schema:   schema,
		verifier: verifier,
	}
}

// RegisterRoutes mounts the API endpoints on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.handleHealth)
	e.GET("/graphql/schema", s.handleSchema)
	e.POST("/graphql", s.handleGraphQL, s.authorize)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

func (s *Server) handleSchema(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/graphql; charset=utf-8", []byte(SDL))
}

// authorize verifies the caller's token and group membership before the
// operation executes. The Authorization header carries the raw token, with
// or without a Bearer prefix.
func (s *Server) authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return c.JSON(http.StatusUnauthorized, rejected("authorization token is required"))
		}

		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := s.verifier.Verify(token)
		if err != nil {
			if errors.Is(err, identity.ErrTokenExpired) {
				return c.JSON(http.StatusUnauthorized, rejected("authorization token expired"))
			}
			return c.JSON(http.StatusUnauthorized, rejected("invalid authorization token"))
		}

		if !claims.InGroup(identity.GroupAdmin) {
			return c.JSON(http.StatusForbidden, rejected("access denied: admin group membership required"))
		}

		return next(c)
	}
}

func (s *Server) handleGraphQL(c echo.Context) error {
	var req request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, rejected("invalid request body"))
	}

	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})

	return c.JSON(http.StatusOK, result)
}
