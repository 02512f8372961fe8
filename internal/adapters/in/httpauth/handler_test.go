package httpauth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fulfillment/internal/adapters/in/httpauth"
	"fulfillment/internal/identity"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "auth-endpoint-secret"

// newTestRouter provisions an identity store with one client and one
// signed-up user and mounts the token endpoint over it.
func newTestRouter(t *testing.T) (router *echo.Echo, clientID, username, password string) {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	service, err := identity.NewService(db, []byte(testSecret), time.Hour)
	require.NoError(t, err)

	client, err := service.CreateClient("fulfillment-console")
	require.NoError(t, err)

	username = "packer@example.com"
	password = "correct horse battery staple"
	_, err = service.AdminCreateUser(username, username)
	require.NoError(t, err)
	require.NoError(t, service.AdminSetUserPassword(username, password))

	router = echo.New()
	httpauth.NewHandler(service).RegisterRoutes(router)

	return router, client.ID, username, password
}

func postToken(t *testing.T, router *echo.Echo, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	return rec.Code, response
}

func credentialsBody(t *testing.T, clientID, username, password string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"clientId": clientID,
		"username": username,
		"password": password,
	})
	require.NoError(t, err)

	return string(body)
}

func TestTokenEndpoint_ExchangesValidCredentials(t *testing.T) {
	router, clientID, username, password := newTestRouter(t)

	code, response := postToken(t, router, credentialsBody(t, clientID, username, password))

	require.Equal(t, http.StatusOK, code)
	token, ok := response["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	verifier, err := identity.NewVerifier([]byte(testSecret))
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, username, claims.Email)
	assert.Equal(t, clientID, claims.ClientID)
}

func TestTokenEndpoint_WrongPassword_IsUnauthorized(t *testing.T) {
	router, clientID, username, _ := newTestRouter(t)

	code, response := postToken(t, router, credentialsBody(t, clientID, username, "not the password"))

	require.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid credentials", response["message"])
	assert.NotContains(t, response, "token")
}

func TestTokenEndpoint_UnknownUser_IsUnauthorized(t *testing.T) {
	router, clientID, _, _ := newTestRouter(t)

	code, response := postToken(t, router, credentialsBody(t, clientID, "ghost@example.com", "whatever password"))

	require.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid credentials", response["message"])
}

func TestTokenEndpoint_UnknownClient_IsRejected(t *testing.T) {
	router, _, username, password := newTestRouter(t)

	code, response := postToken(t, router, credentialsBody(t, uuid.NewString(), username, password))

	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "unknown client", response["message"])
}

func TestTokenEndpoint_MissingFields_IsRejected(t *testing.T) {
	router, clientID, username, _ := newTestRouter(t)

	code, response := postToken(t, router, credentialsBody(t, clientID, username, ""))

	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "clientId, username and password are required", response["message"])
}

func TestTokenEndpoint_MalformedBody_IsRejected(t *testing.T) {
	router, _, _, _ := newTestRouter(t)

	code, response := postToken(t, router, "{not json")

	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid request body", response["message"])
}
