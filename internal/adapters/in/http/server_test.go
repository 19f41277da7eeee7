package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	userID := kernel.NewUUID()

	token, err := issuer.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestTokenIssuer_Parse_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-one", time.Hour).Issue(kernel.NewUUID())
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-two", time.Hour).Parse(token)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestTokenIssuer_Parse_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(kernel.NewUUID())
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestTokenIssuer_Parse_Garbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret", time.Hour).Parse("not-a-token")
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "authentication error is 401 with reason",
			err:            errs.NewAuthenticationError("missing bearer token"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "missing bearer token",
		},
		{
			name:           "authorization error is 403 with reason",
			err:            errs.NewAuthorizationError("insufficient role"),
			expectedStatus: http.StatusForbidden,
			expectedBody:   "insufficient role",
		},
		{
			name:           "conflict error is 409 with reason",
			err:            errs.NewConflictError("License plate already exists"),
			expectedStatus: http.StatusConflict,
			expectedBody:   "License plate already exists",
		},
		{
			name:           "not found error is 404",
			err:            errs.NewObjectNotFoundError("truck", "some-id"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   "object not found: some-id",
		},
		{
			name:           "invalid value error is 400 with the message",
			err:            errs.NewValueIsInvalidError("no active assignment found for location update"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "no active assignment found for location update",
		},
		{
			name:           "required value error is 400",
			err:            errs.NewValueIsRequiredError("name"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "name",
		},
		{
			name:           "unclassified error is an opaque 500",
			err:            errors.New("pq: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := classify(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Contains(t, message, tt.expectedBody)
		})
	}
}

func TestAuthenticate_MissingToken_Unauthorized(t *testing.T) {
	server := NewServer(Handlers{}, NewTokenIssuer("test-secret", time.Hour))
	e := echo.New()

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not a bearer scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "empty bearer", header: "Bearer "},
		{name: "malformed token", header: "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/trucks", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			next := func(echo.Context) error {
				t.Fatal("handler must not run without a session")
				return nil
			}

			require.NoError(t, server.authenticate(next)(ctx))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestSessionToken(t *testing.T) {
	e := echo.New()

	newContext := func(header string, cookie string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("bearer header wins", func(t *testing.T) {
		token, err := sessionToken(newContext("Bearer from-header", "from-cookie"))
		require.NoError(t, err)
		assert.Equal(t, "from-header", token)
	})

	t.Run("cookie is the fallback", func(t *testing.T) {
		token, err := sessionToken(newContext("", "from-cookie"))
		require.NoError(t, err)
		assert.Equal(t, "from-cookie", token)
	})

	t.Run("empty bearer falls back to cookie", func(t *testing.T) {
		token, err := sessionToken(newContext("Bearer ", "from-cookie"))
		require.NoError(t, err)
		assert.Equal(t, "from-cookie", token)
	})

	t.Run("neither is unauthenticated", func(t *testing.T) {
		_, err := sessionToken(newContext("", ""))
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestAuthenticate_SessionCookieIsConsumed(t *testing.T) {
	server := NewServer(Handlers{}, NewTokenIssuer("test-secret", time.Hour))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/driver/location", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	next := func(echo.Context) error {
		t.Fatal("handler must not run with a garbage session")
		return nil
	}

	require.NoError(t, server.authenticate(next)(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestRequireRoles(t *testing.T) {
	userID := kernel.NewUUID()
	organizationID := kernel.NewUUID()

	memberAccount := func(role account.Role) account.Account {
		acc, err := account.NewMemberAccount(userID, organizationID, role)
		require.NoError(t, err)
		return acc
	}
	citizenAccount := func() account.Account {
		acc, err := account.NewCitizenAccount(userID)
		require.NoError(t, err)
		return acc
	}

	tests := []struct {
		name           string
		account        account.Account
		allowed        []account.Role
		expectedStatus int
	}{
		{
			name:           "role in allow list passes",
			account:        memberAccount(account.RoleSupervisor),
			allowed:        []account.Role{account.RoleAdmin, account.RoleSupervisor},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "owner bypasses every allow list",
			account:        memberAccount(account.RoleOwner),
			allowed:        []account.Role{account.RoleDriver},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "role outside allow list is forbidden",
			account:        memberAccount(account.RoleDriver),
			allowed:        []account.Role{account.RoleAdmin, account.RoleSupervisor},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "citizen is always forbidden",
			account:        citizenAccount(),
			allowed:        []account.Role{account.RoleDriver},
			expectedStatus: http.StatusForbidden,
		},
	}

	server := NewServer(Handlers{}, NewTokenIssuer("test-secret", time.Hour))
	e := echo.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)
			ctx.Set(accountContextKey, tt.account)

			handler := server.requireRoles(tt.allowed...)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(ctx))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRequirePermission_AllowListsComeFromPermissionTable(t *testing.T) {
	userID := kernel.NewUUID()
	organizationID := kernel.NewUUID()

	memberAccount := func(role account.Role) account.Account {
		acc, err := account.NewMemberAccount(userID, organizationID, role)
		require.NoError(t, err)
		return acc
	}

	tests := []struct {
		name           string
		account        account.Account
		resource       account.Resource
		action         account.Action
		expectedStatus int
	}{
		{
			name:           "supervisor may create trucks",
			account:        memberAccount(account.RoleSupervisor),
			resource:       account.ResourceTruck,
			action:         account.ActionCreate,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "driver may start assignments",
			account:        memberAccount(account.RoleDriver),
			resource:       account.ResourceAssignment,
			action:         account.ActionStart,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "driver may not create trucks",
			account:        memberAccount(account.RoleDriver),
			resource:       account.ResourceTruck,
			action:         account.ActionCreate,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin may not report locations",
			account:        memberAccount(account.RoleAdmin),
			resource:       account.ResourceLocation,
			action:         account.ActionReport,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin may not read a driver's current assignment",
			account:        memberAccount(account.RoleAdmin),
			resource:       account.ResourceAssignment,
			action:         account.ActionRead,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "owner bypasses the table",
			account:        memberAccount(account.RoleOwner),
			resource:       account.ResourceLocation,
			action:         account.ActionReport,
			expectedStatus: http.StatusOK,
		},
	}

	server := NewServer(Handlers{}, NewTokenIssuer("test-secret", time.Hour))
	e := echo.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)
			ctx.Set(accountContextKey, tt.account)

			handler := server.requirePermission(tt.resource, tt.action)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(ctx))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRequireCitizen(t *testing.T) {
	userID := kernel.NewUUID()

	citizen, err := account.NewCitizenAccount(userID)
	require.NoError(t, err)
	driver, err := account.NewMemberAccount(userID, kernel.NewUUID(), account.RoleDriver)
	require.NoError(t, err)

	tests := []struct {
		name           string
		account        account.Account
		expectedStatus int
	}{
		{name: "citizen passes", account: citizen, expectedStatus: http.StatusOK},
		{name: "member is forbidden", account: driver, expectedStatus: http.StatusForbidden},
	}

	server := NewServer(Handlers{}, NewTokenIssuer("test-secret", time.Hour))
	e := echo.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)
			ctx.Set(accountContextKey, tt.account)

			handler := server.requireCitizen(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(ctx))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLoadOpenAPISpec(t *testing.T) {
	doc, err := LoadOpenAPISpec(t.Context())
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.NotNil(t, doc.Paths.Find("/citizen/truck/status"))
	assert.NotNil(t, doc.Paths.Find("/driver/assignments/{id}/start"))
}
