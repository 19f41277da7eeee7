package http

import (
	"strings"

	"wastetrack/internal/core/application/usecases/queries"
	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// accountContextKey is the echo context key holding the resolved account.
const accountContextKey = "account"

// sessionCookieName is the cookie carrying the session token for clients
// that do not send an Authorization header.
const sessionCookieName = "session"

// sessionToken extracts the session token from the Authorization bearer
// header, falling back to the session cookie.
func sessionToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if token, found := strings.CutPrefix(header, "Bearer "); found && strings.TrimSpace(token) != "" {
		return strings.TrimSpace(token), nil
	}

	if cookie, err := ctx.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errs.NewAuthenticationError("missing session token")
}

// authenticate extracts the session token, verifies it and resolves the
// caller's account from storage. The account lands on the request context for
// the role middleware and the handlers.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token, err := sessionToken(ctx)
		if err != nil {
			return writeError(ctx, err)
		}

		userID, err := s.tokens.Parse(token)
		if err != nil {
			return writeError(ctx, err)
		}

		query, err := queries.NewResolveAccountQuery(userID)
		if err != nil {
			return writeError(ctx, err)
		}

		acc, err := s.resolveAccountHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return writeError(ctx, err)
		}

		ctx.Set(accountContextKey, acc)
		return next(ctx)
	}
}

// requireRoles admits members whose role is in the allow-list. Owners pass
// unconditionally; citizens are always denied.
func (s *Server) requireRoles(roles ...account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			acc, err := accountFromContext(ctx)
			if err != nil {
				return writeError(ctx, err)
			}

			if err := acc.Authorize(roles...); err != nil {
				return writeError(ctx, err)
			}

			return next(ctx)
		}
	}
}

// requirePermission derives the endpoint's allow-list from the static
// permission table, so granting or revoking a role's access is a table edit.
func (s *Server) requirePermission(resource account.Resource, action account.Action) echo.MiddlewareFunc {
	return s.requireRoles(account.RolesAllowed(resource, action)...)
}

// requireCitizen admits only callers without an organization membership.
func (s *Server) requireCitizen(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		acc, err := accountFromContext(ctx)
		if err != nil {
			return writeError(ctx, err)
		}

		if err := acc.AuthorizeCitizen(); err != nil {
			return writeError(ctx, err)
		}

		return next(ctx)
	}
}

// accountFromContext reads the account placed by the authenticate middleware.
func accountFromContext(ctx echo.Context) (account.Account, error) {
	acc, ok := ctx.Get(accountContextKey).(account.Account)
	if !ok {
		return account.Account{}, errs.NewAuthenticationError("no authenticated account")
	}
	return acc, nil
}
