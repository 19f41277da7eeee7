package http

import (
	"net/http"
	"time"

	"wastetrack/internal/core/application/usecases/commands"
	"wastetrack/internal/core/application/usecases/queries"
	"wastetrack/internal/core/domain/model/account"
	"wastetrack/internal/core/domain/model/kernel"
	"wastetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	OrganizationID string `json:"organization_id,omitempty"`
	Role           string `json:"role,omitempty"`
}

type registerResponse struct {
	UserID string `json:"user_id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// Register handles POST /auth/register. Without organization fields the new
// user is a citizen; with them the user also receives a membership.
func (s *Server) Register(ctx echo.Context) error {
	var request registerRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := s.buildRegisterCommand(request)
	if err != nil {
		return writeError(ctx, err)
	}

	userID, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return writeData(ctx, http.StatusCreated, registerResponse{UserID: userID.String()})
}

func (s *Server) buildRegisterCommand(request registerRequest) (commands.RegisterUserCommand, error) {
	if request.OrganizationID == "" && request.Role == "" {
		return commands.NewRegisterUserCommand(request.Name, request.Email, request.Password)
	}

	organizationID, err := kernel.UUIDFromString(request.OrganizationID)
	if err != nil {
		return commands.RegisterUserCommand{}, errs.NewValueIsInvalidErrorWithCause("organization_id", err)
	}

	role, err := account.ParseRole(request.Role)
	if err != nil {
		return commands.RegisterUserCommand{}, err
	}

	return commands.NewRegisterMemberCommand(
		request.Name, request.Email, request.Password, organizationID, role)
}

// Login handles POST /auth/login. Credential failures are indistinguishable
// from unknown emails.
func (s *Server) Login(ctx echo.Context) error {
	var request loginRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorMessage(ctx, http.StatusBadRequest, "invalid request body")
	}

	query, err := queries.NewGetCredentialsQuery(request.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	credentials, err := s.getCredentialsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if !credentials.Active {
		return writeError(ctx, errs.NewAuthenticationError("user is deactivated"))
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(credentials.PasswordHash), []byte(request.Password)); err != nil {
		return writeError(ctx, errs.NewAuthenticationError("invalid credentials"))
	}

	token, err := s.tokens.Issue(credentials.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.tokens.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return writeData(ctx, http.StatusOK, loginResponse{
		Token:  token,
		UserID: credentials.UserID.String(),
	})
}
