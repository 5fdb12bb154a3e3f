package auth

import (
	"net/http"

	"solutions-admin/config"
	"solutions-admin/domain/admin"
	"solutions-admin/middleware"
	"solutions-admin/pkg/apperrors"
	"solutions-admin/pkg/logger"
	"solutions-admin/utils"

	"github.com/labstack/echo/v4"
)

// NeedsSetupHandler reports whether first-run setup is pending. Public.
func NeedsSetupHandler(c echo.Context) error {
	count, err := admin.Count()
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, NeedsSetupResponse{NeedsSetup: count == 0})
}

// SetupHandler creates the very first administrator account. It is forbidden
// as soon as any account exists, regardless of input.
func SetupHandler(c echo.Context) error {
	log := logger.Get().WithComponent("auth").WithRequestID(logger.GetRequestIDFromContext(c))

	req := new(SetupRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid request payload.")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	count, err := admin.Count()
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	if count > 0 {
		return apperrors.NewForbidden(apperrors.ErrCodeSetupDone, "Setup has already been completed.")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Internal server error.", err)
	}

	account, err := admin.Create(req.Name, req.Email, hash, admin.RoleAdmin)
	if err != nil {
		if err == admin.ErrEmailTaken {
			// Two concurrent setup calls: the unique index picked the winner.
			return apperrors.NewForbidden(apperrors.ErrCodeSetupDone, "Setup has already been completed.")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}

	token, err := utils.GenerateToken(account.ID)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Internal server error.", err)
	}

	log.Info("First administrator created", logger.UserID(account.ID), logger.Email(account.Email))

	return c.JSON(http.StatusOK, SessionResponse{
		Token: token,
		User:  UserResponse{ID: account.ID, Name: account.Name, Email: account.Email, Role: account.Role},
	})
}

// LoginHandler authenticates by email and password and issues a session token.
func LoginHandler(c echo.Context) error {
	log := logger.Get().WithComponent("auth").WithRequestID(logger.GetRequestIDFromContext(c))

	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid request payload.")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := admin.GetByEmail(req.Email)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	if account == nil || !account.IsActive {
		return apperrors.NewUnauthorized(apperrors.ErrCodeInvalidCredentials, invalidCredentialsMsg)
	}
	if !account.PasswordHash.Valid || !utils.CheckPasswordHash(req.Password, account.PasswordHash.String) {
		return apperrors.NewUnauthorized(apperrors.ErrCodeInvalidCredentials, invalidCredentialsMsg)
	}

	// A failed last-login update must not fail the login itself.
	if err := admin.TouchLogin(account.ID); err != nil {
		log.Warn("Failed to update last sign-in time", logger.UserID(account.ID), logger.Err(err))
	}

	token, err := utils.GenerateToken(account.ID)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Internal server error.", err)
	}

	log.Info("Administrator logged in", logger.UserID(account.ID), logger.Email(account.Email))

	return c.JSON(http.StatusOK, SessionResponse{
		Token: token,
		User:  UserResponse{ID: account.ID, Name: account.Name, Email: account.Email, Role: account.Role},
	})
}

// MeHandler returns the authenticated account.
func MeHandler(c echo.Context) error {
	account := middleware.AdminFromContext(c)
	if account == nil {
		return apperrors.NewUnauthorized(apperrors.ErrCodeTokenInvalid, "Invalid or expired token.")
	}

	resp := MeResponse{
		UserResponse: UserResponse{ID: account.ID, Name: account.Name, Email: account.Email, Role: account.Role},
		IsActive:     account.IsActive,
		CreatedAt:    account.CreatedAt,
		LastActiveAt: config.GetLastActive(account.ID),
	}
	if account.LastSignedIn.Valid {
		resp.LastSignedIn = &account.LastSignedIn.Time
	}

	return c.JSON(http.StatusOK, resp)
}
