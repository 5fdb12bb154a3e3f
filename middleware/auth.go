package middleware

import (
	"strings"

	"solutions-admin/config"
	"solutions-admin/domain/admin"
	"solutions-admin/pkg/apperrors"
	"solutions-admin/pkg/logger"
	"solutions-admin/utils"

	"github.com/labstack/echo/v4"
)

// ContextKeyAdmin is where the resolved account lives in the Echo context.
const ContextKeyAdmin = "admin"

// AuthMiddleware is the authorization gate: it resolves a bearer token to an
// active administrator or rejects the request before any other component is
// touched. No revocation list exists; tokens stay valid until expiry.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperrors.NewUnauthorized(apperrors.ErrCodeTokenMissing, "Missing or invalid token.")
		}

		adminID, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return apperrors.NewUnauthorized(apperrors.ErrCodeTokenInvalid, "Invalid or expired token.")
		}

		account, err := admin.GetByID(adminID)
		if err != nil {
			return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
		}
		if account == nil || !account.IsActive {
			return apperrors.NewUnauthorized(apperrors.ErrCodeTokenInvalid, "Invalid or expired token.")
		}

		c.Set(ContextKeyAdmin, account)
		c.Set("user_id", account.ID)

		// Presence heartbeat, best-effort.
		if err := config.SetLastActive(account.ID); err != nil {
			logger.Get().WithComponent("auth").Debug("Failed to record last active", logger.Err(err))
		}

		return next(c)
	}
}

// AdminFromContext returns the account attached by AuthMiddleware.
func AdminFromContext(c echo.Context) *admin.AdminUser {
	account, _ := c.Get(ContextKeyAdmin).(*admin.AdminUser)
	return account
}
