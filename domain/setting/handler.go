package setting

import (
	"errors"
	"net/http"

	"solutions-admin/pkg/apperrors"

	"github.com/labstack/echo/v4"
)

// AllHandler returns every setting.
func AllHandler(c echo.Context) error {
	settings, err := All()
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, settings)
}

// GetHandler returns one setting by key.
func GetHandler(c echo.Context) error {
	s, err := Get(c.Param("key"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeSettingNotFound, "Setting not found.")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, s)
}

// SetHandler upserts one setting by key.
func SetHandler(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return apperrors.NewBadRequest(apperrors.ErrCodeMissingField, "Setting key is required.")
	}

	req := new(SetRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid request payload.")
	}

	s, err := Set(key, req.Value)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, s)
}
