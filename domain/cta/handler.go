package cta

import (
	"errors"
	"net/http"
	"strconv"

	"solutions-admin/pkg/apperrors"

	"github.com/labstack/echo/v4"
)

// ListByPageHandler returns the CTAs of one page in render order.
func ListByPageHandler(c echo.Context) error {
	pageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid page id.")
	}

	ctas, err := ListByPage(pageID)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, ctas)
}

// SaveHandler creates or updates a CTA.
func SaveHandler(c echo.Context) error {
	req := new(SaveRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid request payload.")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if req.Style != "" && !req.Style.Valid() {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid CTA style.")
	}

	saved, err := Save(req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeCtaNotFound, "CTA not found.")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, saved)
}

// DeleteHandler removes a CTA.
func DeleteHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid CTA id.")
	}

	if err := Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeCtaNotFound, "CTA not found.")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "CTA deleted."})
}
