package video

import (
	"errors"
	"net/http"
	"strconv"

	"solutions-admin/pkg/apperrors"
	"solutions-admin/pkg/logger"

	"github.com/labstack/echo/v4"
)

func videoIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid video id.")
	}
	return id, nil
}

func mapServiceError(err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperrors.NewNotFound(apperrors.ErrCodeVideoNotFound, "Video not found.")
	}
	return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
}

// ListHandler returns all videos, newest first.
func ListHandler(c echo.Context) error {
	videos, err := List()
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, videos)
}

// GetHandler returns a single video by id.
func GetHandler(c echo.Context) error {
	id, err := videoIDParam(c)
	if err != nil {
		return err
	}

	v, err := GetByID(id)
	if err != nil {
		return mapServiceError(err)
	}
	if v == nil {
		return apperrors.NewNotFound(apperrors.ErrCodeVideoNotFound, "Video not found.")
	}
	return c.JSON(http.StatusOK, v)
}

// SaveHandler creates or updates a video.
func SaveHandler(c echo.Context) error {
	log := logger.Get().WithComponent("video").WithRequestID(logger.GetRequestIDFromContext(c))

	req := new(SaveRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid request payload.")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if !req.Source.Valid() {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid video source.")
	}
	if req.Position != "" && !req.Position.Valid() {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid video position.")
	}

	v, err := Save(req)
	if err != nil {
		return mapServiceError(err)
	}

	log.Info("Video saved", logger.Int64("video_id", v.ID))
	return c.JSON(http.StatusOK, v)
}

// DeleteHandler removes a video, clearing every page reference atomically.
func DeleteHandler(c echo.Context) error {
	log := logger.Get().WithComponent("video").WithRequestID(logger.GetRequestIDFromContext(c))

	id, err := videoIDParam(c)
	if err != nil {
		return err
	}

	if err := Delete(id); err != nil {
		return mapServiceError(err)
	}

	log.Info("Video deleted", logger.Int64("video_id", id))
	return c.JSON(http.StatusOK, map[string]string{"message": "Video deleted."})
}
