package media

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"solutions-admin/pkg/apperrors"
	"solutions-admin/pkg/logger"
	"solutions-admin/pkg/storage"

	"github.com/labstack/echo/v4"
)

// Store is the blob-storage collaborator, wired at startup.
var Store storage.Storage

const maxUploadSize = 10 << 20 // 10 MB

// UploadHandler accepts a single multipart file plus an optional page id,
// stores the blob under a randomized name and records a MediaFile row.
func UploadHandler(c echo.Context) error {
	log := logger.Get().WithComponent("media").WithRequestID(logger.GetRequestIDFromContext(c))

	file, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeMissingField, "No file uploaded.")
	}
	if file.Size > maxUploadSize {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "File exceeds the 10 MB limit.")
	}

	src, err := file.Open()
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeStorageError, "Failed to read upload.", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeStorageError, "Failed to read upload.", err)
	}

	var pageID *int64
	if raw := c.FormValue("pageId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid page id.")
		}
		pageID = &id
	}

	contentType := file.Header.Get("Content-Type")
	key := storage.ObjectKey(file.Filename)

	url, err := Store.Save(c.Request().Context(), key, content, contentType)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeStorageError, "Failed to store upload.", err)
	}

	size := file.Size
	var mimeType *string
	if contentType != "" {
		mimeType = &contentType
	}

	m, err := Insert(file.Filename, url, mimeType, &size, pageID)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}

	log.Info("Media uploaded", logger.Int64("media_id", m.ID), logger.String("filename", m.Filename))
	return c.JSON(http.StatusOK, m)
}

// ListHandler returns all media files, newest first.
func ListHandler(c echo.Context) error {
	files, err := List()
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, files)
}

// DeleteHandler removes the record and, best-effort, the stored blob.
func DeleteHandler(c echo.Context) error {
	log := logger.Get().WithComponent("media").WithRequestID(logger.GetRequestIDFromContext(c))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid media id.")
	}

	m, err := GetByID(id)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	if m == nil {
		return apperrors.NewNotFound(apperrors.ErrCodeMediaNotFound, "Media file not found.")
	}

	if err := Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeMediaNotFound, "Media file not found.")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}

	if err := Store.Delete(c.Request().Context(), m.URL); err != nil {
		log.Warn("Failed to delete stored blob", logger.Int64("media_id", id), logger.Err(err))
	}

	log.Info("Media deleted", logger.Int64("media_id", id))
	return c.JSON(http.StatusOK, map[string]string{"message": "Media file deleted."})
}
