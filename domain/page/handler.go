package page

import (
	"errors"
	"net/http"
	"strconv"

	"solutions-admin/pkg/apperrors"
	"solutions-admin/pkg/logger"

	"github.com/labstack/echo/v4"
)

func pageIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid page id.")
	}
	return id, nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperrors.NewNotFound(apperrors.ErrCodePageNotFound, "Page not found.")
	case errors.Is(err, ErrSlugTaken):
		return apperrors.NewConflict(apperrors.ErrCodeSlugTaken, "A page with this slug already exists.")
	case errors.Is(err, ErrInvalidBlock):
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid block list.").
			WithDetail(err.Error())
	}
	return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
}

// ListHandler returns pages filtered by status, free-text search and video
// presence, most-recently-updated first.
func ListHandler(c echo.Context) error {
	f := Filters{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	}
	if hv := c.QueryParam("has_video"); hv != "" {
		b, err := strconv.ParseBool(hv)
		if err != nil {
			return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "has_video must be a boolean.")
		}
		f.HasVideo = &b
	}

	pages, err := List(f)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, pages)
}

// GetHandler returns a single page by id.
func GetHandler(c echo.Context) error {
	id, err := pageIDParam(c)
	if err != nil {
		return err
	}

	p, err := GetByID(id)
	if err != nil {
		return mapServiceError(err)
	}
	if p == nil {
		return apperrors.NewNotFound(apperrors.ErrCodePageNotFound, "Page not found.")
	}
	return c.JSON(http.StatusOK, p)
}

// GetBySlugHandler returns a single page by slug.
func GetBySlugHandler(c echo.Context) error {
	p, err := GetBySlug(c.Param("slug"))
	if err != nil {
		return mapServiceError(err)
	}
	if p == nil {
		return apperrors.NewNotFound(apperrors.ErrCodePageNotFound, "Page not found.")
	}
	return c.JSON(http.StatusOK, p)
}

// SaveHandler creates or updates a page.
func SaveHandler(c echo.Context) error {
	log := logger.Get().WithComponent("page").WithRequestID(logger.GetRequestIDFromContext(c))

	req := new(SaveRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid request payload.")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if req.Status != "" && !req.Status.Valid() {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid page status.")
	}

	p, err := Save(req)
	if err != nil {
		return mapServiceError(err)
	}

	log.Info("Page saved", logger.PageID(p.ID), logger.Slug(p.Slug))
	return c.JSON(http.StatusOK, p)
}

// PublishHandler transitions a page into published.
func PublishHandler(c echo.Context) error {
	return transitionHandler(c, Publish, "Page published")
}

// UnpublishHandler transitions a page back to draft.
func UnpublishHandler(c echo.Context) error {
	return transitionHandler(c, Unpublish, "Page unpublished")
}

// ArchiveHandler archives a page.
func ArchiveHandler(c echo.Context) error {
	return transitionHandler(c, Archive, "Page archived")
}

func transitionHandler(c echo.Context, op func(int64) (*Page, error), msg string) error {
	log := logger.Get().WithComponent("page").WithRequestID(logger.GetRequestIDFromContext(c))

	id, err := pageIDParam(c)
	if err != nil {
		return err
	}

	p, err := op(id)
	if err != nil {
		return mapServiceError(err)
	}

	log.Info(msg, logger.PageID(p.ID), logger.Slug(p.Slug))
	return c.JSON(http.StatusOK, p)
}

// DuplicateHandler clones a page as a new draft.
func DuplicateHandler(c echo.Context) error {
	log := logger.Get().WithComponent("page").WithRequestID(logger.GetRequestIDFromContext(c))

	id, err := pageIDParam(c)
	if err != nil {
		return err
	}

	copied, err := Duplicate(id)
	if err != nil {
		return mapServiceError(err)
	}

	log.Info("Page duplicated", logger.PageID(id), logger.Slug(copied.Slug))
	return c.JSON(http.StatusOK, copied)
}

// DeleteHandler hard-deletes a page.
func DeleteHandler(c echo.Context) error {
	log := logger.Get().WithComponent("page").WithRequestID(logger.GetRequestIDFromContext(c))

	id, err := pageIDParam(c)
	if err != nil {
		return err
	}

	if err := Delete(id); err != nil {
		return mapServiceError(err)
	}

	log.Info("Page deleted", logger.PageID(id))
	return c.JSON(http.StatusOK, map[string]string{"message": "Page deleted."})
}

// LinkVideoHandler sets or clears the page's linked video.
func LinkVideoHandler(c echo.Context) error {
	id, err := pageIDParam(c)
	if err != nil {
		return err
	}

	req := new(LinkVideoRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid request payload.")
	}

	p, err := LinkVideo(id, req.VideoID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, p)
}
