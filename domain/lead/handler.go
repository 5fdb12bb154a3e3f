package lead

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"solutions-admin/pkg/apperrors"
	"solutions-admin/pkg/logger"
	"solutions-admin/pkg/mailer"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
)

// Notifier delivers the new-lead notification email. Nil disables it.
var Notifier *mailer.Mailer

// SubmitHandler records an inbound contact submission. Public: leads come
// straight from the landing pages.
func SubmitHandler(c echo.Context) error {
	log := logger.Get().WithComponent("lead").WithRequestID(logger.GetRequestIDFromContext(c))

	req := new(SubmitRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid request payload.")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	l, err := Insert(req)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}

	log.Info("Lead received", logger.Int64("lead_id", l.ID))

	// The submitter never waits on, or hears about, the notification email.
	if to := viper.GetString("LEAD_NOTIFY_EMAIL"); to != "" {
		go notify(to, l)
	}

	return c.JSON(http.StatusCreated, l)
}

func notify(to string, l *Lead) {
	log := logger.Get().WithComponent("lead")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	body := fmt.Sprintf("New contact lead #%d\n\nName: %s\n", l.ID, l.Name)
	if l.Email != nil {
		body += fmt.Sprintf("Email: %s\n", *l.Email)
	}
	if l.Phone != nil {
		body += fmt.Sprintf("Phone: %s\n", *l.Phone)
	}
	if l.PageSlug != nil {
		body += fmt.Sprintf("Page: %s\n", *l.PageSlug)
	}
	if l.Message != nil {
		body += fmt.Sprintf("\n%s\n", *l.Message)
	}

	if err := Notifier.Send(ctx, to, fmt.Sprintf("New lead: %s", l.Name), body); err != nil {
		log.Warn("Failed to send lead notification", logger.Int64("lead_id", l.ID), logger.Err(err))
	}
}

// ListHandler returns all leads, newest first.
func ListHandler(c echo.Context) error {
	leads, err := List()
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, leads)
}

// UpdateStatusHandler sets a lead's triage status.
func UpdateStatusHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid lead id.")
	}

	req := new(UpdateStatusRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeValidationFailed, "Invalid request payload.")
	}
	if !req.Status.Valid() {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput,
			"Status must be one of: new, contacted, converted, archived.")
	}

	l, err := UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.NewNotFound(apperrors.ErrCodeLeadNotFound, "Lead not found.")
		}
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Internal server error.", err)
	}
	return c.JSON(http.StatusOK, l)
}
