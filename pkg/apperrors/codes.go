package apperrors

// Error codes - organized by domain

// Authentication errors (AUTH_*)
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeTokenInvalid       = "AUTH_TOKEN_INVALID"
	ErrCodeTokenMissing       = "AUTH_TOKEN_MISSING"
)

// Authorization errors (AUTHZ_*)
const (
	ErrCodeForbidden    = "AUTHZ_FORBIDDEN"
	ErrCodeSetupDone    = "AUTHZ_SETUP_ALREADY_DONE"
	ErrCodeEmailBlocked = "AUTHZ_EMAIL_NOT_ALLOWED"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeMissingField     = "VALIDATION_MISSING_FIELD"
	ErrCodeInvalidInput     = "VALIDATION_INVALID_INPUT"
)

// Resource errors (RESOURCE_*)
const (
	ErrCodePageNotFound    = "RESOURCE_PAGE_NOT_FOUND"
	ErrCodeVideoNotFound   = "RESOURCE_VIDEO_NOT_FOUND"
	ErrCodeCtaNotFound     = "RESOURCE_CTA_NOT_FOUND"
	ErrCodeMediaNotFound   = "RESOURCE_MEDIA_NOT_FOUND"
	ErrCodeLeadNotFound    = "RESOURCE_LEAD_NOT_FOUND"
	ErrCodeSettingNotFound = "RESOURCE_SETTING_NOT_FOUND"
	ErrCodeSlugTaken       = "RESOURCE_SLUG_TAKEN"
	ErrCodeEmailRegistered = "RESOURCE_EMAIL_REGISTERED"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeDatabaseError   = "INTERNAL_DATABASE_ERROR"
	ErrCodeStorageError    = "INTERNAL_STORAGE_ERROR"
	ErrCodeUnexpectedError = "INTERNAL_UNEXPECTED_ERROR"
)
