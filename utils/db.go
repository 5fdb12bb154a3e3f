package utils

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a unique-constraint violation.
// The storage-level constraint is the one concurrency safety net for slug
// and email uniqueness, so callers turn this into a conflict error rather
// than an internal one. The string check covers the SQLite driver used in
// tests, which has no typed error for it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
