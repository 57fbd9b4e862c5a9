package db

import "strings"

// IsUniqueViolation reports whether the error references a Postgres unique
// violation. When constraintName is provided the check narrows to that constraint.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value")
}
