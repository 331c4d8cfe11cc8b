package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// FindByFieldIn loads every row whose field is one of values with a single
// IN query. No query is issued when values is empty.
func FindByFieldIn[T any](conn *gorm.DB, field string, values []string) ([]T, error) {
	var rows []T
	if len(values) == 0 {
		return rows, nil
	}
	err := conn.Where(field+" IN ?", values).Find(&rows).Error
	return rows, err
}

// IsUniqueViolation reports whether err came from a unique index.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value") || // postgres
		strings.Contains(msg, "Duplicate entry") // mysql
}
