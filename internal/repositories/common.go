package repositories

import (
	"errors"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// isUniqueViolation reports whether err is a postgres duplicate-key error.
// The match-link and reconciliation tables rely on unique indexes to reject
// the loser of two concurrent writers.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return false
}
