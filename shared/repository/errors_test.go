package repository_test

import (
	"errors"
	"fmt"
	"summit/shared/repository"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pq.Error{Code: "23505", Constraint: "reviews_reviewer_booking_target_key"}
	wrapped := fmt.Errorf("failed to insert data (review): %w", unique)

	assert.True(t, repository.IsUniqueViolation(wrapped, ""))
	assert.True(t, repository.IsUniqueViolation(wrapped, "reviews_reviewer_booking_target_key"))
	assert.False(t, repository.IsUniqueViolation(wrapped, "bookings_booking_number_key"))
	assert.False(t, repository.IsUniqueViolation(&pq.Error{Code: "23503"}, ""))
	assert.False(t, repository.IsUniqueViolation(errors.New("connection refused"), ""))
}
