package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "42704"}))
}

func TestIsIndexUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"undefined object", &pgconn.PgError{Code: "42704"}, true},
		{"query canceled", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "57014"}), true},
		{"syntax error", &pgconn.PgError{Code: "42601"}, false},
		{"not a pg error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIndexUnavailable(tt.err))
		})
	}
}
