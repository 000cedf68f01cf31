package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForCode(t *testing.T) {
	tests := map[string]int{
		"barber_not_found":       http.StatusNotFound,
		"service_not_found":      http.StatusNotFound,
		"time_conflict":          http.StatusConflict,
		"email_taken":            http.StatusConflict,
		"invalid_credentials":    http.StatusUnauthorized,
		"account_inactive":       http.StatusForbidden,
		"photo_storage_disabled": http.StatusServiceUnavailable,
		"invalid_status":         http.StatusBadRequest,
		"invalid_time":           http.StatusBadRequest,
	}

	for code, want := range tests {
		assert.Equal(t, want, statusForCode(code), code)
	}
}
