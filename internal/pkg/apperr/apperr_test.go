package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFrom(t *testing.T) {
	tagged := Conflict("QUOTA_EXCEEDED", "limit reached")
	if got := From(tagged); got != tagged {
		t.Errorf("From(tagged) = %v, want same error", got)
	}

	// Tagged errors survive wrapping.
	wrapped := fmt.Errorf("while creating gym: %w", tagged)
	if got := From(wrapped); got != tagged {
		t.Errorf("From(wrapped) = %v, want inner tagged error", got)
	}

	// Untagged errors come back as internal.
	plain := errors.New("disk full")
	got := From(plain)
	if got.Kind != KindInternal {
		t.Errorf("kind = %v, want KindInternal", got.Kind)
	}
	if !errors.Is(got, plain) {
		t.Error("original error should stay in the chain")
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(NotFound("GYM_NOT_FOUND", "gym not found")) != KindNotFound {
		t.Error("KindOf should read the tag")
	}
	if KindOf(errors.New("boom")) != KindInternal {
		t.Error("untagged errors default to internal")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := HTTPStatus(tt.kind); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := Internal("failed to save", errors.New("constraint violated"))
	if err.Error() != "failed to save: constraint violated" {
		t.Errorf("Error() = %q", err.Error())
	}
	if Validation("BAD", "bad input").Error() != "bad input" {
		t.Error("errors without a cause print the message alone")
	}
}

func TestWithDetails(t *testing.T) {
	err := Conflict("QUOTA_EXCEEDED", "limit reached").WithDetails(map[string]int{"current": 2, "max": 2})
	if err.Details == nil {
		t.Error("details should be attached")
	}
}
