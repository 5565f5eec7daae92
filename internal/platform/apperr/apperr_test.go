package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: Invalid("name is required"), want: http.StatusBadRequest},
		{name: "not found", err: NotFound("workday not found"), want: http.StatusNotFound},
		{name: "conflict", err: Conflict("dateString already used"), want: http.StatusConflict},
		{name: "unavailable", err: Unavailable(errors.New("dial tcp: refused")), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("update: %w", NotFound("x")), want: http.StatusNotFound},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUnavailableKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Unavailable(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the cause")
	}
	if got := BodyOf(err).Message; got != "store unavailable" {
		t.Fatalf("unexpected body message %q", got)
	}
}
