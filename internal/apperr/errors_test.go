package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/DjordjeVuckovic/runplot/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid expression", inner)

	if err.Error() != "invalid expression: parse failed" {
		t.Errorf("expected 'invalid expression: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty parentheses")

	wrapped := fmt.Errorf("failed to parse: %w", original)
	doubleWrapped := fmt.Errorf("storage error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "empty parentheses" {
		t.Errorf("expected 'empty parentheses', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestParseError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewParseWrap("row 3", fmt.Errorf("strconv: bad value"))
	wrapped := fmt.Errorf("read a_run.state: %w", original)

	var pe *apperr.ParseError
	if !errors.As(wrapped, &pe) {
		t.Fatal("errors.As should find ParseError through wrapping")
	}
	if pe.Error() != "row 3: strconv: bad value" {
		t.Errorf("unexpected message %q", pe.Error())
	}
}

func TestNotFoundError_UnwrapsCause(t *testing.T) {
	err := apperr.NewNotFound("missing.state", os.ErrNotExist)

	if !errors.Is(err, os.ErrNotExist) {
		t.Error("expected NotFoundError to unwrap to os.ErrNotExist")
	}
	if err.Error() != "run log not found: missing.state: file does not exist" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestWriteError_Message(t *testing.T) {
	err := apperr.NewWrite("out/report.pdf", fmt.Errorf("disk full"))

	if err.Error() != "write report out/report.pdf: disk full" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.NewValidation("bad catalog"), http.StatusBadRequest},
		{"input", fmt.Errorf("render: %w", apperr.NewInput("no run logs")), http.StatusBadRequest},
		{"not found", apperr.NewNotFound("x.state", nil), http.StatusNotFound},
		{"parse", apperr.NewParse("schema mismatch"), http.StatusUnprocessableEntity},
		{"write", apperr.NewWrite("x.pdf", nil), http.StatusInternalServerError},
		{"plain", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := apperr.StatusOf(tt.err)
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
