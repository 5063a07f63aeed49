package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/notes-assistant/internal/domain/notes"
	apperrors "github.com/yanqian/notes-assistant/pkg/errors"
)

func TestFromFlowError(t *testing.T) {
	invalid := apperrors.Wrap(apperrors.CodeInvalidInput, "No lecture notes provided", nil)
	httpErr := fromFlowError(invalid)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, notes.ClientError{Error: "No lecture notes provided"}, httpErr.envelope())

	failed := apperrors.Wrap(apperrors.CodeLLM, "model request failed", errors.New("deadline exceeded"))
	httpErr = fromFlowError(failed)
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	require.Equal(t, notes.Failure{Success: false, Error: "model request failed: deadline exceeded"}, httpErr.envelope())
	require.ErrorIs(t, httpErr, failed)
}

func TestAsHTTPErrorFallsBackToInternal(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewHTTPError(http.StatusNotFound, "not_found", "not found", nil))
	require.Equal(t, http.StatusNotFound, asHTTPError(wrapped).Status)

	plain := asHTTPError(errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, plain.Status)
	require.Equal(t, notes.Failure{Success: false, Error: "internal server error"}, plain.envelope())
}
