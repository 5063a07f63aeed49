package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapMessage(t *testing.T) {
	err := Wrap(CodeLLM, "model request failed", errors.New("quota exceeded"))
	require.EqualError(t, err, "model request failed: quota exceeded")

	bare := Wrap(CodeInvalidInput, "No meeting notes provided", nil)
	require.EqualError(t, bare, "No meeting notes provided")
}

func TestCodeOfThroughWrapping(t *testing.T) {
	inner := Wrap(CodeEmptyCompletion, "model returned an empty completion", nil)
	outer := fmt.Errorf("generate notes: %w", inner)

	require.Equal(t, CodeEmptyCompletion, CodeOf(outer))
	require.True(t, IsCode(outer, CodeEmptyCompletion))
	require.False(t, IsCode(errors.New("plain"), CodeEmptyCompletion))
	require.Empty(t, CodeOf(nil))
}
