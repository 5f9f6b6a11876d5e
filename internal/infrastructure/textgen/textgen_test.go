package textgen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"not found", genai.APIError{Code: http.StatusNotFound, Status: "NOT_FOUND"}, ErrModelNotFound},
		{"wrapped not found", fmt.Errorf("call: %w", genai.APIError{Code: http.StatusNotFound}), ErrModelNotFound},
		{"unauthorized", genai.APIError{Code: http.StatusUnauthorized}, ErrUnauthorized},
		{"forbidden", genai.APIError{Code: http.StatusForbidden}, ErrUnauthorized},
		{"server error", genai.APIError{Code: http.StatusInternalServerError}, ErrTransport},
		{"network", errors.New("dial tcp: connection refused"), ErrTransport},
		{"deadline", context.DeadlineExceeded, ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.ErrorIs(t, got, tt.expected)

			var apiErr genai.APIError
			if errors.As(tt.err, &apiErr) {
				var kept genai.APIError
				assert.True(t, errors.As(got, &kept), "api error stays in the chain")
				assert.Equal(t, apiErr.Code, kept.Code)
			} else {
				assert.ErrorIs(t, got, tt.err)
			}
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, Classify(nil))
}

func TestClassify_NotFoundIsNotTransport(t *testing.T) {
	err := Classify(genai.APIError{Code: http.StatusNotFound})
	assert.False(t, errors.Is(err, ErrTransport))
	assert.False(t, errors.Is(err, ErrUnauthorized))
}
