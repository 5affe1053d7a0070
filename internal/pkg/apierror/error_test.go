package apierror_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atulub35/outsider-client-go/internal/pkg/apierror"
)

func TestFromResponse_Classifies(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		body          string
		expectKind    apierror.Kind
		expectMessage string
		expectNoError bool
	}{
		{
			name:          "no_error_on_success",
			statusCode:    http.StatusOK,
			body:          `{"id":"1"}`,
			expectNoError: true,
		},
		{
			name:          "auth_on_unauthorized",
			statusCode:    http.StatusUnauthorized,
			body:          `{"message":"token expired"}`,
			expectKind:    apierror.KindAuth,
			expectMessage: "token expired",
		},
		{
			name:          "validation_with_server_message",
			statusCode:    http.StatusBadRequest,
			body:          `{"message":"title is required"}`,
			expectKind:    apierror.KindValidation,
			expectMessage: "title is required",
		},
		{
			name:          "server_with_generic_fallback",
			statusCode:    http.StatusInternalServerError,
			body:          `boom`,
			expectKind:    apierror.KindServer,
			expectMessage: apierror.GenericMessage,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			resp, err := resty.New().SetBaseURL(srv.URL).R().Get("/")
			require.NoError(t, err)

			classified := apierror.FromResponse(resp, err)
			if tc.expectNoError {
				assert.NoError(t, classified)
				return
			}

			var apiErr *apierror.Error
			require.ErrorAs(t, classified, &apiErr)
			assert.Equal(t, tc.expectKind, apiErr.Kind)
			assert.Equal(t, tc.statusCode, apiErr.StatusCode)
			assert.Equal(t, tc.expectMessage, apiErr.Message)
		})
	}
}

func TestFromResponse_NetworkError(t *testing.T) {
	classified := apierror.FromResponse(nil, errors.New("connection refused"))

	require.Error(t, classified)
	assert.True(t, apierror.IsNetwork(classified))
	assert.False(t, apierror.IsAuth(classified))
}

func TestCallState(t *testing.T) {
	state := &apierror.CallState{}

	assert.False(t, state.Loading())
	assert.Empty(t, state.ErrorMessage())

	state.Begin()
	assert.True(t, state.Loading())

	state.Finish(&apierror.Error{Kind: apierror.KindValidation, StatusCode: http.StatusBadRequest, Message: "title is required"})
	assert.False(t, state.Loading())
	assert.Equal(t, "title is required", state.ErrorMessage())

	// a new call clears the previous failure
	state.Begin()
	assert.Empty(t, state.ErrorMessage())
	state.Finish(nil)
	assert.Empty(t, state.ErrorMessage())
}

func TestCallState_AuthErrorNeverWritten(t *testing.T) {
	state := &apierror.CallState{}

	state.Begin()
	state.Finish(&apierror.Error{Kind: apierror.KindAuth, StatusCode: http.StatusUnauthorized, Message: "token expired"})

	assert.False(t, state.Loading())
	assert.Empty(t, state.ErrorMessage())
}
