package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedRequest struct {
	Name string `json:"name"`
}

func (v validatedRequest) Validate() []string {
	if v.Name == "" {
		return []string{"'name' is required"}
	}
	return nil
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantOK    bool
		wantError string
	}{
		{name: "valid", body: `{"name":"a"}`, wantOK: true},
		{name: "empty body", body: ``, wantError: "Empty request"},
		{name: "whitespace body", body: "  \n", wantError: "Empty request"},
		{name: "empty object", body: `{}`, wantError: "Empty request"},
		{name: "empty object with whitespace", body: ` { } `, wantError: "Empty request"},
		{name: "json null", body: `null`, wantError: "Empty request"},
		{name: "failing validation", body: `{"name":""}`, wantError: "'name' is required"},
		{name: "type mismatch", body: `{"name":1}`},
		{name: "not json", body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			var dest validatedRequest
			ok := DecodeAndValidate(rr, req, &dest)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "a", dest.Name)
				return
			}
			require.Equal(t, http.StatusBadRequest, rr.Code)
			if tt.wantError != "" {
				var resp ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}
