package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest and, if dest
// implements Validator, runs Validate(). On failure it writes a 400 JSON
// error and returns false; callers should return immediately. A body that
// carries no fields at all (nothing, JSON null, or an empty object) is
// reported as "Empty request"; a type mismatch surfaces the decoder's
// message so the caller learns which field has the wrong type.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if isEmptyBody(body) {
		WriteJSONError(w, http.StatusBadRequest, "Empty request")
		return false
	}
	if err := json.Unmarshal(body, dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}

func isEmptyBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		// Not an object; let the destination decode report the real error.
		return false
	}
	return len(fields) == 0
}
