package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"euroasia/internal/common"
)

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// idFromPath pulls a UUID path segment counted from the end of the path,
// so /jobs/{id} uses position 1.
func idFromPath(r *http.Request, posFromEnd int) (common.UUID, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) < posFromEnd {
		return "", common.NewValidationError("invalid request", map[string]string{"id": "id is required"})
	}
	raw := segments[len(segments)-posFromEnd]
	if raw == "" {
		return "", common.NewValidationError("invalid request", map[string]string{"id": "id is required"})
	}
	parsed, err := common.ParseUUID(raw)
	if err != nil {
		return "", common.NewValidationError("invalid request", map[string]string{"id": "invalid id"})
	}
	return parsed, nil
}
