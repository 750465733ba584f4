package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"euroasia/internal/common"
)

type errorPayload struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error converts a coded error into its HTTP shape. Anything without a
// code collapses into a generic 500 so backend details never leak.
func Error(w http.ResponseWriter, err error) {
	var coded *common.Error
	if !errors.As(err, &coded) {
		JSON(w, http.StatusInternalServerError, errorPayload{Error: string(common.CodeInternal), Message: "internal server error"})
		return
	}
	JSON(w, statusFor(coded.Code), errorPayload{Error: string(coded.Code), Message: coded.Message, Fields: coded.Fields})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeDeliveryFailed, common.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
