package server

import (
	"net/http"
	"time"

	fcerrors "github.com/fiberforge/fibercheck/pkg/errors"
	"github.com/fiberforge/fibercheck/pkg/serializer"
	"github.com/google/uuid"
)

// HTTPStatusFromCode maps structured error codes to HTTP status codes.
func HTTPStatusFromCode(code fcerrors.ErrorCode) int {
	switch code {
	case fcerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case fcerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case fcerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case fcerrors.ErrCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case fcerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case fcerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case fcerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryableFromCode reports whether a client may retry a request that
// failed with the given code.
func retryableFromCode(code fcerrors.ErrorCode) bool {
	switch code {
	case fcerrors.ErrCodeTimeout,
		fcerrors.ErrCodeUnavailable,
		fcerrors.ErrCodeRateLimitExceeded,
		fcerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps, the second overwriting the first.
// Returns nil when both are empty so the details field is omitted entirely.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	merged := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code fcerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr derives the response from the error itself. Structured
// errors carry their own code, message, and context; anything else falls
// back to an internal error with the provided message.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, details map[string]any) {

	code := fcerrors.ErrCodeInternal
	message := fallbackMessage

	var extra map[string]any
	if serr, ok := err.(*fcerrors.StructuredError); ok {
		code = serr.Code
		message = serr.Message
		extra = serr.Context
		if serr.Cause != nil {
			extra = mergeDetails(extra, map[string]any{"error": serr.Cause.Error()})
		}
	} else if err != nil {
		extra = map[string]any{"error": err.Error()}
	}

	WriteError(w, r, HTTPStatusFromCode(code), code, message,
		retryableFromCode(code), mergeDetails(extra, details))
}
