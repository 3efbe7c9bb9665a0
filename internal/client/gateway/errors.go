package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnavailable   = errors.New("backend unavailable")
	ErrResponseShape = errors.New("unexpected response shape")
)

// UnknownCode is used when a failed response carries no usable error code.
const UnknownCode = "unknown"

// BackendError is a non-2xx answer from the backend.
type BackendError struct {
	Status  int
	Code    string
	Details string
}

func (e *BackendError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("backend error %d: %s", e.Status, e.Code)
	}
	return fmt.Sprintf("backend error %d: %s - %s", e.Status, e.Code, e.Details)
}

// ResponseShapeError names the endpoint whose 2xx body failed validation.
// The underlying decode/validation error is logged, not exposed.
type ResponseShapeError struct {
	Endpoint string
}

func (e *ResponseShapeError) Error() string {
	return fmt.Sprintf("response of %s is invalid", e.Endpoint)
}

func (e *ResponseShapeError) Is(target error) bool {
	return target == ErrResponseShape
}

type errorEnvelope struct {
	Code    *string `json:"code"`
	Details *string `json:"details"`
}

// parseBackendError reads the {code, details?} envelope. Anything else,
// including an empty code or non-string fields, yields code "unknown" with
// the raw body as details.
func parseBackendError(status int, raw []byte) *BackendError {
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Code == nil || *env.Code == "" {
		return &BackendError{Status: status, Code: UnknownCode, Details: string(raw)}
	}

	be := &BackendError{Status: status, Code: *env.Code}
	if env.Details != nil {
		be.Details = *env.Details
	}
	return be
}

// Code returns the backend error code of err, or "" when err is not a
// *BackendError.
func Code(err error) string {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
