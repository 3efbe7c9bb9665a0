// Package gateway is the single path from the client to the jotti REST
// backend.
//
// Every call is a JSON POST to {baseURL}/{endpoint}. The gateway attaches the
// current bearer token, checks the decoded response against the caller's
// Shape, and classifies failures:
//
//   - *BackendError      the backend answered non-2xx (Status, Code, Details)
//   - *ResponseShapeError a 2xx body did not match the expected shape
//   - ErrUnavailable     the request never got an answer (network, timeout)
//
// The gateway never changes session state and never retries.
package gateway
