// Package client talks to the account server's HTTP API.
//
// The Client interface is the transport-agnostic contract used by the CLI
// services; HTTPClient implements it over net/http. Server responses are
// mapped to errors callers can match:
//
//   - *APIError for 400 responses (validation errors or "User already exists"),
//   - common.ErrorAlreadyExists, reachable through errors.Is on an APIError
//     carrying that message,
//   - common.ErrorInternal for 5xx responses,
//   - ErrUnavailable when the server cannot be reached.
package client
