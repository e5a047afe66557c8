package common

// UsersRoute is the path of the public registration endpoint.
const UsersRoute = "/api/users"

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
