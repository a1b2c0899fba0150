package common

// AuthTokenHeaderName is the HTTP header that carries the access token.
// The storefront frontend sends the raw token in this custom header rather
// than a standard Authorization: Bearer header; kept for compatibility.
const AuthTokenHeaderName = "auth-token"
