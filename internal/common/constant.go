package common

// AuthorizationHeaderName is the HTTP header that carries the bearer token
// on protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerSchemePrefix precedes the token value inside the Authorization header.
const BearerSchemePrefix = "Bearer "
