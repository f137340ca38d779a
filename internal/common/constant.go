package common

// AccessTokenCookieName is the cookie that carries the signed access token
// between the browser and the server.
const AccessTokenCookieName = "vault_access_token"

// AuthorizationHeaderName is the fallback credential channel for
// non-browser clients ("Bearer <token>").
const AuthorizationHeaderName = "Authorization"
