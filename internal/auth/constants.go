package auth

const (
	ContextKeyPrincipal = "principal"

	jsonKeyError = "error"

	headerAuthorization = "Authorization"

	claimEmail = "email"

	bearerScheme    = "bearer"
	authHeaderParts = 2
)

const (
	msgMissingAuthorization    = "missing authorization token"
	msgInvalidOrExpiredToken   = "invalid or expired token"
	msgIdentityMismatch        = "forbidden access"
	msgAdminRequired           = "admin access required"
	msgPrincipalNotFound       = "user not authenticated"
	msgInvalidPrincipalCtx     = "invalid principal in context"
	msgPrincipalEmailMissing   = "email claim missing from token"
	msgSecretNotConfigured     = "token signing secret is not configured"
	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token: %w"
	msgInvalidTokenClaims      = "invalid token claims"
)
