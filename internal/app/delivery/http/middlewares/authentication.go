package middlewares

import (
	"context"
	"net/http"
	"strings"

	"psyeval-service/internal/pkg/constvars"
	"psyeval-service/internal/pkg/exceptions"
	"psyeval-service/internal/pkg/utils"
)

// Authenticate extracts the practitioner identity from the bearer token.
// Identity lives in the external auth service; this middleware only verifies
// the signature and threads the practitioner id through the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, constvars.BearerTokenPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthTokenMissing())
			return
		}
		tokenString := strings.TrimPrefix(header, constvars.BearerTokenPrefix)

		practitionerID, err := utils.ParsePractitionerJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthTokenInvalid(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_PRACTITIONER_ID_KEY, practitionerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
