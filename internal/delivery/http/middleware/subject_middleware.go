package middleware

import (
	"net/http"

	"wellness-clinic-service/pkg/jwt"
	"wellness-clinic-service/pkg/response"
)

// RequirePatient rejects requests whose token is not bound to a patient.
func RequirePatient(next http.Handler) http.Handler {
	return requireSubjectType(jwt.SubjectPatient, next)
}

// RequireProvider rejects requests whose token is not bound to a provider.
func RequireProvider(next http.Handler) http.Handler {
	return requireSubjectType(jwt.SubjectProvider, next)
}

func requireSubjectType(want jwt.SubjectType, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subjectType, ok := GetSubjectTypeFromContext(r.Context())
		if !ok || subjectType != want {
			response.Forbidden(w, "Insufficient permissions")
			return
		}
		next.ServeHTTP(w, r)
	})
}
