package middleware

import (
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/auth"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/handler/http/response"

	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
