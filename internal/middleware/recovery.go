package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/snapwork/snapwork/pkg/utils"
)

// Recovery converts a handler panic into a JSON 500 so one bad request
// cannot take the whole server down.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				utils.InternalError(w, "something went wrong handling the request")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
