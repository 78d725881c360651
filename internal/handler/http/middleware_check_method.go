package http

import "net/http"

// unsupportedMethod is installed as chi's MethodNotAllowed handler. The
// portal API does not advertise which methods a path accepts, so a wrong
// method looks the same as an unknown path.
func unsupportedMethod(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
