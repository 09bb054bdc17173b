package handlers

import "net/http"

func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusNotFound, "no matching route was found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteJSONError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
