package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func pathID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

// cascadeRequested reports whether the delete should take dependent rows
// with it (?cascade=true).
func cascadeRequested(r *http.Request) bool {
	return r.URL.Query().Get("cascade") == "true"
}
