package handler

import (
	"net/http"
	"strconv"

	"nutriclinic/pkg/response"

	"github.com/gorilla/mux"
)

// pathID parses a positive integer route variable, writing a 400 when it is
// malformed.
func pathID(w http.ResponseWriter, r *http.Request, name, message string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, message, nil)
		return 0, false
	}
	return id, true
}
