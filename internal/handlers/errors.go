package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"myblog/internal/logger"
	"myblog/internal/services"
	"myblog/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Unknown errors are store failures: logged in full, reported as 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		vErr  *services.ValidationError
		nfErr *services.NotFoundError
		uaErr *services.UnauthorizedError
	)
	switch {
	case errors.As(err, &vErr):
		helpers.Error(w, http.StatusUnprocessableEntity, vErr.Error())
	case errors.As(err, &nfErr):
		helpers.Error(w, http.StatusNotFound, nfErr.Error())
	case errors.As(err, &uaErr):
		helpers.Error(w, http.StatusUnauthorized, uaErr.Error())
	default:
		logger.WithCtx(r.Context()).Error("Request failed", zap.String("path", r.URL.Path), zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID reads the numeric {id} route variable.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
