package handlers

import (
	"net/http"

	"myblog/internal/services"
	"myblog/internal/utils/helpers"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Login godoc
// @Summary      Check credentials
// @Description  Returns the full user record, password included, when both values match.
// @Tags         auth
// @Produce      json
// @Param        username  query     string  true  "Username"
// @Param        password  query     string  true  "Password"
// @Success      200       {object}  models.User
// @Failure      401       {object}  helpers.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	user, err := h.userService.Login(r.Context(), q.Get("username"), q.Get("password"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}

// GetUserByID godoc
// @Summary  Get a user
// @Tags     users
// @Produce  json
// @Param    id   path      int  true  "User ID"
// @Success  200  {object}  models.User
// @Failure  404  {object}  helpers.ErrorResponse
// @Router   /users/{id} [get]
func (h *AuthHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}
