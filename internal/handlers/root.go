package handlers

import (
	"net/http"
	"strconv"

	"myblog/internal/utils/helpers"
)

// Root godoc
// @Summary  Greeting
// @Tags     meta
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   / [get]
func Root(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, map[string]string{"message": "Hello World !"})
}

// Add godoc
// @Summary  Add two integers
// @Tags     meta
// @Produce  json
// @Param    a    query     int  true  "First operand"
// @Param    b    query     int  true  "Second operand"
// @Success  200  {object}  map[string]int64
// @Failure  422  {object}  helpers.ErrorResponse
// @Router   /add [get]
func Add(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, errA := strconv.ParseInt(q.Get("a"), 10, 64)
	b, errB := strconv.ParseInt(q.Get("b"), 10, 64)
	if errA != nil || errB != nil {
		helpers.Error(w, http.StatusUnprocessableEntity, "a and b must be integers")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]int64{"result": a + b})
}
