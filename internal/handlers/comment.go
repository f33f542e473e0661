package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"myblog/internal/logger"
	"myblog/internal/models"
	"myblog/internal/services"
	"myblog/internal/utils/helpers"

	"go.uber.org/zap"
)

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create
// @Summary      Comment on an article
// @Description  The parent article comes from the articleId query parameter only.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        articleId  query     int                          true  "Parent article ID"
// @Param        body       body      models.CreateCommentRequest  true  "Comment"
// @Success      201        {object}  models.Comment
// @Failure      404        {object}  helpers.ErrorResponse  "parent article missing"
// @Failure      422        {object}  helpers.ErrorResponse
// @Router       /comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	articleID, err := strconv.ParseInt(r.URL.Query().Get("articleId"), 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "articleId query parameter must be an integer")
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Invalid JSON in comment create", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	comment, err := h.svc.Create(r.Context(), articleID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, comment)
}

// List
// @Summary  List comments
// @Tags     comments
// @Produce  json
// @Success  200  {array}  models.Comment
// @Router   /comments [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID
// @Summary  Get a comment
// @Tags     comments
// @Produce  json
// @Param    id   path      int  true  "Comment ID"
// @Success  200  {object}  models.Comment
// @Failure  404  {object}  helpers.ErrorResponse
// @Router   /comments/{id} [get]
func (h *CommentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	comment, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, comment)
}

// Update
// @Summary  Patch a comment
// @Tags     comments
// @Accept   json
// @Produce  json
// @Param    id    path      int                   true  "Comment ID"
// @Param    body  body      models.CommentUpdate  true  "Sparse update"
// @Success  200   {object}  models.Comment
// @Failure  404   {object}  helpers.ErrorResponse
// @Router   /comments/{id} [patch]
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var upd models.CommentUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	comment, err := h.svc.Update(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, comment)
}

// Delete
// @Summary  Delete a comment
// @Tags     comments
// @Produce  json
// @Param    id   path      int  true  "Comment ID"
// @Success  200  {object}  models.DeleteResult
// @Failure  404  {object}  helpers.ErrorResponse
// @Router   /comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, res)
}
