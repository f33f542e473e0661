package handlers

import (
	"encoding/json"
	"net/http"

	"myblog/internal/logger"
	"myblog/internal/models"
	"myblog/internal/services"
	"myblog/internal/utils/helpers"

	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

type previewRequest struct {
	Body string `json:"body"`
}

type previewResponse struct {
	Body string `json:"body"`
}

// Create
// @Summary      Create an article
// @Description  id and createdAt are assigned by the server.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateArticleRequest  true  "Article"
// @Success      201   {object}  models.Article
// @Failure      400   {object}  helpers.ErrorResponse
// @Failure      422   {object}  helpers.ErrorResponse
// @Router       /articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Invalid JSON in article create", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	article, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, article)
}

// List
// @Summary  List articles
// @Tags     articles
// @Produce  json
// @Success  200  {array}  models.Article
// @Router   /articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// GetByID
// @Summary  Get an article
// @Tags     articles
// @Produce  json
// @Param    id   path      int  true  "Article ID"
// @Success  200  {object}  models.Article
// @Failure  404  {object}  helpers.ErrorResponse
// @Router   /articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	article, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}

// Update
// @Summary      Patch an article
// @Description  Only the keys present in the body change; null clears a field.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Article ID"
// @Param        body  body      models.ArticleUpdate  true  "Sparse update"
// @Success      200   {object}  models.Article
// @Failure      404   {object}  helpers.ErrorResponse
// @Router       /articles/{id} [patch]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var upd models.ArticleUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logger.WithCtx(r.Context()).Warn("Invalid JSON in article patch", zap.Int64("id", id), zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	article, err := h.svc.Update(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, article)
}

// Delete
// @Summary  Delete an article
// @Description  Comments on the article are kept.
// @Tags     articles
// @Produce  json
// @Param    id   path      int  true  "Article ID"
// @Success  200  {object}  models.DeleteResult
// @Failure  404  {object}  helpers.ErrorResponse
// @Router   /articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Preview
// @Summary      Preview an article body
// @Description  Returns the sanitized HTML without storing anything.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        body  body      previewRequest  true  "Raw body"
// @Success      200   {object}  previewResponse
// @Router       /articles/preview [post]
func (h *ArticleHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	helpers.JSON(w, http.StatusOK, previewResponse{Body: h.svc.PreviewBody(r.Context(), req.Body)})
}
