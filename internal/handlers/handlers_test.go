package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"myblog/internal/app"
	"myblog/internal/metrics"
	"myblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	stores *app.Stores
	h      http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	stores := app.NewMemoryStores()
	return &testServer{t: t, stores: stores, h: app.NewRouter(stores, metrics.NewCollector("test"))}
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRoot(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello World !", decode[map[string]string](t, rec)["message"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAdd(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/add?a=2&b=40", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), decode[map[string]int64](t, rec)["result"])

	rec = s.do(http.MethodGet, "/add?a=two&b=40", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestArticles_SequentialIDs(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/articles", `{"author":"Alice","title":"Hi","body":"x"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	first := decode[models.Article](t, rec)

	rec = s.do(http.MethodPost, "/articles", `{"author":"Bob","title":"Yo"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	second := decode[models.Article](t, rec)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Nil(t, second.Body)

	rec = s.do(http.MethodGet, "/articles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]models.Article](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "Alice", list[0].Author)
}

func TestArticles_EmptyListIsArray(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/articles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestArticles_CreateValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/articles", `{"author":"Alice"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = s.do(http.MethodPost, "/articles", `{"author":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArticles_PatchMergesOnlyPresentFields(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/articles", `{"author":"Alice","title":"Hi","body":"x"}`).Code)

	rec := s.do(http.MethodPatch, "/articles/1", `{"body":"y"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[models.Article](t, rec)

	assert.Equal(t, "Alice", got.Author)
	assert.Equal(t, "Hi", got.Title)
	require.NotNil(t, got.Body)
	assert.Equal(t, "y", *got.Body)

	rec = s.do(http.MethodPatch, "/articles/1", `{"body":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[models.Article](t, rec).Body)

	rec = s.do(http.MethodGet, "/articles/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[models.Article](t, rec).Body)
}

func TestArticles_NotFound(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPatch, `{"title":"x"}`},
		{http.MethodDelete, ""},
	} {
		rec := s.do(tc.method, "/articles/7", tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method)
	}
}

func TestArticles_DeleteKeepsComments(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/articles", `{"author":"A","title":"T"}`).Code)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/comments?articleId=1", `{"author":"C"}`).Code)

	rec := s.do(http.MethodDelete, "/articles/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/comments/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), decode[models.Comment](t, rec).ArticleID)
}

func TestArticles_Preview(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/articles/preview", `{"body":"<p>hi</p><script>alert(1)</script>"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)["body"]
	assert.Contains(t, body, "<p>hi</p>")
	assert.NotContains(t, body, "script")

	list, err := s.stores.Articles.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestComments_ParentMissing(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/comments?articleId=999", `{"author":"C","body":"hello"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "999")

	list, err := s.stores.Comments.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestComments_BadArticleID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/comments?articleId=abc", `{"author":"C"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComments_Lifecycle(t *testing.T) {
	s := newTestServer(t)
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/articles", `{"author":"A","title":"T"}`).Code)

	rec := s.do(http.MethodPost, "/comments?articleId=1", `{"author":"C","body":"first"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Comment](t, rec)
	assert.Equal(t, int64(1), created.ArticleID)

	rec = s.do(http.MethodPatch, "/comments/1", `{"body":"edited"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.Comment](t, rec)
	assert.Equal(t, "C", updated.Author)
	require.NotNil(t, updated.Body)
	assert.Equal(t, "edited", *updated.Body)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	rec = s.do(http.MethodGet, "/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Comment](t, rec), 1)

	rec = s.do(http.MethodDelete, "/comments/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/comments/1", "").Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	_, err := s.stores.Users.Create(context.Background(), &models.User{Username: "alice", Password: "secret", Role: models.RoleAdmin})
	require.NoError(t, err)

	rec := s.do(http.MethodPost, "/login?username=alice&password=secret", "")
	require.Equal(t, http.StatusOK, rec.Code)
	u := decode[models.User](t, rec)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "secret", u.Password)
	assert.Equal(t, models.RoleAdmin, u.Role)

	rec = s.do(http.MethodPost, "/login?username=alice&password=wrong", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUser(t *testing.T) {
	s := newTestServer(t)
	_, err := s.stores.Users.Create(context.Background(), &models.User{Username: "bob", Password: "pw", Role: models.RoleUser})
	require.NoError(t, err)

	rec := s.do(http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", decode[models.User](t, rec).Username)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/users/2", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(http.MethodGet, "/articles", "")

	rec := s.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_http_requests_total")
}
