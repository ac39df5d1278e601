package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charadas/charadas-api/internal/charada"
	"github.com/charadas/charadas-api/internal/charada/repository"
	"github.com/charadas/charadas-api/internal/charada/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	g := gin.New()
	RegisterCharadaRoutes(g, service.New(repo))
	return g, repo
}

func do(g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func mensagem(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["mensagem"]
}

func TestIndex(t *testing.T) {
	g, _ := newEngine(t)
	w := do(g, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CHARADAS API", w.Body.String())
}

func TestRandomEmptyCollection(t *testing.T) {
	g, _ := newEngine(t)
	w := do(g, http.MethodGet, "/charadas", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"mensagem":"Erro! Nenhuma charada encontrada"}`, w.Body.String())
}

func TestRandomReturnsStoredCharada(t *testing.T) {
	g, repo := newEngine(t)
	require.NoError(t, repo.Insert(context.Background(), charada.New(4, "Q", "A")))

	w := do(g, http.MethodGet, "/charadas", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"pergunta":"Q","resposta":"A"}`, w.Body.String())
}

func TestCreateScenario(t *testing.T) {
	g, repo := newEngine(t)
	ctx := context.Background()
	_, err := repo.RaiseCounter(ctx, 5)
	require.NoError(t, err)

	w := do(g, http.MethodPost, "/charadas", `{"pergunta":"Q","resposta":"A"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Charada adicionada com sucesso!", mensagem(t, w))

	cur, err := repo.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), cur)

	w = do(g, http.MethodGet, "/charadas/6", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":6,"pergunta":"Q","resposta":"A"}`, w.Body.String())
}

func TestCreateInvalid(t *testing.T) {
	g, repo := newEngine(t)
	ctx := context.Background()
	_, err := repo.RaiseCounter(ctx, 1)
	require.NoError(t, err)

	bodies := []string{
		`{"resposta":"A"}`,
		`{"pergunta":"Q"}`,
		`{"pergunta":"","resposta":"A"}`,
		`{}`,
		`not json`,
		"",
	}
	for _, b := range bodies {
		w := do(g, http.MethodPost, "/charadas", b)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %q", b)
		assert.Equal(t, "Erro! - Dados inválidos", mensagem(t, w))
	}

	cur, err := repo.CurrentID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cur)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetMissing(t *testing.T) {
	g, _ := newEngine(t)
	w := do(g, http.MethodGet, "/charadas/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"mensagem":"Erro! - Charada não encontrada"}`, w.Body.String())
}

func TestUpdate(t *testing.T) {
	g, repo := newEngine(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, charada.New(3, "old", "old")))

	w := do(g, http.MethodPut, "/charadas/3", `{"pergunta":"new q","resposta":"new a","id":42}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Charada alterada com sucesso!", mensagem(t, w))

	got, err := repo.Get(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "new q", got.Pergunta)
	assert.Equal(t, "new a", got.Resposta)

	w = do(g, http.MethodPut, "/charadas/3", `{"pergunta":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMissingDoesNotCreate(t *testing.T) {
	g, repo := newEngine(t)

	w := do(g, http.MethodPut, "/charadas/7", `{"pergunta":"q","resposta":"a"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Erro! - Charada não encontrada", mensagem(t, w))

	_, err := repo.Get(context.Background(), "7")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDelete(t *testing.T) {
	g, repo := newEngine(t)
	require.NoError(t, repo.Insert(context.Background(), charada.New(2, "q", "a")))

	w := do(g, http.MethodDelete, "/charadas/2", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Charada excluída com sucesso!", mensagem(t, w))

	w = do(g, http.MethodGet, "/charadas/2", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(g, http.MethodDelete, "/charadas/2", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Erro! - Charada não encontrada", mensagem(t, w))
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	g, repo := newEngine(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		prev, err := repo.CurrentID(ctx)
		require.NoError(t, err)

		w := do(g, http.MethodPost, "/charadas", `{"pergunta":"p","resposta":"r"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var got charada.Charada
		w = do(g, http.MethodGet, "/charadas/"+charada.KeyFor(prev+1), "")
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, prev+1, got.ID)
		assert.Equal(t, "p", got.Pergunta)
		assert.Equal(t, "r", got.Resposta)
	}
}

type brokenRepo struct {
	*repository.MemoryRepo
}

func (brokenRepo) List(context.Context) ([]*charada.Charada, error) {
	return nil, errors.New("connection reset")
}

func (brokenRepo) Get(context.Context, string) (*charada.Charada, error) {
	return nil, errors.New("connection reset")
}

func TestStoreFailureIsInternalError(t *testing.T) {
	g := gin.New()
	RegisterCharadaRoutes(g, service.New(brokenRepo{repository.NewMemoryRepo()}))

	for _, path := range []string{"/charadas", "/charadas/1"} {
		w := do(g, http.MethodGet, path, "")
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Erro! - Falha interna", mensagem(t, w))
	}
}

func TestCreateWithLaggingCounterKeepsExistingCharada(t *testing.T) {
	g, repo := newEngine(t)
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, charada.New(1, "live", "live")))

	w := do(g, http.MethodPost, "/charadas", `{"pergunta":"Q","resposta":"A"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Erro! - Falha interna", mensagem(t, w))

	w = do(g, http.MethodGet, "/charadas/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"pergunta":"live","resposta":"live"}`, w.Body.String())
}
