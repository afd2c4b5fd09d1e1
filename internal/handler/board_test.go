package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashchan-dev/ashchan/internal/domain"
	internal_errors "github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/pagination"
)

func TestCreateBoardHandler(t *testing.T) {
	h := &Handler{}
	router := chi.NewRouter()
	router.Post("/v1/boards", h.CreateBoard)

	requestBody := []byte(`{"name": "technology", "description": "tech talk"}`)

	t.Run("successful request", func(t *testing.T) {
		h.board = &MockBoardService{
			MockCreate: func(actor, name, description string) (domain.Board, error) {
				return domain.Board{Uuid: uuid.New(), Name: name, Description: description}, nil
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/boards", bytes.NewBuffer(requestBody))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var board domain.Board
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &board))
		assert.Equal(t, "technology", board.Name)
	})

	t.Run("non-admin", func(t *testing.T) {
		h.board = &MockBoardService{
			MockCreate: func(actor, name, description string) (domain.Board, error) {
				return domain.Board{}, internal_errors.Forbidden("Not allowed")
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/v1/boards", bytes.NewBuffer(requestBody))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/boards", bytes.NewBuffer([]byte(`{"description": "x"}`)))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetBoardsHandler(t *testing.T) {
	h := &Handler{}
	router := chi.NewRouter()
	router.Get("/v1/boards", h.GetBoards)

	t.Run("window params forwarded", func(t *testing.T) {
		var gotAfter, gotFirst *int
		h.board = &MockBoardService{
			MockList: func(after, before, first, last *int) (pagination.Connection[domain.Board], error) {
				gotAfter, gotFirst = after, first
				return pagination.Connection[domain.Board]{}, nil
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/boards?after=9&first=5", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, gotAfter)
		assert.Equal(t, 9, *gotAfter)
		require.NotNil(t, gotFirst)
		assert.Equal(t, 5, *gotFirst)
	})

	t.Run("non-integer cursor", func(t *testing.T) {
		h.board = &MockBoardService{}
		req := httptest.NewRequest(http.MethodGet, "/v1/boards?after=abc", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetBoardHandler(t *testing.T) {
	h := &Handler{}
	router := chi.NewRouter()
	router.Get("/v1/boards/{board}", h.GetBoard)

	boardUuid := uuid.New()

	t.Run("successful request", func(t *testing.T) {
		h.board = &MockBoardService{
			MockGet: func(u uuid.UUID) (domain.Board, error) {
				return domain.Board{Uuid: u, Name: "technology"}, nil
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/boards/"+boardUuid.String(), nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h.board = &MockBoardService{
			MockGet: func(u uuid.UUID) (domain.Board, error) {
				return domain.Board{}, internal_errors.NotFound("Board not found")
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/boards/"+boardUuid.String(), nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed uuid", func(t *testing.T) {
		h.board = &MockBoardService{}
		req := httptest.NewRequest(http.MethodGet, "/v1/boards/not-a-uuid", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSearchBoardsHandler(t *testing.T) {
	h := &Handler{}
	router := chi.NewRouter()
	router.Get("/v1/boards/search", h.SearchBoards)

	t.Run("successful request", func(t *testing.T) {
		h.board = &MockBoardService{
			MockSearchByKeyword: func(keyword string) ([]domain.Board, error) {
				assert.Equal(t, "techology", keyword)
				return []domain.Board{{Uuid: uuid.New(), Name: "technology"}}, nil
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/boards/search?q=techology", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("empty keyword", func(t *testing.T) {
		h.board = &MockBoardService{
			MockSearchByKeyword: func(keyword string) ([]domain.Board, error) {
				return nil, internal_errors.Validation("Search keyword must not be empty")
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/boards/search", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
