package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/plant-tracker/server/internal/api/types"
	"github.com/plant-tracker/server/internal/models"
	"github.com/plant-tracker/server/pkg/apperr"
	"github.com/plant-tracker/server/pkg/logger"
)

func TestMain(m *testing.M) {
	if _, err := logger.Init("error", "json"); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockPlantRepo struct {
	mock.Mock
}

func (m *mockPlantRepo) Create(ctx context.Context, obj *models.Plant) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockPlantRepo) GetByID(ctx context.Context, id string, dest *models.Plant) error {
	args := m.Called(ctx, id, dest)
	return args.Error(0)
}

func (m *mockPlantRepo) Save(ctx context.Context, obj *models.Plant) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *mockPlantRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPlantRepo) List(ctx context.Context) ([]models.Plant, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Plant), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestRouter(repo *mockPlantRepo) http.Handler {
	h := NewPlantsHandler(repo)
	r := chi.NewRouter()
	r.Route("/api/v1/plants", func(pr chi.Router) {
		pr.Get("/", h.List)
		pr.Post("/", h.Create)
		pr.Get("/{id}", h.Get)
		pr.Put("/{id}", h.Update)
		pr.Delete("/{id}", h.Delete)
	})
	return r
}

func perform(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) types.ErrorBody {
	t.Helper()
	var body types.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotEmpty(t, body.ErrorCode.Code, "error body must carry a code")
	require.NotEmpty(t, body.ErrorCode.Message, "error body must carry a message")
	return body
}

const plantID = "550e8400-e29b-41d4-a716-446655440000"

func storedPlant() models.Plant {
	watered := "2026-08-01T09:00:00Z"
	return models.Plant{
		ID:                  plantID,
		Name:                "Monstera",
		Species:             "Monstera deliciosa",
		LastWatered:         &watered,
		WateringInterval:    7,
		FertilizingInterval: 30,
		CreatedAt:           time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:           time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestListEmpty(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("List", mock.Anything).Return([]models.Plant{}, nil)

	rr := perform(t, newTestRouter(repo), http.MethodGet, "/api/v1/plants/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "[", strings.TrimSpace(rr.Body.String())[:1], "empty table must serialize as an array")
	var items []models.Plant
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Empty(t, items)
}

func TestListReturnsRecords(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("List", mock.Anything).Return([]models.Plant{storedPlant()}, nil)

	rr := perform(t, newTestRouter(repo), http.MethodGet, "/api/v1/plants/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var items []models.Plant
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, plantID, items[0].ID)
}

func TestListStorageError(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("List", mock.Anything).Return(nil, apperr.Wrap(errors.New("connection reset"), apperr.CodeInternal))

	rr := perform(t, newTestRouter(repo), http.MethodGet, "/api/v1/plants/", "")

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeErrorBody(t, rr)
	require.Equal(t, "error.internal_server_error", body.ErrorCode.Code)
	require.NotContains(t, rr.Body.String(), "connection reset", "internal causes never reach the body")
}

func TestGetByID(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("GetByID", mock.Anything, plantID, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*models.Plant) = storedPlant()
	}).Return(nil)

	rr := perform(t, newTestRouter(repo), http.MethodGet, "/api/v1/plants/"+plantID, "")

	require.Equal(t, http.StatusOK, rr.Code)
	var p models.Plant
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	require.Equal(t, plantID, p.ID)
	require.Equal(t, "Monstera", p.Name)
	require.NotContains(t, rr.Body.String(), "deleted_at")
}

func TestGetNotFound(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(apperr.New(apperr.CodeNotFound))

	rr := perform(t, newTestRouter(repo), http.MethodGet, "/api/v1/plants/"+plantID, "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "error.plant.not_found", decodeErrorBody(t, rr).ErrorCode.Code)
}

func TestCreate(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		p := args.Get(1).(*models.Plant)
		p.ID = plantID
		p.CreatedAt = time.Now().UTC()
		p.UpdatedAt = p.CreatedAt
	}).Return(nil)

	rr := perform(t, newTestRouter(repo), http.MethodPost, "/api/v1/plants/", `{
		"name": "Monstera",
		"species": "Monstera deliciosa",
		"wateringInterval": 7,
		"fertilizingInterval": 30,
		"notes": "near the window"
	}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	var p models.Plant
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	require.Equal(t, plantID, p.ID)
	require.Equal(t, "Monstera", p.Name)
	require.Equal(t, 7, p.WateringInterval)
	require.NotNil(t, p.Notes)
	require.False(t, p.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestCreateValidationRejection(t *testing.T) {
	repo := new(mockPlantRepo)

	rr := perform(t, newTestRouter(repo), http.MethodPost, "/api/v1/plants/", `{
		"name": "Monstera",
		"species": "Monstera deliciosa",
		"wateringInterval": "three",
		"fertilizingInterval": 30
	}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeErrorBody(t, rr)
	require.Equal(t, "error.input.validation_failed", body.ErrorCode.Code)
	require.NotEmpty(t, body.ValidationErrors)
	require.Equal(t, "wateringInterval", body.ValidationErrors[0].Path)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateMissingFields(t *testing.T) {
	repo := new(mockPlantRepo)

	rr := perform(t, newTestRouter(repo), http.MethodPost, "/api/v1/plants/", `{"name": "Monstera"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeErrorBody(t, rr)
	require.Equal(t, "error.input.validation_failed", body.ErrorCode.Code)
	paths := make([]string, 0, len(body.ValidationErrors))
	for _, is := range body.ValidationErrors {
		paths = append(paths, is.Path)
	}
	require.Contains(t, paths, "species")
	require.Contains(t, paths, "wateringInterval")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateZeroRowsWritten(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(apperr.New(apperr.CodeCreateFailed))

	rr := perform(t, newTestRouter(repo), http.MethodPost, "/api/v1/plants/", `{
		"name": "Monstera",
		"species": "Monstera deliciosa",
		"wateringInterval": 7,
		"fertilizingInterval": 30
	}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "error.plant.couldnt_be_created", decodeErrorBody(t, rr).ErrorCode.Code)
}

func TestUpdatePartial(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("GetByID", mock.Anything, plantID, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*models.Plant) = storedPlant()
	}).Return(nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	rr := perform(t, newTestRouter(repo), http.MethodPut, "/api/v1/plants/"+plantID, `{"wateringInterval": 10}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var p models.Plant
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	require.Equal(t, 10, p.WateringInterval)
	require.Equal(t, "Monstera", p.Name, "absent fields keep their stored values")
	require.Equal(t, 30, p.FertilizingInterval)
	repo.AssertExpectations(t)
}

func TestUpdateNotFound(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(apperr.New(apperr.CodeNotFound))

	rr := perform(t, newTestRouter(repo), http.MethodPut, "/api/v1/plants/"+plantID, `{"wateringInterval": 10}`)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "error.plant.not_found", decodeErrorBody(t, rr).ErrorCode.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateValidationShortCircuits(t *testing.T) {
	repo := new(mockPlantRepo)

	rr := perform(t, newTestRouter(repo), http.MethodPut, "/api/v1/plants/"+plantID, `{"wateringInterval": 0}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "error.input.validation_failed", decodeErrorBody(t, rr).ErrorCode.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("Delete", mock.Anything, plantID).Return(nil)

	rr := perform(t, newTestRouter(repo), http.MethodDelete, "/api/v1/plants/"+plantID, "")

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Empty(t, rr.Body.String())
	repo.AssertExpectations(t)
}

func TestDeleteNotFound(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("Delete", mock.Anything, plantID).Return(apperr.New(apperr.CodeNotFound))

	rr := perform(t, newTestRouter(repo), http.MethodDelete, "/api/v1/plants/"+plantID, "")

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "error.plant.not_found", decodeErrorBody(t, rr).ErrorCode.Code)
}

// Every non-2xx response must parse as the fixed error body shape.
func TestErrorBodyShapeStability(t *testing.T) {
	repo := new(mockPlantRepo)
	repo.On("List", mock.Anything).Return(nil, errors.New("boom"))
	repo.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(apperr.New(apperr.CodeNotFound))
	repo.On("Delete", mock.Anything, mock.Anything).Return(apperr.New(apperr.CodeNotFound))
	router := newTestRouter(repo)

	cases := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/v1/plants/", ""},
		{http.MethodGet, "/api/v1/plants/" + plantID, ""},
		{http.MethodPost, "/api/v1/plants/", `{"wateringInterval": "three"}`},
		{http.MethodPut, "/api/v1/plants/" + plantID, `not json`},
		{http.MethodDelete, "/api/v1/plants/" + plantID, ""},
	}
	for _, tc := range cases {
		rr := perform(t, router, tc.method, tc.path, tc.body)
		require.GreaterOrEqual(t, rr.Code, 400, "%s %s", tc.method, tc.path)

		var generic map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &generic), "%s %s", tc.method, tc.path)
		require.Contains(t, generic, "errorCode")
		for key := range generic {
			require.Contains(t, []string{"errorCode", "validationErrors"}, key)
		}
		decodeErrorBody(t, rr)
	}
}
