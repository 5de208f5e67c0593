package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razorspoint/timeline-backend-go/internal/models"
	"github.com/razorspoint/timeline-backend-go/internal/service"
)

type fakeLocationRepo struct {
	locations map[int64]*models.NamedLocation
	nextID    int64
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[int64]*models.NamedLocation), nextID: 1}
}

func (r *fakeLocationRepo) List() ([]models.NamedLocation, error) {
	var out []models.NamedLocation
	for _, l := range r.locations {
		out = append(out, *l)
	}
	return out, nil
}

func (r *fakeLocationRepo) ListBusinesses() ([]models.NamedLocation, error) {
	var out []models.NamedLocation
	for _, l := range r.locations {
		if l.Kind == models.KindBusiness {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) GetHome() (*models.NamedLocation, error) {
	for _, l := range r.locations {
		if l.Kind == models.KindHome {
			return l, nil
		}
	}
	return nil, fmt.Errorf("no home location configured")
}

func (r *fakeLocationRepo) GetByID(id int64) (*models.NamedLocation, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, fmt.Errorf("location %d not found", id)
	}
	return l, nil
}

func (r *fakeLocationRepo) Create(loc *models.NamedLocation) error {
	loc.ID = r.nextID
	r.nextID++
	cp := *loc
	r.locations[loc.ID] = &cp
	return nil
}

func (r *fakeLocationRepo) Update(loc *models.NamedLocation) error {
	if _, ok := r.locations[loc.ID]; !ok {
		return fmt.Errorf("location %d not found", loc.ID)
	}
	cp := *loc
	r.locations[loc.ID] = &cp
	return nil
}

func (r *fakeLocationRepo) Delete(id int64) error {
	if _, ok := r.locations[id]; !ok {
		return fmt.Errorf("location %d not found", id)
	}
	delete(r.locations, id)
	return nil
}

func setupLocationRouter(repo *fakeLocationRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLocationHandler(service.NewLocationService(repo))

	r := gin.New()
	r.GET("/api/v1/locations", h.List)
	r.POST("/api/v1/locations", h.Create)
	r.GET("/api/v1/locations/:id", h.Get)
	r.PUT("/api/v1/locations/:id", h.Update)
	r.DELETE("/api/v1/locations/:id", h.Delete)
	return r
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) json.RawMessage {
	t.Helper()
	var env struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body.Bytes(), &env))
	return env.Data
}

func TestLocationHandler_List(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.Create(&models.NamedLocation{Name: "Home", Kind: models.KindHome, Lat: 48.1, Lon: 11.5, RadiusKm: 0.5})
	repo.Create(&models.NamedLocation{Name: "Office", Kind: models.KindBusiness, Lat: 48.2, Lon: 11.6, RadiusKm: 0.3})
	router := setupLocationRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w.Body)

	var payload struct {
		Data  []models.NamedLocation `json:"data"`
		Count int                    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, 2, payload.Count)
	assert.Len(t, payload.Data, 2)
}

func TestLocationHandler_Create(t *testing.T) {
	repo := newFakeLocationRepo()
	router := setupLocationRouter(repo)

	body := `{"name":"Office","kind":"business","lat":48.2,"lon":11.6,"radius_km":0.3,"travel_reason":"client work"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeEnvelope(t, w.Body)

	var loc models.NamedLocation
	require.NoError(t, json.Unmarshal(data, &loc))
	assert.Equal(t, int64(1), loc.ID)
	assert.Equal(t, "Office", loc.Name)
}

func TestLocationHandler_CreateInvalid(t *testing.T) {
	repo := newFakeLocationRepo()
	router := setupLocationRouter(repo)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing name", `{"kind":"business","lat":1,"lon":1,"radius_km":0.3}`},
		{"bad kind", `{"name":"X","kind":"warehouse","lat":1,"lon":1,"radius_km":0.3}`},
		{"zero radius", `{"name":"X","kind":"business","lat":1,"lon":1,"radius_km":0}`},
		{"latitude out of range", `{"name":"X","kind":"business","lat":91,"lon":1,"radius_km":0.3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/locations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLocationHandler_SecondHomeRejected(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.Create(&models.NamedLocation{Name: "Home", Kind: models.KindHome, Lat: 48.1, Lon: 11.5, RadiusKm: 0.5})
	router := setupLocationRouter(repo)

	body := `{"name":"Second Home","kind":"home","lat":48.3,"lon":11.7,"radius_km":0.5}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationHandler_Get(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.Create(&models.NamedLocation{Name: "Office", Kind: models.KindBusiness, Lat: 48.2, Lon: 11.6, RadiusKm: 0.3})
	router := setupLocationRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/locations/99", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/locations/abc", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLocationHandler_Update(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.Create(&models.NamedLocation{Name: "Office", Kind: models.KindBusiness, Lat: 48.2, Lon: 11.6, RadiusKm: 0.3})
	router := setupLocationRouter(repo)

	body := `{"name":"Office v2","kind":"business","lat":48.2,"lon":11.6,"radius_km":0.4}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/locations/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	stored, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Office v2", stored.Name)
	assert.Equal(t, 0.4, stored.RadiusKm)
}

func TestLocationHandler_UpdateMissing(t *testing.T) {
	repo := newFakeLocationRepo()
	router := setupLocationRouter(repo)

	body := `{"name":"Office","kind":"business","lat":48.2,"lon":11.6,"radius_km":0.3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/locations/42", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLocationHandler_Delete(t *testing.T) {
	repo := newFakeLocationRepo()
	repo.Create(&models.NamedLocation{Name: "Office", Kind: models.KindBusiness, Lat: 48.2, Lon: 11.6, RadiusKm: 0.3})
	router := setupLocationRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/locations/1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := repo.GetByID(1)
	assert.Error(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/locations/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
