package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/apperr"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/service/views"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeViews overrides only the methods a test needs; others panic.
type fakeViews struct {
	ViewService

	farmErr   error
	created   *models.FarmInput
	estQuery  views.EstimationQuery
	deletedID string
}

func (f *fakeViews) FarmDetail(_ context.Context, id string) (*models.FarmDetail, error) {
	if f.farmErr != nil {
		return nil, f.farmErr
	}
	return &models.FarmDetail{Farm: models.Farm{ID: id, Name: "La Esperanza"}}, nil
}

func (f *fakeViews) CreateFarm(_ context.Context, in models.FarmInput) (*models.Farm, error) {
	f.created = &in
	return &models.Farm{ID: "f-new", Name: in.Name}, nil
}

func (f *fakeViews) Estimations(_ context.Context, q views.EstimationQuery) (views.ListResult[models.WeightEstimation], error) {
	f.estQuery = q
	return views.ListResult[models.WeightEstimation]{Items: []models.WeightEstimation{}, Page: 1, PageSize: 10}, nil
}

func (f *fakeViews) DeleteEstimation(_ context.Context, id string) error {
	f.deletedID = id
	return nil
}

type fakeSession struct {
	active    bool
	loggedOut bool
	loginErr  error
}

func (f *fakeSession) Login(_ context.Context, creds models.Credentials) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.active = true
	return &models.User{ID: "u1", Username: creds.Username}, nil
}

func (f *fakeSession) Logout() {
	f.active = false
	f.loggedOut = true
}

func (f *fakeSession) Current() (*models.User, error) {
	if !f.active {
		return nil, session.ErrNoSession
	}
	return &models.User{ID: "u1"}, nil
}

func (f *fakeSession) Active() bool { return f.active }

type fakeReports struct {
	got models.ReportRequest
}

func (f *fakeReports) Download(_ context.Context, req models.ReportRequest) (*models.Report, error) {
	f.got = req
	return &models.Report{Filename: "inventory_general_2026-01-02.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}, nil
}

type fakeCache struct{ cleared int }

func (f *fakeCache) Clear(context.Context) error {
	f.cleared++
	return nil
}

type fakeStatus struct{}

func (fakeStatus) MLStatus(context.Context) (*models.MLStatus, error) {
	return &models.MLStatus{Loaded: true, ModelVersion: "v2"}, nil
}

func (fakeStatus) SyncHealth(context.Context) (*models.SyncHealth, error) {
	return nil, apperr.New(apperr.KindNetwork, apperr.MsgNetwork)
}

type fixture struct {
	views   *fakeViews
	session *fakeSession
	reports *fakeReports
	cache   *fakeCache
	engine  *gin.Engine
}

func newFixture() *fixture {
	f := &fixture{
		views:   &fakeViews{},
		session: &fakeSession{active: true},
		reports: &fakeReports{},
		cache:   &fakeCache{},
	}
	h := New(f.views, f.session, f.reports, f.cache, fakeStatus{}, nil)

	r := gin.New()
	r.POST("/login", h.Login)
	r.GET("/remembered", h.Remembered)
	authed := r.Group("", h.RequireSession())
	authed.GET("/farms/:id", h.GetFarm)
	authed.POST("/farms", h.CreateFarm)
	authed.GET("/estimations", h.ListEstimations)
	authed.DELETE("/estimations/:id", h.DeleteEstimation)
	authed.POST("/estimations/cache/clear", h.ClearEstimationCache)
	authed.POST("/reports/:type", h.DownloadReport)
	authed.GET("/ml/status", h.MLStatus)
	authed.GET("/sync/health", h.SyncHealth)
	f.engine = r
	return f
}

func (f *fixture) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestWriteError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantLogout bool
	}{
		{name: "validation", err: apperr.Validation("name", "El nombre es requerido"), wantStatus: http.StatusBadRequest},
		{name: "not found", err: apperr.New(apperr.KindNotFound, "Finca no encontrada"), wantStatus: http.StatusNotFound},
		{name: "unauthorized", err: apperr.New(apperr.KindUnauthorized, apperr.MsgUnauthorized), wantStatus: http.StatusUnauthorized, wantLogout: true},
		{name: "network", err: apperr.New(apperr.KindNetwork, apperr.MsgNetwork), wantStatus: http.StatusBadGateway},
		{name: "server", err: apperr.New(apperr.KindServer, apperr.MsgServer), wantStatus: http.StatusBadGateway},
		{name: "untyped", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			f.views.farmErr = tt.err

			rec := f.do(http.MethodGet, "/farms/f1", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLogout, f.session.loggedOut)

			body := decode(t, rec)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestWriteError_IncludesField(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.views.farmErr = apperr.Validation("latitude", "La latitud debe estar entre -90 y 90")

	rec := f.do(http.MethodGet, "/farms/f1", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "latitude", body["field"])
	assert.Equal(t, "La latitud debe estar entre -90 y 90", body["error"])
}

func TestRequireSession(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.session.active = false

	rec := f.do(http.MethodGet, "/farms/f1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apperr.MsgUnauthorized, decode(t, rec)["error"])
}

func TestCreateFarm(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		rec := f.do(http.MethodPost, "/farms", `{"name":"Norte","owner_id":"u1","latitude":-17.8,"longitude":-63.2,"capacity":200}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.NotNil(t, f.views.created)
		assert.Equal(t, "Norte", f.views.created.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		rec := f.do(http.MethodPost, "/farms", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, f.views.created)
	})
}

func TestListEstimations_BindsQuery(t *testing.T) {
	t.Parallel()

	f := newFixture()
	rec := f.do(http.MethodGet, "/estimations?page=2&page_size=25&farm_id=f1&breed=angus", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 2, f.views.estQuery.Page)
	assert.Equal(t, 25, f.views.estQuery.PageSize)
	assert.Equal(t, "f1", f.views.estQuery.FarmID)
	assert.Equal(t, models.BreedAngus, f.views.estQuery.Breed)

	rec = f.do(http.MethodGet, "/estimations?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEstimationMutations(t *testing.T) {
	t.Parallel()

	f := newFixture()

	rec := f.do(http.MethodDelete, "/estimations/w9", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "w9", f.views.deletedID)

	rec = f.do(http.MethodPost, "/estimations/cache/clear", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, f.cache.cleared)
}

func TestDownloadReport(t *testing.T) {
	t.Parallel()

	f := newFixture()
	rec := f.do(http.MethodPost, "/reports/inventory", `{"format":"pdf","farm_id":"f1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "inventory", f.reports.got.Type)
	assert.Equal(t, models.ReportPDF, f.reports.got.Format)
	assert.Equal(t, "f1", f.reports.got.FarmID)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="inventory_general_2026-01-02.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF", rec.Body.String())
}

func TestStatusEndpoints(t *testing.T) {
	t.Parallel()

	f := newFixture()

	rec := f.do(http.MethodGet, "/ml/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["loaded"])

	rec = f.do(http.MethodGet, "/sync/health", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, apperr.MsgNetwork, decode(t, rec)["error"])
}

func TestLogin_RememberCookie(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.session.active = false

	rec := f.do(http.MethodPost, "/login", `{"username":"ana","password":"secreto","remember":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.session.active)

	var remembered *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.RememberCookie {
			remembered = c
		}
	}
	require.NotNil(t, remembered)
	assert.Equal(t, int(session.RememberFor.Seconds()), remembered.MaxAge)

	rec = f.do(http.MethodGet, "/remembered", "", remembered)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ana", body["username"])
	assert.Equal(t, "secreto", body["password"])
}

func TestLogin_Failure(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.session.active = false
	f.session.loginErr = apperr.New(apperr.KindUnauthorized, "Credenciales inválidas")

	rec := f.do(http.MethodPost, "/login", `{"username":"ana","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Credenciales inválidas", decode(t, rec)["error"])
}

func TestRemembered_NoCookie(t *testing.T) {
	t.Parallel()

	f := newFixture()
	rec := f.do(http.MethodGet, "/remembered", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
