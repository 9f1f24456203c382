package cattle

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/config"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/apperr"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/pagination"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()

	hits := new(atomic.Int32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return NewClient(config.APIConfig{BaseURL: srv.URL + "/", Timeout: 5 * time.Second}, nil), hits
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_HeadersAndToken(t *testing.T) {
	t.Parallel()

	var gotReqID, gotAuth, gotType string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get(requestIDHeader)
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		writeJSON(w, http.StatusOK, `{"id":"f1","name":"Norte"}`)
	})

	_, err := client.GetFarm(context.Background(), "f1")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "application/json", gotType)
	_, err = uuid.Parse(gotReqID)
	assert.NoError(t, err)

	client.SetToken("tok-123")
	_, err = client.GetFarm(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_ErrorTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		wantKind apperr.Kind
		wantMsg  string
	}{
		{name: "404 without detail uses resource message", status: 404, body: `{}`, wantKind: apperr.KindNotFound, wantMsg: "Finca no encontrada"},
		{name: "422 list detail", status: 422, body: `{"detail":[{"loc":["body","capacity"],"msg":"must be positive"}]}`, wantKind: apperr.KindValidation, wantMsg: "must be positive"},
		{name: "400 object message", status: 400, body: `{"detail":{"message":"Nombre ya registrado"}}`, wantKind: apperr.KindValidation, wantMsg: "Nombre ya registrado"},
		{name: "401", status: 401, body: `{"detail":"Token expirado"}`, wantKind: apperr.KindUnauthorized, wantMsg: "Token expirado"},
		{name: "502 plain text", status: 502, body: "bad gateway", wantKind: apperr.KindServer, wantMsg: apperr.MsgServer},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				if tt.body == "bad gateway" {
					w.WriteHeader(tt.status)
					_, _ = io.WriteString(w, tt.body)
					return
				}
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.GetFarm(context.Background(), "missing")
			require.Error(t, err)

			var de *apperr.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantKind, de.Kind)
			assert.Equal(t, tt.wantMsg, de.Message)
			assert.Equal(t, tt.status, de.Status)
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(config.APIConfig{BaseURL: url, Timeout: time.Second}, nil)
	_, err := client.ListRoles(context.Background(), OffsetQuery{})
	require.ErrorIs(t, err, apperr.ErrNetwork)
	assert.Equal(t, apperr.MsgNetwork, err.Error())
}

func TestCreateFarm_InvalidInputSkipsNetwork(t *testing.T) {
	t.Parallel()

	client, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":"x"}`)
	})

	_, err := client.CreateFarm(context.Background(), models.FarmInput{
		Name: "Norte", OwnerID: "u1", Latitude: 100, Longitude: -63, Capacity: 10,
	})
	require.ErrorIs(t, err, apperr.ErrValidation)

	var de *apperr.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "latitude", de.Field)
	assert.Equal(t, int32(0), hits.Load())
}

func TestCreateFarm_OutOfRangeLatitudeWinsOverEmptyName(t *testing.T) {
	t.Parallel()

	client, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, `{"id":"x"}`)
	})

	_, err := client.CreateFarm(context.Background(), models.FarmInput{
		Name: "", OwnerID: "x", Latitude: 100, Longitude: 0, Capacity: 5,
	})

	var de *apperr.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, apperr.KindValidation, de.Kind)
	assert.Equal(t, "latitude", de.Field)
	assert.Contains(t, de.Message, "-90 y 90")
	assert.Equal(t, int32(0), hits.Load())
}

func TestCreateFarm_SendsBody(t *testing.T) {
	t.Parallel()

	var got models.FarmInput
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/farm", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusCreated, `{"id":"f9","name":"Norte","capacity":10}`)
	})

	in := models.FarmInput{Name: "Norte", OwnerID: "u1", Latitude: -17.7, Longitude: -63.1, Capacity: 10}
	farm, err := client.CreateFarm(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "f9", farm.ID)
	assert.Equal(t, in, got)
}

func TestListQueryConventions(t *testing.T) {
	t.Parallel()

	t.Run("offset endpoints", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/farm", r.URL.Path)
			assert.Equal(t, "40", r.URL.Query().Get("skip"))
			assert.Equal(t, "20", r.URL.Query().Get("limit"))
			assert.Equal(t, "u1", r.URL.Query().Get("owner_id"))
			writeJSON(w, http.StatusOK, `{"total":41,"farms":[{"id":"f41"}],"page":3,"page_size":20}`)
		})

		page, err := client.ListFarms(context.Background(), OffsetFromPage(3, 20), FarmFilter{OwnerID: "u1"})
		require.NoError(t, err)
		assert.Equal(t, 41, page.Total)
		assert.Equal(t, 3, page.Page)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "f41", page.Items[0].ID)
	})

	t.Run("page endpoints default", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/animals", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("page"))
			assert.Equal(t, "20", r.URL.Query().Get("page_size"))
			assert.Equal(t, "f1", r.URL.Query().Get("farm_id"))
			assert.False(t, r.URL.Query().Has("breed"))
			writeJSON(w, http.StatusOK, `{"total":0,"animals":[]}`)
		})

		page, err := client.ListAnimals(context.Background(), PageQuery{}, AnimalFilter{FarmID: "f1"})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})
}

func TestDecodePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantItems int
		wantTotal int
		malformed bool
	}{
		{name: "keyed envelope", body: `{"total":3,"weighings":[{"id":"a"},{"id":"b"}],"page":1,"page_size":2}`, wantItems: 2, wantTotal: 3},
		{name: "items envelope", body: `{"total":1,"items":[{"id":"a"}]}`, wantItems: 1, wantTotal: 1},
		{name: "bare array", body: `[{"id":"a"},{"id":"b"},{"id":"c"}]`, wantItems: 3},
		{name: "float total", body: `{"total":12.0,"weighings":[{"id":"a"}]}`, wantItems: 1, wantTotal: 12},
		{name: "string total", body: `{"total":"7","weighings":[{"id":"a"}]}`, wantItems: 1, wantTotal: 7},
		{name: "non-numeric total", body: `{"total":"many","weighings":[{"id":"a"}]}`, wantItems: 1, wantTotal: 0},
		{name: "missing list", body: `{"total":5}`, malformed: true},
		{name: "null list", body: `{"weighings":null}`, malformed: true},
		{name: "empty body", body: ``, malformed: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := decodePage[models.WeightEstimation]([]byte(tt.body), "weighings")
			if tt.malformed {
				require.ErrorIs(t, err, pagination.ErrMalformedPage)
				return
			}
			require.NoError(t, err)
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, tt.wantTotal, page.Total)
		})
	}
}

func TestGenerateReport(t *testing.T) {
	t.Parallel()

	t.Run("returns binary body", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/reports/inventory", r.URL.Path)
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "excel", body["format"])
			assert.Equal(t, "f1", body["farm_id"])
			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			_, _ = w.Write([]byte("PK\x03\x04"))
		})

		data, err := client.GenerateReport(context.Background(), models.ReportRequest{
			Type: "inventory", Format: models.ReportExcel, FarmID: "f1",
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("PK\x03\x04"), data)
	})

	t.Run("unknown type rejected locally", func(t *testing.T) {
		t.Parallel()

		client, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		_, err := client.GenerateReport(context.Background(), models.ReportRequest{Type: "weather", Format: models.ReportPDF})
		require.ErrorIs(t, err, apperr.ErrValidation)
		assert.Equal(t, int32(0), hits.Load())
	})
}

func TestLoginAndMe(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			writeJSON(w, http.StatusOK, `{"access_token":"abc","token_type":"bearer"}`)
		case "/api/v1/auth/me":
			if r.Header.Get("Authorization") != "Bearer abc" {
				writeJSON(w, http.StatusUnauthorized, `{"detail":"Not authenticated"}`)
				return
			}
			writeJSON(w, http.StatusOK, `{"id":"u1","username":"ana"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	_, err := client.Me(context.Background())
	require.ErrorIs(t, err, apperr.ErrUnauthorized)

	token, err := client.Login(context.Background(), models.Credentials{Username: "ana", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Empty(t, client.Token())

	client.SetToken(token.AccessToken)
	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
}
