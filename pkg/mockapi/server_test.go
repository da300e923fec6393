package mockapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/pharma-admin/pkg/httpapi"
	"github.com/iota-uz/pharma-admin/pkg/restclient"
)

type doctor struct {
	ID             restclient.ID `json:"id"`
	Name           string        `json:"name"`
	HospitalClinic string        `json:"hospital_clinic"`
	Designations   []string      `json:"designations"`
	Photo          string        `json:"photo"`
	Status         bool          `json:"status"`
}

type doctorInput struct {
	Name           string   `json:"name"`
	HospitalClinic string   `json:"hospital_clinic"`
	Designations   []string `json:"designations"`
	Status         bool     `json:"status"`
}

func setup(t *testing.T, envelope bool) (*Server, *restclient.Resource[doctor], *restclient.Client) {
	t.Helper()
	srv := New(Options{})
	Register(srv.Backend, "doctor", CollectionOptions[doctor]{
		Label:    "Doctor",
		Envelope: envelope,
		Unique:   []string{"name"},
		Validate: func(d doctor) error {
			if strings.TrimSpace(d.Name) == "" {
				return errors.New("Name is required")
			}
			return nil
		},
	})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	client := restclient.New(restclient.Options{BaseURL: ts.URL + "/", RequestIDHeader: "X-Request-ID"})
	return srv, restclient.NewResource[doctor](client, "doctor"), client
}

func TestBackend_CRUDRoundTrip(t *testing.T) {
	t.Parallel()

	for _, envelope := range []bool{false, true} {
		srv, res, _ := setup(t, envelope)
		ctx := context.Background()

		created, err := res.Create(ctx, restclient.NewPayload(doctorInput{
			Name:           "Dr. Rao",
			HospitalClinic: "City Care",
			Designations:   []string{"MBBS", "MD"},
		}))
		require.NoError(t, err)
		require.Equal(t, restclient.ID("1"), created.ID)
		require.Equal(t, []string{"MBBS", "MD"}, created.Designations)

		got, err := res.Get(ctx, "1")
		require.NoError(t, err)
		require.Equal(t, created, got)

		page, err := res.List(ctx, restclient.Query{})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)

		updated, err := res.Update(ctx, "1", restclient.NewPayload(doctorInput{Name: "Dr. Rao", HospitalClinic: "Care Plus"}))
		require.NoError(t, err)
		require.Equal(t, "Care Plus", updated.HospitalClinic)

		toggled, err := res.SetStatus(ctx, "1", true)
		require.NoError(t, err)
		require.True(t, toggled.Status)
		require.Equal(t, "Care Plus", toggled.HospitalClinic)
		require.Equal(t, restclient.ID("1"), toggled.ID)

		require.NoError(t, res.Remove(ctx, "1"))
		_, err = res.Get(ctx, "1")
		require.True(t, restclient.IsKind(err, restclient.KindStatus))
		require.Equal(t, http.StatusNotFound, restclient.StatusCode(err))
		require.Equal(t, "Doctor not found", restclient.Message(err))
		require.Empty(t, srv.Backend.Records("doctor"))
	}
}

func TestBackend_MultipartUploadAndAsset(t *testing.T) {
	t.Parallel()

	_, res, client := setup(t, false)
	ctx := context.Background()
	png := []byte("\x89PNG\r\n\x1a\nrest")

	created, err := res.Create(ctx, restclient.NewPayload(doctorInput{
		Name:           "Dr. Rao",
		HospitalClinic: "City Care",
		Designations:   []string{"MBBS"},
	}, restclient.FilePart{Field: "photo", FileName: "rao.png", ContentType: "image/png", Data: png}))
	require.NoError(t, err)
	require.Equal(t, "City Care", created.HospitalClinic)
	require.Equal(t, []string{"MBBS"}, created.Designations)
	require.Equal(t, "/media/doctor/1/photo/rao.png", created.Photo)

	resp, err := http.Get(client.AssetURL(created.Photo))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, png, body)

	updated, err := res.Update(ctx, "1", restclient.NewPayload(doctorInput{Name: "Dr. Rao", HospitalClinic: "City Care"}))
	require.NoError(t, err)
	require.Equal(t, created.Photo, updated.Photo)
}

func TestBackend_Pagination(t *testing.T) {
	t.Parallel()

	srv, res, _ := setup(t, false)
	for i := 0; i < 25; i++ {
		srv.Backend.Seed("doctor", Record{"name": "Doctor", "status": false})
	}

	page, err := res.List(context.Background(), restclient.Query{Page: 3, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 25, page.TotalItems)
	require.Len(t, page.Data, 5)
	require.Equal(t, restclient.ID("21"), page.Data[0].ID)
}

func TestBackend_Rejections(t *testing.T) {
	t.Parallel()

	srv, res, _ := setup(t, false)
	ctx := context.Background()

	_, err := res.Create(ctx, restclient.NewPayload(doctorInput{}))
	require.Equal(t, "Name is required", restclient.Message(err))
	require.Equal(t, http.StatusBadRequest, restclient.StatusCode(err))

	_, err = res.Create(ctx, restclient.NewPayload(doctorInput{Name: "Dr. Rao"}))
	require.NoError(t, err)
	_, err = res.Create(ctx, restclient.NewPayload(doctorInput{Name: "dr. rao"}))
	require.Equal(t, http.StatusConflict, restclient.StatusCode(err))
	require.Equal(t, "name dr. rao already exists", restclient.Message(err))

	srv.Backend.FailNext("doctor", http.StatusBadGateway, httpapi.ErrorEnvelope{})
	_, err = res.List(ctx, restclient.Query{})
	require.Equal(t, restclient.FallbackMessage, restclient.Message(err))

	srv.Backend.FailNext("doctor", http.StatusInternalServerError, httpapi.ErrorEnvelope{Message: "Database unavailable", Error: "pg down"})
	_, err = res.List(ctx, restclient.Query{})
	require.Equal(t, "Database unavailable", restclient.Message(err))

	_, err = res.List(ctx, restclient.Query{})
	require.NoError(t, err)
}

func TestServer_MetricsAndRequestID(t *testing.T) {
	t.Parallel()

	srv, res, _ := setup(t, false)
	_, err := res.List(context.Background(), restclient.Query{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/doctor/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/prometheus", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `mock_api_requests_total{code="200",method="GET",route="/api/{resource}/"}`)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown/", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBackend_MultipartUpdateReplacesLists(t *testing.T) {
	t.Parallel()

	_, res, _ := setup(t, false)
	ctx := context.Background()
	photo := func(name string) restclient.FilePart {
		return restclient.FilePart{Field: "photo", FileName: name, ContentType: "image/png", Data: []byte("\x89PNG\r\n\x1a\n")}
	}

	_, err := res.Create(ctx, restclient.NewPayload(doctorInput{Name: "Dr. Rao", Designations: []string{"MBBS", "MD", "DM"}}, photo("a.png")))
	require.NoError(t, err)

	updated, err := res.Update(ctx, "1", restclient.NewPayload(doctorInput{Name: "Dr. Rao", Designations: []string{"MD"}}, photo("b.png")))
	require.NoError(t, err)
	require.Equal(t, []string{"MD"}, updated.Designations)

	updated, err = res.Update(ctx, "1", restclient.NewPayload(doctorInput{Name: "Dr. Rao"}, photo("c.png")))
	require.NoError(t, err)
	require.Empty(t, updated.Designations)
	require.Equal(t, "/media/doctor/1/photo/c.png", updated.Photo)
}
