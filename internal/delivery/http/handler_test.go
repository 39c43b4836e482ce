package http_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpdelivery "github.com/Arjun-1431/bharttapp-addproduct/internal/delivery/http"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/service"
)

type svcStub struct {
	submit func(ctx context.Context, in service.SubmitInput) (models.Order, error)
	getAll func(ctx context.Context) ([]models.Order, error)
}

var _ service.Order = (*svcStub)(nil)

func (s *svcStub) SubmitOrder(ctx context.Context, in service.SubmitInput) (models.Order, error) {
	if s.submit != nil {
		return s.submit(ctx, in)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}

func (s *svcStub) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	if s.getAll != nil {
		return s.getAll(ctx)
	}
	return nil, nil
}

type filePart struct {
	field       string
	name        string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...filePart) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"name":           "Asha",
		"phone":          "9876543210",
		"address":        "MG Road",
		"standee_type":   "3 QR Standee",
		"icons_selected": "Google,UPI,Whatsapp",
		"other_icons":    "Paytm",
	}
}

func TestSubmitOrder_OK(t *testing.T) {
	var got service.SubmitInput
	s := &svcStub{
		submit: func(_ context.Context, in service.SubmitInput) (models.Order, error) {
			got = in
			return models.Order{Name: in.Name}, nil
		},
	}
	r := httpdelivery.NewHandler(s).InitRoutes()

	body, ct := multipartBody(t, validFields(),
		filePart{field: "logo", name: "logo.png", contentType: "image/png", data: []byte("logo-bytes")},
		filePart{field: "upi_qr", name: "qr.jpg", contentType: "image/jpeg", data: []byte("qr-bytes")},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/order", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
	require.Contains(t, w.Body.String(), "Order submitted successfully")

	require.Equal(t, "Asha", got.Name)
	require.Equal(t, "9876543210", got.Phone)
	require.Equal(t, "3 QR Standee", got.StandeeType)
	require.Equal(t, []string{"Google", "UPI", "Whatsapp"}, got.IconsSelected)
	require.Equal(t, "Paytm", got.OtherIcons)

	require.NotNil(t, got.Logo)
	require.Equal(t, "logo.png", got.Logo.Name)
	require.Equal(t, "image/png", got.Logo.ContentType)
	require.Equal(t, []byte("logo-bytes"), got.Logo.Data)

	require.NotNil(t, got.UpiQR)
	require.Equal(t, "image/jpeg", got.UpiQR.ContentType)
}

func TestSubmitOrder_MissingLogoReaches400(t *testing.T) {
	s := &svcStub{
		submit: func(_ context.Context, in service.SubmitInput) (models.Order, error) {
			require.Nil(t, in.Logo)
			return models.Order{}, &service.ValidationError{
				Field:   "required",
				Message: "Name, Phone, Standee type and Logo are required.",
			}
		},
	}
	r := httpdelivery.NewHandler(s).InitRoutes()

	body, ct := multipartBody(t, validFields())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/order", body)
	req.Header.Set("Content-Type", ct)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Name, Phone, Standee type and Logo are required.")
}

func TestSubmitOrder_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", &service.ValidationError{Field: "phone", Message: "Phone number must be 10 digits."}, http.StatusBadRequest, "Phone number must be 10 digits."},
		{"logo upload", &service.UploadError{Asset: "logo", Err: fmt.Errorf("boom")}, http.StatusInternalServerError, "Logo upload failed"},
		{"qr upload", &service.UploadError{Asset: "upi_qr", Err: fmt.Errorf("boom")}, http.StatusInternalServerError, "UPI QR upload failed"},
		{"persistence", &service.PersistenceError{Err: fmt.Errorf("boom")}, http.StatusInternalServerError, "Database insert failed"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "Unexpected error occurred"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &svcStub{
				submit: func(context.Context, service.SubmitInput) (models.Order, error) {
					return models.Order{}, tc.err
				},
			}
			r := httpdelivery.NewHandler(s).InitRoutes()

			body, ct := multipartBody(t, validFields(),
				filePart{field: "logo", name: "logo.png", contentType: "image/png", data: []byte("x")})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/order", body)
			req.Header.Set("Content-Type", ct)
			r.ServeHTTP(w, req)

			require.Equal(t, tc.wantStatus, w.Code)
			require.Contains(t, w.Body.String(), tc.wantMsg)
			require.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestGetAllOrders_OK(t *testing.T) {
	qr := "https://res.example.com/qr.png"
	s := &svcStub{
		getAll: func(context.Context) ([]models.Order, error) {
			return []models.Order{{
				Name:          "Asha",
				Phone:         "9876543210",
				StandeeType:   "3 QR Standee",
				IconsSelected: []string{"Google", "UPI", "Whatsapp"},
				LogoURL:       "https://res.example.com/logo.png",
				UpiQrURL:      &qr,
				CreatedAt:     time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
			}}, nil
		},
	}
	r := httpdelivery.NewHandler(s).InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	require.Contains(t, w.Body.String(), `"data":[`)
	require.Contains(t, w.Body.String(), `"phone":"9876543210"`)
	require.Contains(t, w.Body.String(), `"icons_selected":["Google","UPI","Whatsapp"]`)
}

func TestGetAllOrders_Error_500(t *testing.T) {
	s := &svcStub{
		getAll: func(context.Context) ([]models.Order, error) {
			return nil, fmt.Errorf("mongo down")
		},
	}
	r := httpdelivery.NewHandler(s).InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Failed to fetch orders")
}

func TestHandler_NoRoute(t *testing.T) {
	r := httpdelivery.NewHandler(&svcStub{}).InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		err := s.Run(":0", handler)
		if err != nil && err != http.ErrServerClosed {
			t.Error(err)
		}
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
}
