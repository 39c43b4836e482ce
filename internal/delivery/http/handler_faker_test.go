package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	httpdelivery "github.com/Arjun-1431/bharttapp-addproduct/internal/delivery/http"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
)

func fakeOrder(f *gofakeit.Faker) models.Order {
	icons := []string{}
	for _, ic := range models.Icons {
		if f.Bool() {
			icons = append(icons, ic)
		}
	}
	var qr *string
	if f.Bool() {
		u := f.URL()
		qr = &u
	}
	return models.Order{
		Name:          f.Name(),
		Phone:         f.DigitN(10),
		Address:       f.Street(),
		StandeeType:   f.RandomString(models.StandeeTypes),
		IconsSelected: icons,
		OtherIcons:    "",
		LogoURL:       f.URL(),
		UpiQrURL:      qr,
		CreatedAt:     time.Now().UTC().Add(-time.Duration(f.Number(0, 720)) * time.Hour),
	}
}

func TestGetAllOrders_FakeBatch(t *testing.T) {
	f := gofakeit.New(42)

	orders := make([]models.Order, 0, 25)
	for i := 0; i < 25; i++ {
		orders = append(orders, fakeOrder(f))
	}

	s := &svcStub{
		getAll: func(context.Context) ([]models.Order, error) { return orders, nil },
	}
	r := httpdelivery.NewHandler(s).InitRoutes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Success bool           `json:"success"`
		Data    []models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.True(t, out.Success)
	require.Len(t, out.Data, 25)

	for i := range orders {
		require.Equal(t, orders[i].Name, out.Data[i].Name)
		require.Equal(t, orders[i].Phone, out.Data[i].Phone)
		require.Equal(t, orders[i].StandeeType, out.Data[i].StandeeType)
	}
}
