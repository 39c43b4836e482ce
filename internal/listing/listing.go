// Package listing is the admin review view: client-side search and
// pagination over the fetched order set plus image downloads.
package listing

import (
	"context"
	"strings"
	"time"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/cache"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
)

const PageSize = 20

// Fetcher is the slice of the API client the view needs.
type Fetcher interface {
	FetchOrders(ctx context.Context) ([]models.Order, error)
	Download(ctx context.Context, url string) ([]byte, string, error)
}

type View struct {
	api    Fetcher
	images *cache.Cache

	orders   []models.Order
	filtered []models.Order
	query    string
	page     int
}

func NewView(api Fetcher) *View {
	return &View{
		api:    api,
		images: cache.New(cache.WithTTL(5 * time.Minute)),
		page:   1,
	}
}

func (v *View) Close() { v.images.Close() }

// Refresh refetches the listing and reapplies the current search.
func (v *View) Refresh(ctx context.Context) error {
	orders, err := v.api.FetchOrders(ctx)
	if err != nil {
		return err
	}
	v.orders = orders
	v.applyFilter()
	return nil
}

// Search filters on a case-insensitive substring of name or phone and
// resets to the first page.
func (v *View) Search(query string) {
	v.query = query
	v.applyFilter()
}

func (v *View) applyFilter() {
	lower := strings.ToLower(v.query)
	out := make([]models.Order, 0, len(v.orders))
	for _, o := range v.orders {
		if strings.Contains(strings.ToLower(o.Name), lower) ||
			strings.Contains(strings.ToLower(o.Phone), lower) {
			out = append(out, o)
		}
	}
	v.filtered = out
	v.page = 1
}

func (v *View) TotalPages() int {
	return (len(v.filtered) + PageSize - 1) / PageSize
}

func (v *View) Page() int { return v.page }

func (v *View) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	if tp := v.TotalPages(); tp > 0 && n > tp {
		n = tp
	}
	v.page = n
}

// Visible returns the current page of the filtered set.
func (v *View) Visible() []models.Order {
	start := (v.page - 1) * PageSize
	if start >= len(v.filtered) {
		return []models.Order{}
	}
	end := start + PageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}

var extByMIME = map[string]string{
	"image/jpeg":    "jpg",
	"image/png":     "png",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// FileExtension maps a served content type to a file extension, defaulting
// to png when unrecognized.
func FileExtension(mimeType string) string {
	if ext, ok := extByMIME[mimeType]; ok {
		return ext
	}
	return "png"
}

type image struct {
	data        []byte
	contentType string
}

// DownloadLogo fetches an order's logo and names it after the phone number.
func (v *View) DownloadLogo(ctx context.Context, ord models.Order) (string, []byte, error) {
	return v.download(ctx, ord.LogoURL, ord.Phone+"-logo")
}

// DownloadUpiQR fetches the UPI QR image when one is stored.
func (v *View) DownloadUpiQR(ctx context.Context, ord models.Order) (string, []byte, error) {
	if ord.UpiQrURL == nil {
		return "", nil, nil
	}
	return v.download(ctx, *ord.UpiQrURL, ord.Phone+"-upi")
}

func (v *View) download(ctx context.Context, url, baseName string) (string, []byte, error) {
	if got, ok := v.images.Get(url); ok {
		img := got.(image)
		return baseName + "." + FileExtension(img.contentType), img.data, nil
	}

	data, contentType, err := v.api.Download(ctx, url)
	if err != nil {
		return "", nil, err
	}
	v.images.Put(url, image{data: data, contentType: contentType})
	return baseName + "." + FileExtension(contentType), data, nil
}
