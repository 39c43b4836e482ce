// Package client is the HTTP transport used by the form wizard and the
// admin listing view.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/wizard"
)

// NetworkError wraps a transport failure. The caller shows a transient
// notification and keeps all form state.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError carries the failure message of a non-2xx API response.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string { return e.Message }

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

type apiResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []models.Order `json:"data"`
}

// Submit posts the finished draft as a multipart form and returns the
// server's confirmation message.
func (c *Client) Submit(ctx context.Context, sub wizard.Submission) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"name":           sub.Name,
		"phone":          sub.Phone,
		"address":        sub.Address,
		"standee_type":   sub.StandeeType,
		"other_icons":    sub.OtherIcons,
		"icons_selected": strings.Join(sub.Icons, ","),
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return "", err
		}
	}

	if err := writeFilePart(mw, "logo", sub.Logo); err != nil {
		return "", err
	}
	if sub.UpiQR != nil {
		if err := writeFilePart(mw, "upi_qr", *sub.UpiQR); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/order", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := c.http.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer res.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", &NetworkError{Err: err}
	}
	if res.StatusCode != http.StatusOK || !out.Success {
		msg := out.Message
		if msg == "" {
			msg = "Submission failed"
		}
		return "", &ServerError{StatusCode: res.StatusCode, Message: msg}
	}
	return out.Message, nil
}

// FetchOrders pulls the full listing, newest first.
func (c *Client) FetchOrders(ctx context.Context) ([]models.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/orders", nil)
	if err != nil {
		return nil, err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer res.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, &NetworkError{Err: err}
	}
	if res.StatusCode != http.StatusOK || !out.Success {
		return nil, &ServerError{StatusCode: res.StatusCode, Message: out.Message}
	}
	return out.Data, nil
}

// Download fetches a stored image and reports its bytes plus the served
// content type, which drives the saved file's extension.
func (c *Client) Download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, "", &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, "", &ServerError{StatusCode: res.StatusCode, Message: res.Status}
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, "", &NetworkError{Err: err}
	}
	return data, res.Header.Get("Content-Type"), nil
}

func writeFilePart(mw *multipart.Writer, field string, f models.File) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.Name))
	ct := f.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	h.Set("Content-Type", ct)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(f.Data)
	return err
}
