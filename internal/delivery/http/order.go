package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/service"
)

// SubmitOrder
// @Summary SubmitOrder
// @Description Accepts a multipart standee order submission: form fields plus a required logo image and an optional UPI QR image
// @ID submit-order
// @Accept mpfd
// @Produce json
// @Param name formData string true "customer name"
// @Param phone formData string true "10 digit phone number"
// @Param address formData string false "address"
// @Param standee_type formData string true "standee product variant"
// @Param icons_selected formData string false "comma-joined icon names"
// @Param other_icons formData string false "free-text extra icons"
// @Param logo formData file true "logo image"
// @Param upi_qr formData file false "UPI QR image"
// @Success 200 {object} submitResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/order [post]
func (h *Handler) SubmitOrder(c *gin.Context) {
	in := service.SubmitInput{
		Name:          c.PostForm("name"),
		Phone:         c.PostForm("phone"),
		Address:       c.PostForm("address"),
		StandeeType:   c.PostForm("standee_type"),
		IconsSelected: models.SplitIcons(c.PostForm("icons_selected")),
		OtherIcons:    c.PostForm("other_icons"),
	}

	logo, err := formFile(c, "logo")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid logo file")
		return
	}
	in.Logo = logo

	upiQR, err := formFile(c, "upi_qr")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid upi_qr file")
		return
	}
	in.UpiQR = upiQR

	if _, err := h.svc.SubmitOrder(c.Request.Context(), in); err != nil {
		status, msg := mapSubmitError(err)
		newErrorResponse(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, submitResponse{Success: true, Message: "Order submitted successfully"})
}

// mapSubmitError converts pipeline errors into the user-facing message and
// status; internals stay in the logs.
func mapSubmitError(err error) (int, string) {
	switch e := err.(type) {
	case *service.ValidationError:
		return http.StatusBadRequest, e.Message
	case *service.UploadError:
		if e.Asset == "upi_qr" {
			return http.StatusInternalServerError, "UPI QR upload failed"
		}
		return http.StatusInternalServerError, "Logo upload failed"
	case *service.PersistenceError:
		return http.StatusInternalServerError, "Database insert failed"
	default:
		return http.StatusInternalServerError, "Unexpected error occurred"
	}
}

// formFile reads a multipart file field into memory. A missing field is not
// an error: the pipeline decides which files are required.
func formFile(c *gin.Context, field string) (*models.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// absent or empty field
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &models.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

type getAllOrdersResponse struct {
	Success bool           `json:"success"`
	Data    []models.Order `json:"data"`
}

// GetAllOrders
// @Summary GetAllOrders
// @Description Returns every persisted order sorted newest-first
// @ID get-all-orders
// @Produce json
// @Success 200 {object} getAllOrdersResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders [get]
func (h *Handler) GetAllOrders(c *gin.Context) {
	orders, err := h.svc.GetAllOrders(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, getAllOrdersResponse{Success: true, Data: orders})
}
