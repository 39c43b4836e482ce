package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/media"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/repository"
)

type Order interface {
	SubmitOrder(ctx context.Context, in SubmitInput) (models.Order, error)
	GetAllOrders(ctx context.Context) ([]models.Order, error)
}

// SubmitInput is the decoded multipart submission. Logo is required, UpiQR
// optional.
type SubmitInput struct {
	Name          string
	Phone         string
	Address       string
	StandeeType   string
	IconsSelected []string
	OtherIcons    string
	Logo          *models.File
	UpiQR         *models.File
}

// Events receives a copy of every persisted order. Publishing is best
// effort: failures are logged and never fail the submission.
type Events interface {
	PublishOrderCreated(ctx context.Context, ord models.Order) error
}

type Service struct {
	repo     repository.OrderStore
	uploader media.Uploader
	events   Events
	folder   string
	v        *validator.Validate
}

// NewService wires the submission pipeline. events may be nil to disable
// the order-created stream.
func NewService(repo repository.OrderStore, uploader media.Uploader, events Events, folder string) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		events:   events,
		folder:   folder,
		v:        validator.New(),
	}
}
