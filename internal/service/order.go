package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/media"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
)

// SubmitOrder runs the submission pipeline: validate, upload the logo,
// upload the optional UPI QR, insert the document. Each step aborts the
// pipeline on failure; assets uploaded before the failing step stay behind.
func (s *Service) SubmitOrder(ctx context.Context, in SubmitInput) (models.Order, error) {
	if in.Name == "" || in.Phone == "" || in.StandeeType == "" || in.Logo == nil {
		return models.Order{}, &ValidationError{
			Field:   "required",
			Message: "Name, Phone, Standee type and Logo are required.",
		}
	}

	if err := s.v.Var(in.Phone, "len=10,number"); err != nil {
		return models.Order{}, &ValidationError{
			Field:   "phone",
			Message: "Phone number must be 10 digits.",
		}
	}

	logoURL, err := s.uploader.Upload(ctx, media.DataURI(in.Logo.ContentType, in.Logo.Data), s.folder)
	if err != nil {
		logrus.WithError(err).Error("logo upload failed")
		return models.Order{}, &UploadError{Asset: "logo", Err: err}
	}

	var upiQrURL *string
	if in.UpiQR != nil {
		u, err := s.uploader.Upload(ctx, media.DataURI(in.UpiQR.ContentType, in.UpiQR.Data), s.folder+"/upi_qr")
		if err != nil {
			logrus.WithError(err).Error("upi qr upload failed")
			return models.Order{}, &UploadError{Asset: "upi_qr", Err: err}
		}
		upiQrURL = &u
	}

	ord := models.Order{
		Name:          in.Name,
		Phone:         in.Phone,
		Address:       in.Address,
		StandeeType:   in.StandeeType,
		IconsSelected: in.IconsSelected,
		OtherIcons:    in.OtherIcons,
		LogoURL:       logoURL,
		UpiQrURL:      upiQrURL,
		CreatedAt:     time.Now().UTC(),
	}
	if ord.IconsSelected == nil {
		ord.IconsSelected = []string{}
	}

	id, err := s.repo.Create(ctx, ord)
	if err != nil {
		logrus.WithError(err).Error("order insert failed")
		return models.Order{}, &PersistenceError{Err: err}
	}
	logrus.WithField("id", id).Info("order saved")

	if s.events != nil {
		if err := s.events.PublishOrderCreated(ctx, ord); err != nil {
			logrus.WithError(err).Warn("order event publish failed")
		}
	}

	return ord, nil
}

func (s *Service) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}
