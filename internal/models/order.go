package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is the persisted standee order document. It is written once by the
// submission pipeline and never updated afterwards.
type Order struct {
	ID            primitive.ObjectID `json:"-"              bson:"_id,omitempty"`
	Name          string             `json:"name"           bson:"name"           validate:"required"`
	Phone         string             `json:"phone"          bson:"phone"          validate:"required,len=10,number"`
	Address       string             `json:"address,omitempty" bson:"address,omitempty"`
	StandeeType   string             `json:"standee_type"   bson:"standee_type"   validate:"required"`
	IconsSelected []string           `json:"icons_selected" bson:"icons_selected"`
	OtherIcons    string             `json:"other_icons"    bson:"other_icons"`
	LogoURL       string             `json:"logo_url"       bson:"logo_url"       validate:"required,url"`
	UpiQrURL      *string            `json:"upi_qr_url"     bson:"upi_qr_url"`
	CreatedAt     time.Time          `json:"created_at"     bson:"created_at"     validate:"required"`
}
