// Command submit drives the order wizard from a draft file against a
// running server. Handy for smoke-testing the full pipeline.
package main

import (
	"context"
	"encoding/json"
	"mime"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/client"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/configs"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
	"github.com/Arjun-1431/bharttapp-addproduct/internal/wizard"
)

type draftFile struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	StandeeType string   `json:"standee_type"`
	Icons       []string `json:"icons"`
	OtherIcons  string   `json:"other_icons"`
	Logo        string   `json:"logo"`
	UpiQR       string   `json:"upi_qr"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Fatalf("failed to load .env: %s", err)
	}

	cfg, err := configs.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("error loading config: %s", err)
	}
	logrus.Print("config loaded")

	raw, err := os.ReadFile(cfg.DraftPath)
	if err != nil {
		logrus.Fatalf("open draft file: %s", err)
	}
	var d draftFile
	if err := json.Unmarshal(raw, &d); err != nil {
		logrus.Fatalf("parse draft file: %s", err)
	}

	logo, err := loadImage(d.Logo)
	if err != nil {
		logrus.Fatalf("read logo: %s", err)
	}

	w := wizard.New(client.New(cfg.APIBaseURL))
	w.SetName(d.Name)
	w.SetPhone(d.Phone)
	w.SetAddress(d.Address)
	if err := w.StageLogo(*logo); err != nil {
		logrus.Fatalf("stage logo: %s", err)
	}
	w.ConfirmLogo()

	if err := w.Next(); err != nil {
		logrus.Fatalf("step 1 validation: %v", w.Errors())
	}

	w.SetStandeeType(d.StandeeType)
	w.SetOtherIcons(d.OtherIcons)
	for _, ic := range d.Icons {
		if err := w.ToggleIcon(ic, true); err != nil {
			logrus.Fatalf("select icon %s: %s", ic, err)
		}
	}
	if d.UpiQR != "" {
		qr, err := loadImage(d.UpiQR)
		if err != nil {
			logrus.Fatalf("read upi qr: %s", err)
		}
		w.SetUpiQR(qr)
	}

	msg, err := w.Submit(context.Background())
	if err != nil {
		logrus.Fatalf("submit: %s (%v)", err, w.Errors())
	}
	logrus.Printf("server says: %s", msg)
}

func loadImage(path string) (*models.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = "image/png"
	}
	return &models.File{
		Name:        filepath.Base(path),
		ContentType: ct,
		Data:        data,
	}, nil
}
