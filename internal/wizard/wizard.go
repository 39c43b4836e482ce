// Package wizard holds the two-step order form state machine. The draft is
// an immutable value replaced wholesale on every update, so the validation
// rules stay pure and testable.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Arjun-1431/bharttapp-addproduct/internal/models"
)

type Step int

const (
	StepGeneral Step = iota
	StepStandee
)

var (
	// ErrInvalid means a transition was blocked by field validation; the
	// per-field messages are in Errors().
	ErrInvalid = errors.New("validation failed")
	// ErrBusy rejects interaction while a submission is in flight.
	ErrBusy = errors.New("submission in flight")
)

var phoneRe = regexp.MustCompile(`^\d{10}$`)

// Draft is the in-progress order. All fields live here so Back/Next never
// lose state.
type Draft struct {
	Name        string
	Phone       string
	Address     string
	StandeeType string
	Icons       []string
	OtherIcons  string
	Logo        *models.File
	UpiQR       *models.File
}

// Submission is the finished draft handed to the transport.
type Submission struct {
	Name        string
	Phone       string
	Address     string
	StandeeType string
	Icons       []string
	OtherIcons  string
	Logo        models.File
	UpiQR       *models.File
}

// Submitter sends a finished submission to the server and returns its
// confirmation message.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) (string, error)
}

type Wizard struct {
	submitter Submitter

	step     Step
	draft    Draft
	staged   *models.File
	errs     map[string]string
	inFlight bool
}

func New(s Submitter) *Wizard {
	return &Wizard{
		submitter: s,
		step:      StepGeneral,
		errs:      map[string]string{},
	}
}

func (w *Wizard) Step() Step                { return w.step }
func (w *Wizard) Draft() Draft              { return w.draft }
func (w *Wizard) Errors() map[string]string { return w.errs }
func (w *Wizard) InFlight() bool            { return w.inFlight }

func (w *Wizard) SetName(v string) {
	d := w.draft
	d.Name = v
	w.draft = d
	delete(w.errs, "name")
}

func (w *Wizard) SetPhone(v string) {
	d := w.draft
	d.Phone = v
	w.draft = d
	delete(w.errs, "phone")
}

func (w *Wizard) SetAddress(v string) {
	d := w.draft
	d.Address = v
	w.draft = d
}

func (w *Wizard) SetOtherIcons(v string) {
	d := w.draft
	d.OtherIcons = v
	w.draft = d
}

// SetStandeeType switches the product variant and always clears the icon
// selection, so a previous over-limit selection can never survive the switch.
func (w *Wizard) SetStandeeType(t string) {
	d := w.draft
	d.StandeeType = t
	d.Icons = nil
	w.draft = d
	delete(w.errs, "standee_type")
	delete(w.errs, "icons")
}

// StageLogo holds a freshly selected logo until the user confirms it in the
// modal. Non-image files are rejected outright.
func (w *Wizard) StageLogo(f models.File) error {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return errors.New("Only image files are allowed")
	}
	w.staged = &f
	return nil
}

func (w *Wizard) StagedLogo() *models.File { return w.staged }

// ConfirmLogo binds the staged file to the draft.
func (w *Wizard) ConfirmLogo() {
	if w.staged == nil {
		return
	}
	d := w.draft
	d.Logo = w.staged
	w.draft = d
	w.staged = nil
	delete(w.errs, "logo")
}

// CancelLogo discards the staged file and its preview.
func (w *Wizard) CancelLogo() {
	w.staged = nil
}

func (w *Wizard) SetUpiQR(f *models.File) {
	d := w.draft
	d.UpiQR = f
	w.draft = d
	delete(w.errs, "upi_qr")
}

// ToggleIcon checks or unchecks an icon. Checking past the limit for the
// chosen standee type returns the user-visible warning and leaves the
// selection unchanged. Unchecking is always permitted.
func (w *Wizard) ToggleIcon(name string, checked bool) error {
	if !models.IsIcon(name) {
		return fmt.Errorf("unknown icon %q", name)
	}

	d := w.draft
	if !checked {
		out := make([]string, 0, len(d.Icons))
		for _, ic := range d.Icons {
			if ic != name {
				out = append(out, ic)
			}
		}
		d.Icons = out
		w.draft = d
		return nil
	}

	for _, ic := range d.Icons {
		if ic == name {
			return nil
		}
	}
	if limit, ok := models.IconLimit(d.StandeeType); ok && len(d.Icons) >= limit {
		return fmt.Errorf("You can select up to %d icon(s) only.", limit)
	}
	d.Icons = append(append([]string{}, d.Icons...), name)
	w.draft = d
	return nil
}

// Next moves from the general step to the standee step. The transition is
// gated on the general fields and a confirmed logo.
func (w *Wizard) Next() error {
	if w.step != StepGeneral {
		return nil
	}
	if !w.validateGeneral() {
		return ErrInvalid
	}
	w.step = StepStandee
	return nil
}

// Back returns to the general step unconditionally; all field state stays.
func (w *Wizard) Back() {
	w.step = StepGeneral
}

func (w *Wizard) validateGeneral() bool {
	errs := map[string]string{}
	if strings.TrimSpace(w.draft.Name) == "" {
		errs["name"] = "Name is required"
	}
	phone := strings.TrimSpace(w.draft.Phone)
	if phone == "" {
		errs["phone"] = "Phone number is required"
	} else if !phoneRe.MatchString(phone) {
		errs["phone"] = "Phone must be 10 digits"
	}
	if w.draft.Logo == nil {
		errs["logo"] = "Logo file is required"
	}
	w.errs = errs
	return len(errs) == 0
}

func (w *Wizard) validateStandee() bool {
	errs := map[string]string{}
	d := w.draft
	if d.StandeeType == "" {
		errs["standee_type"] = "Please select a standee type"
	} else if models.IconsOffered(d.StandeeType) {
		if limit, ok := models.IconLimit(d.StandeeType); ok && len(d.Icons) != limit {
			errs["icons"] = fmt.Sprintf("Please select exactly %d icon(s)", limit)
		}
	}
	if hasIcon(d.Icons, "UPI") && d.UpiQR == nil {
		errs["upi_qr"] = "UPI QR image is required when UPI is selected"
	}
	w.errs = errs
	return len(errs) == 0
}

func hasIcon(icons []string, name string) bool {
	for _, ic := range icons {
		if ic == name {
			return true
		}
	}
	return false
}

// Submit validates the standee step and sends the draft. On success the
// wizard resets to a fresh general step; on any failure every entered field
// survives and the wizard stays on the standee step.
func (w *Wizard) Submit(ctx context.Context) (string, error) {
	if w.inFlight {
		return "", ErrBusy
	}
	if w.step != StepStandee {
		return "", ErrInvalid
	}
	if !w.validateStandee() {
		return "", ErrInvalid
	}

	sub := Submission{
		Name:        w.draft.Name,
		Phone:       w.draft.Phone,
		Address:     w.draft.Address,
		StandeeType: w.draft.StandeeType,
		Icons:       append([]string{}, w.draft.Icons...),
		OtherIcons:  w.draft.OtherIcons,
		Logo:        *w.draft.Logo,
		UpiQR:       w.draft.UpiQR,
	}

	w.inFlight = true
	msg, err := w.submitter.Submit(ctx, sub)
	w.inFlight = false
	if err != nil {
		return "", err
	}

	w.draft = Draft{}
	w.staged = nil
	w.errs = map[string]string{}
	w.step = StepGeneral
	return msg, nil
}
