package service

import "fmt"

// ValidationError rejects a submission before any side effect. Field names
// the offending input, Message is safe to show to the user.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation %s: %s", e.Field, e.Message)
}

// UploadError marks a failed media-store upload. Asset is "logo" or
// "upi_qr". Uploads that already succeeded are not rolled back.
type UploadError struct {
	Asset string
	Err   error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Asset, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError marks a failed order insert.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist order: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
