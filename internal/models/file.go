package models

import "strings"

// File is an in-memory image buffer as received from the form.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f *File) IsImage() bool {
	return f != nil && strings.HasPrefix(f.ContentType, "image/")
}
