package media

import (
	"context"
	"encoding/base64"
	"fmt"
)

// Uploader sends a single image to the hosted media store and returns a
// durable public URL for it. One call per file, no batch mode.
type Uploader interface {
	Upload(ctx context.Context, dataURI string, folder string) (string, error)
}

// DataURI encodes an in-memory image buffer as a base64 data URI, the
// transfer encoding the media store accepts.
func DataURI(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}
