package schema

import "io"

// Attachement carries out-of-band message content alongside a schema.
type Attachement struct {
	// ImageURLs attached image urls
	ImageURLs []string `json:"image_url,omitempty"`
	// Files attached file readers
	Files []io.Reader `json:"file,omitempty"`
}
