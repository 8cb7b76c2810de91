// Package exifmeta reads camera and lens EXIF tags from an image and formats
// them for display.
package exifmeta

import "fmt"

// NotAvailable is shown for values the image does not carry.
const NotAvailable = "N/A"

// Record is the display form of an image's capture metadata. Every field is
// always set; missing values hold a sentinel rather than being empty.
type Record struct {
	FocalLength  string `json:"focal_length"`
	ISO          string `json:"iso"`
	Aperture     string `json:"aperture"`
	ShutterSpeed string `json:"shutter_speed"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	LensModel    string `json:"lens_model"`
}

// DefaultRecord is returned whenever extraction does not succeed.
func DefaultRecord() Record {
	return Record{
		FocalLength:  "0mm",
		ISO:          NotAvailable,
		Aperture:     NotAvailable,
		ShutterSpeed: NotAvailable,
		Make:         "",
		Model:        NotAvailable,
		LensModel:    NotAvailable,
	}
}

// Field is one labelled row of a Record.
type Field struct {
	Label string
	Value string
}

// Fields returns the record as labelled rows in display order.
func (r Record) Fields() []Field {
	return []Field{
		{"Make", r.Make},
		{"Model", r.Model},
		{"Lens Model", r.LensModel},
		{"Focal Length", r.FocalLength},
		{"Aperture", r.Aperture},
		{"Shutter Speed", r.ShutterSpeed},
		{"ISO", r.ISO},
	}
}

// Status tells how a Result was produced.
type Status int

const (
	// StatusExtracted means every field was computed from the image's tags.
	StatusExtracted Status = iota
	// StatusNoMetadata means the image opened fine but carries no EXIF block.
	StatusNoMetadata
	// StatusFailed means the file could not be read or a tag could not be
	// interpreted.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusExtracted:
		return "extracted"
	case StatusNoMetadata:
		return "no_metadata"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText lets Status appear by name in JSON responses.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of one extraction. Record is DefaultRecord unless
// Status is StatusExtracted; Err explains the other two statuses.
type Result struct {
	Record Record
	Status Status
	Err    error
}

// OK reports whether the record was computed from the image.
func (r Result) OK() bool {
	return r.Status == StatusExtracted
}
