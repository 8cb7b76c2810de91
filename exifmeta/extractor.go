package exifmeta

import (
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Opener opens a file by name inside the photo directory.
type Opener interface {
	Open(name string) (*os.File, fs.FileInfo, error)
}

// Extractor turns an image's EXIF block into a Record.
type Extractor struct {
	opener Opener
}

func NewExtractor(opener Opener) *Extractor {
	return &Extractor{opener: opener}
}

// Extract reads name and returns its Record. It never returns a partially
// filled record: any failure yields DefaultRecord with a non-extracted status.
func (e *Extractor) Extract(name string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fallback(name, StatusFailed, fmt.Errorf("exif decoder panic: %v", r))
		}
	}()

	f, _, err := e.opener.Open(name)
	if err != nil {
		return fallback(name, StatusFailed, fmt.Errorf("open: %w", err))
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		return fallback(name, StatusNoMetadata, fmt.Errorf("decode: %w", err))
	}

	record, err := buildRecord(x)
	if err != nil {
		return fallback(name, StatusFailed, err)
	}

	return Result{Record: record, Status: StatusExtracted}
}

func fallback(name string, status Status, err error) Result {
	if status == StatusFailed {
		slog.Warn("unable to extract image metadata", "name", name, "error", err)
	} else {
		slog.Info("image has no metadata", "name", name, "error", err)
	}
	return Result{Record: DefaultRecord(), Status: status, Err: err}
}

func buildRecord(x *exif.Exif) (Record, error) {
	var (
		r   Record
		err error
	)

	if r.FocalLength, err = focalLength(x); err != nil {
		return Record{}, err
	}
	if r.ISO, err = iso(x); err != nil {
		return Record{}, err
	}
	if r.Aperture, err = aperture(x); err != nil {
		return Record{}, err
	}
	if r.ShutterSpeed, err = shutterSpeed(x); err != nil {
		return Record{}, err
	}
	if r.Make, err = stringTag(x, exif.Make, ""); err != nil {
		return Record{}, err
	}
	r.Make = cases.Title(language.Und).String(r.Make)
	if r.Model, err = stringTag(x, exif.Model, NotAvailable); err != nil {
		return Record{}, err
	}
	if r.LensModel, err = stringTag(x, exif.LensModel, NotAvailable); err != nil {
		return Record{}, err
	}

	return r, nil
}

func lookup(x *exif.Exif, name exif.FieldName) (*tiff.Tag, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return nil, false
	}
	return tag, true
}

// number reads the first value of a numeric tag as a float.
func number(name exif.FieldName, tag *tiff.Tag) (float64, error) {
	switch tag.Format() {
	case tiff.RatVal:
		num, den, err := tag.Rat2(0)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		if den == 0 {
			return 0, fmt.Errorf("%s: zero denominator", name)
		}
		return float64(num) / float64(den), nil
	case tiff.IntVal:
		v, err := tag.Int(0)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return float64(v), nil
	case tiff.FloatVal:
		v, err := tag.Float(0)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("%s: unexpected tag format %v", name, tag.Format())
	}
}

func focalLength(x *exif.Exif) (string, error) {
	mm := 0.0
	if tag, ok := lookup(x, exif.FocalLength); ok {
		v, err := number(exif.FocalLength, tag)
		if err != nil {
			return "", err
		}
		mm = v
	}
	return strconv.Itoa(int(mm)) + "mm", nil
}

func iso(x *exif.Exif) (string, error) {
	tag, ok := lookup(x, exif.ISOSpeedRatings)
	if !ok {
		return NotAvailable, nil
	}
	v, err := tag.Int(0)
	if err != nil {
		return "", fmt.Errorf("%s: %w", exif.ISOSpeedRatings, err)
	}
	return strconv.Itoa(v), nil
}

func aperture(x *exif.Exif) (string, error) {
	tag, ok := lookup(x, exif.FNumber)
	if !ok {
		return NotAvailable, nil
	}
	v, err := number(exif.FNumber, tag)
	if err != nil {
		return "", err
	}
	return "f/" + decimal(v), nil
}

func shutterSpeed(x *exif.Exif) (string, error) {
	tag, ok := lookup(x, exif.ExposureTime)
	if !ok {
		return NotAvailable, nil
	}
	v, err := number(exif.ExposureTime, tag)
	if err != nil {
		return "", err
	}
	if v <= 0 {
		return "", fmt.Errorf("%s: non-positive exposure %v", exif.ExposureTime, v)
	}
	if v < 1 {
		return fmt.Sprintf("1/%d", int64(math.RoundToEven(1/v))), nil
	}
	return decimal(v) + "s", nil
}

func stringTag(x *exif.Exif, name exif.FieldName, def string) (string, error) {
	tag, ok := lookup(x, name)
	if !ok {
		return def, nil
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimFunc(s, func(r rune) bool {
		return r == 0 || unicode.IsSpace(r)
	}), nil
}

// decimal formats v with the shortest exact representation, keeping one
// decimal place for whole numbers (4 -> "4.0", 2.8 -> "2.8").
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
