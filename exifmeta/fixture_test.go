package exifmeta_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	tagMake           = 0x010F
	tagModel          = 0x0110
	tagExifIFDPointer = 0x8769
	tagExposureTime   = 0x829A
	tagFNumber        = 0x829D
	tagISO            = 0x8827
	tagFocalLength    = 0x920A
	tagLensModel      = 0xA434

	typeASCII    = 2
	typeShort    = 3
	typeLong     = 4
	typeRational = 5
)

var le = binary.LittleEndian

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	data  []byte
}

func asciiTag(tag uint16, s string) ifdEntry {
	b := append([]byte(s), 0)
	return ifdEntry{tag: tag, typ: typeASCII, count: uint32(len(b)), data: b}
}

func shortTag(tag uint16, v uint16) ifdEntry {
	return ifdEntry{tag: tag, typ: typeShort, count: 1, data: le.AppendUint16(nil, v)}
}

func rationalTag(tag uint16, num, den uint32) ifdEntry {
	b := le.AppendUint32(nil, num)
	b = le.AppendUint32(b, den)
	return ifdEntry{tag: tag, typ: typeRational, count: 1, data: b}
}

// appendIFD writes one image file directory at the end of buf, followed by
// the values that do not fit into an entry. Offsets are relative to the start
// of buf, which is the TIFF header.
func appendIFD(buf []byte, entries []ifdEntry) []byte {
	dataOff := len(buf) + 2 + 12*len(entries) + 4
	var data []byte

	buf = le.AppendUint16(buf, uint16(len(entries)))
	for _, e := range entries {
		buf = le.AppendUint16(buf, e.tag)
		buf = le.AppendUint16(buf, e.typ)
		buf = le.AppendUint32(buf, e.count)
		if len(e.data) <= 4 {
			v := make([]byte, 4)
			copy(v, e.data)
			buf = append(buf, v...)
			continue
		}
		buf = le.AppendUint32(buf, uint32(dataOff+len(data)))
		data = append(data, e.data...)
		if len(data)%2 == 1 {
			data = append(data, 0)
		}
	}
	buf = le.AppendUint32(buf, 0)
	return append(buf, data...)
}

// buildTIFF lays out a little-endian TIFF block with ifd0 and, when sub is not
// empty, an Exif sub-IFD linked from ifd0.
func buildTIFF(ifd0, sub []ifdEntry) []byte {
	buf := []byte{'I', 'I', 42, 0, 8, 0, 0, 0}
	if len(sub) > 0 {
		ifd0 = append(ifd0, ifdEntry{tag: tagExifIFDPointer, typ: typeLong, count: 1, data: make([]byte, 4)})
	}
	buf = appendIFD(buf, ifd0)
	if len(sub) > 0 {
		ptr := 8 + 2 + 12*(len(ifd0)-1) + 8
		le.PutUint32(buf[ptr:], uint32(len(buf)))
		buf = appendIFD(buf, sub)
	}
	return buf
}

// jpegWithExif wraps a TIFF block into a JPEG APP1 segment between SOI and EOI.
func jpegWithExif(tiff []byte) []byte {
	payload := append([]byte("Exif\x00\x00"), tiff...)
	out := []byte{0xFF, 0xD8, 0xFF, 0xE1}
	out = binary.BigEndian.AppendUint16(out, uint16(len(payload)+2))
	out = append(out, payload...)
	return append(out, 0xFF, 0xD9)
}

func writeImage(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}
