package pdfmd

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func TestResolveBinaryMissing(t *testing.T) {
	_, err := resolveBinary("", "pdfmd-test-binary-that-does-not-exist")
	if !errors.Is(err, ErrOCRUnavailable) {
		t.Errorf("error = %v, want ErrOCRUnavailable", err)
	}
}

func TestResolveBinaryOverride(t *testing.T) {
	path, err := resolveBinary("/opt/custom/tesseract", "tesseract")
	if err != nil {
		t.Fatalf("resolveBinary: %v", err)
	}
	if path != "/opt/custom/tesseract" {
		t.Errorf("path = %q", path)
	}
}

func TestDecodeOCROutputUTF8Passthrough(t *testing.T) {
	in := "Recognized text with ünïcode."
	if got := decodeOCROutput([]byte(in)); got != in {
		t.Errorf("decodeOCROutput = %q, want unchanged", got)
	}
}

func TestDecodeOCROutputAlwaysValidUTF8(t *testing.T) {
	// Invalid byte sequences must never leak into the markdown.
	in := []byte{0xff, 0xfe, 0x41, 0x00, 0xc3, 0x28, 0x80}
	got := decodeOCROutput(in)
	if !utf8.ValidString(got) {
		t.Errorf("decodeOCROutput produced invalid UTF-8: %q", got)
	}
}
