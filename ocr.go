// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package pdfmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrOCRUnavailable signals that no OCR engine can run on this host. The
// pipeline treats it as a per-page degradation, not a failure.
var ErrOCRUnavailable = errors.New("ocr engine unavailable")

// OCRClient recognizes text on a single page of the source document,
// rendered at the given DPI.
type OCRClient interface {
	RecognizePage(ctx context.Context, path string, pageNum, dpi int) (string, error)
}

// TesseractOCR runs OCR by rendering a page with pdftoppm and feeding the
// image to tesseract. Both binaries must be on PATH (or set explicitly);
// otherwise RecognizePage returns ErrOCRUnavailable.
type TesseractOCR struct {
	// PdftoppmPath and TesseractPath override binary lookup. Empty means
	// resolve from PATH.
	PdftoppmPath  string
	TesseractPath string

	// Lang is passed to tesseract's -l flag when set.
	Lang string
}

// NewTesseractOCR creates a TesseractOCR resolving binaries from PATH.
func NewTesseractOCR() *TesseractOCR {
	return &TesseractOCR{}
}

func (t *TesseractOCR) RecognizePage(ctx context.Context, path string, pageNum, dpi int) (string, error) {
	pdftoppm, err := resolveBinary(t.PdftoppmPath, "pdftoppm")
	if err != nil {
		return "", err
	}
	tesseract, err := resolveBinary(t.TesseractPath, "tesseract")
	if err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", "pdfmd-ocr-")
	if err != nil {
		return "", fmt.Errorf("ocr temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// Render just the one page to PNG at the requested resolution.
	prefix := filepath.Join(tmpDir, "page")
	pageArg := strconv.Itoa(pageNum)
	render := exec.CommandContext(ctx, pdftoppm,
		"-png", "-r", strconv.Itoa(dpi), "-f", pageArg, "-l", pageArg, path, prefix)
	if out, err := render.CombinedOutput(); err != nil {
		return "", fmt.Errorf("render page %d: %v: %s", pageNum, err, strings.TrimSpace(string(out)))
	}

	matches, err := filepath.Glob(prefix + "*.png")
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("render page %d: no image produced", pageNum)
	}

	args := []string{matches[0], "stdout"}
	if t.Lang != "" {
		args = append(args, "-l", t.Lang)
	}
	recognize := exec.CommandContext(ctx, tesseract, args...)
	out, err := recognize.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract page %d: %w", pageNum, err)
	}

	return decodeOCROutput(out), nil
}

func resolveBinary(override, name string) (string, error) {
	if override != "" {
		return override, nil
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found", ErrOCRUnavailable, name)
	}
	return path, nil
}

// decodeOCROutput converts engine output to UTF-8. Tesseract normally emits
// UTF-8, but engines invoked under a legacy locale may not, so non-UTF-8
// output goes through charset detection before falling back to a lossy read.
func decodeOCROutput(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	detector := chardet.NewTextDetector()
	if result, err := detector.DetectBest(data); err == nil {
		if enc := ocrEncoding(result.Charset); enc != nil {
			if decoded, err := enc.NewDecoder().Bytes(data); err == nil {
				return string(decoded)
			}
		}
	}

	return strings.ToValidUTF8(string(data), "")
}

// ocrEncoding maps the charsets OCR engines realistically emit to decoders.
func ocrEncoding(charset string) encoding.Encoding {
	switch strings.ToLower(strings.ReplaceAll(charset, "-", "")) {
	case "utf8":
		return unicode.UTF8
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "koi8r":
		return charmap.KOI8R
	case "shiftjis", "sjis", "cp932":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "euckr", "cp949":
		return korean.EUCKR
	case "gb2312", "gbk", "gb18030", "cp936":
		return simplifiedchinese.GBK
	}
	return nil
}
