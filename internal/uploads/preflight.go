package uploads

import (
	"archive/zip"
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxUploadBytes caps resume and photo uploads.
const MaxUploadBytes = 5 << 20

var (
	ErrTooLarge        = errors.New("file exceeds the size limit")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrCorruptFile     = errors.New("file could not be parsed")
)

// CheckResume validates an in-memory resume payload before it is forwarded.
// PDFs must open cleanly; DOCX files must be a zip archive containing
// word/document.xml. Anything else is rejected.
func CheckResume(name string, data []byte) error {
	if len(data) == 0 {
		return ErrCorruptFile
	}
	if len(data) > MaxUploadBytes {
		return ErrTooLarge
	}

	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return checkPDF(data)
	case strings.EqualFold(filepath.Ext(name), ".docx") || bytes.HasPrefix(data, []byte("PK")):
		return checkDOCX(data)
	default:
		return ErrUnsupportedType
	}
}

// CheckPhoto validates an in-memory photo payload. Only JPEG and PNG are
// accepted, identified by magic bytes rather than the client-supplied name.
func CheckPhoto(data []byte) error {
	if len(data) == 0 {
		return ErrCorruptFile
	}
	if len(data) > MaxUploadBytes {
		return ErrTooLarge
	}
	if bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}) {
		return nil
	}
	if bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}) {
		return nil
	}
	return ErrUnsupportedType
}

func checkPDF(data []byte) error {
	reader := bytes.NewReader(data)
	if _, err := pdf.NewReader(reader, int64(len(data))); err != nil {
		return ErrCorruptFile
	}
	return nil
}

func checkDOCX(data []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ErrCorruptFile
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return nil
		}
	}
	return ErrUnsupportedType
}
