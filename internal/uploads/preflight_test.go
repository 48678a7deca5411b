package uploads

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestCheckResumeAcceptsDocx(t *testing.T) {
	data := buildZip(t, map[string]string{
		"word/document.xml": `<w:document><w:body><w:p>hi</w:p></w:body></w:document>`,
	})
	if err := CheckResume("resume.docx", data); err != nil {
		t.Fatalf("expected docx to pass preflight, got %v", err)
	}
}

func TestCheckResumeRejectsPlainZip(t *testing.T) {
	data := buildZip(t, map[string]string{"notes.txt": "hello"})
	if err := CheckResume("resume.docx", data); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestCheckResumeRejectsTruncatedPDF(t *testing.T) {
	data := []byte("%PDF-1.4 not actually a pdf")
	if err := CheckResume("resume.pdf", data); !errors.Is(err, ErrCorruptFile) {
		t.Fatalf("expected ErrCorruptFile, got %v", err)
	}
}

func TestCheckResumeRejectsUnknownFormat(t *testing.T) {
	if err := CheckResume("resume.txt", []byte("just text")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestCheckResumeRejectsOversize(t *testing.T) {
	data := append([]byte("%PDF-"), make([]byte, MaxUploadBytes)...)
	if err := CheckResume("resume.pdf", data); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestCheckPhoto(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	if err := CheckPhoto(jpeg); err != nil {
		t.Fatalf("jpeg rejected: %v", err)
	}

	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, 0x00)
	if err := CheckPhoto(png); err != nil {
		t.Fatalf("png rejected: %v", err)
	}

	if err := CheckPhoto([]byte("GIF89a")); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType for gif, got %v", err)
	}
	if err := CheckPhoto(nil); !errors.Is(err, ErrCorruptFile) {
		t.Fatalf("expected ErrCorruptFile for empty payload, got %v", err)
	}
}
