package pdftext

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestExtract_NotAPDF(t *testing.T) {
	data := []byte("this is plain text, not a pdf")
	if _, err := Extract(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Fatal("expected error for non-pdf input")
	}
}

func TestExtract_Truncated(t *testing.T) {
	data := []byte("%PDF-1.4\n")
	if _, err := Extract(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Fatal("expected error for truncated pdf")
	}
}

func TestExtractFile_Missing(t *testing.T) {
	if _, err := ExtractFile(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractFile_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ExtractFile(path); err == nil {
		t.Fatal("expected error for non-pdf file")
	}
}
