// Package pdftext extracts plain text from PDF documents so their
// contents can be fed to an analysis prompt.
package pdftext

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extract reads every page of a PDF and concatenates its plain text.
// Pages that cannot be decoded are skipped; the document only fails as
// a whole when it cannot be opened at all.
func Extract(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var content strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		content.WriteString(text)
		content.WriteString("\n")
	}

	text := strings.TrimSpace(content.String())
	if text == "" {
		return "", fmt.Errorf("no extractable text in pdf")
	}
	return text, nil
}

// ExtractFile extracts the plain text of the PDF at path.
func ExtractFile(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var content strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		content.WriteString(text)
		content.WriteString("\n")
	}

	text := strings.TrimSpace(content.String())
	if text == "" {
		return "", fmt.Errorf("no extractable text in %s", path)
	}
	return text, nil
}
