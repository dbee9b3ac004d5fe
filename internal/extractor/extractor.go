// Package extractor turns uploaded resume files into plain UTF-8 text.
// Failures here are recoverable user errors (bad file, wrong format), not
// crashes.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MinExtractableChars is the threshold below which an extraction is treated
// as a scanned or image-only document.
const MinExtractableChars = 50

var (
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")
	ErrUnreadable        = errors.New("file is unreadable or corrupted")
	ErrInsufficientText  = errors.New("insufficient extractable text; the document may be scanned")
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// Extract produces plain text from a file buffer and its declared content
// type. When the content type is ambiguous the filename extension breaks the
// tie.
func Extract(data []byte, contentType, filename string) (string, error) {
	switch resolveKind(contentType, filename) {
	case mimeText:
		return checkLength(string(data))
	case mimePDF:
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		return checkLength(text)
	case mimeDocx:
		text, err := extractDocx(data)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		return checkLength(text)
	default:
		return "", ErrUnsupportedFormat
	}
}

func resolveKind(contentType, filename string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case mimePDF, mimeDocx, mimeText:
		return ct
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDocx
	case ".txt":
		return mimeText
	}
	return ""
}

func checkLength(text string) (string, error) {
	text = strings.TrimSpace(text)
	if len(text) < MinExtractableChars {
		return "", ErrInsufficientText
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return docxXMLToText(content), nil
}

// docxXMLToText flattens document.xml content to plain text, turning
// paragraph boundaries into newlines before stripping tags.
func docxXMLToText(xml string) string {
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")

	var b strings.Builder
	inTag := false
	for _, r := range xml {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
