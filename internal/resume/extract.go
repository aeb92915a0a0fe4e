package resume

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Format is a supported resume document type
type Format string

// Supported formats
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

// MaxFileSize bounds how much of a resume file is read
const MaxFileSize = 5 << 20

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", "":
		return FormatText, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: ext}
	}
}

// ExtractFile reads path and returns its cleaned text.
func ExtractFile(path string) (string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to open %s", path), Cause: err}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return "", &ExtractionError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	if len(data) > MaxFileSize {
		return "", &ExtractionError{Message: fmt.Sprintf("%s is larger than %d bytes", path, MaxFileSize)}
	}

	return Extract(format, data)
}

// Extract decodes data of the given format into cleaned plain text.
func Extract(format Format, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch format {
	case FormatText, FormatMarkdown:
		text = string(data)
	case FormatHTML:
		text, err = extractHTMLText(data)
	case FormatPDF:
		text, err = extractPDFText(data)
	case FormatDOCX:
		text, err = extractDocxText(data)
	default:
		return "", &UnsupportedFormatError{Format: string(format)}
	}
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}
	doc.Find("script, style, noscript, nav, footer").Remove()
	return blockText(doc.Find("body")), nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to read pdf", Cause: err}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Message: fmt.Sprintf("failed to read pdf page %d", i), Cause: err}
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// extractDocxText reads word/document.xml and keeps one line per paragraph.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse docx", Cause: err}
	}
	defer doc.Close()

	content := strings.ReplaceAll(doc.Editable().GetContent(), "</w:p>", "</w:p>\n")
	xmlDoc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse docx body", Cause: err}
	}
	return xmlDoc.Text(), nil
}

// blockText returns the text of sel with a line break after block elements.
func blockText(sel *goquery.Selection) string {
	sel.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr, br, section, article").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	return sel.Text()
}
