package utils

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for file types that cannot be read
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoText is returned when a document contains no readable text
var ErrNoText = errors.New("no text content found in document")

var supportedFormats = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// DocumentExtractor extracts text from resume documents
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// IsSupportedFormat reports whether the file extension can be extracted
func IsSupportedFormat(filename string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(filename))]
}

// ExtractText extracts normalized text from a file based on its extension
func (e *DocumentExtractor) ExtractText(filename string, content []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		if !utf8.Valid(content) {
			return "", fmt.Errorf("text file is not valid UTF-8")
		}
		text = string(content)
	case ".pdf":
		text, err = extractPDF(content)
	case ".docx":
		text, err = extractDocx(content)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return "", err
	}

	text = NormalizeText(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}
	return sb.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDocx(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return DocxXMLToText(doc.Editable().GetContent()), nil
}

// DocxXMLToText turns WordprocessingML into plain text, one line per paragraph
func DocxXMLToText(xml string) string {
	text := docxParagraphEnd.ReplaceAllString(xml, "\n")
	text = xmlTag.ReplaceAllString(text, "")
	return xmlEntities.Replace(text)
}

var xmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

var (
	inlineSpace = regexp.MustCompile(`[ \t\f\v\r]+`)
	blankLines  = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText collapses runs of spaces, trims each line and keeps at most
// one blank line between paragraphs
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = inlineSpace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
