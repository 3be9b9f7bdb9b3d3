package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("resume.PDF"))
	assert.True(t, IsSupportedFormat("resume.docx"))
	assert.True(t, IsSupportedFormat("notes.txt"))
	assert.False(t, IsSupportedFormat("resume.doc"))
	assert.False(t, IsSupportedFormat("resume"))
}

func TestNormalizeText(t *testing.T) {
	in := "  Jane   Doe \r\n\tGo Engineer\n\n\n\n\nExperience  "
	assert.Equal(t, "Jane Doe\nGo Engineer\n\nExperience", NormalizeText(in))
	assert.Equal(t, "", NormalizeText(" \n\t "))
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:body><w:p><w:r><w:t>Jane &amp; Co</w:t></w:r></w:p><w:p><w:r><w:t>Go</w:t><w:tab/><w:t>SQL</w:t></w:r></w:p></w:body>`
	assert.Equal(t, "Jane & Co\nGo SQL", NormalizeText(DocxXMLToText(xml)))
}

func TestExtractText_PlainText(t *testing.T) {
	text, err := NewDocumentExtractor().ExtractText("resume.txt", []byte("Jane Doe\n\n\n\nGo developer"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nGo developer", text)
}

func TestExtractText_Errors(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.ExtractText("resume.rtf", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = e.ExtractText("empty.txt", []byte("   "))
	assert.ErrorIs(t, err, ErrNoText)

	_, err = e.ExtractText("broken.pdf", []byte("not a pdf"))
	assert.Error(t, err)

	_, err = e.ExtractText("broken.docx", []byte("not a zip"))
	assert.Error(t, err)
}
