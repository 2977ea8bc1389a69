package ingestion

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"CRLF normalized", "a\r\nb\rc", "a\nb\nc"},
		{"Internal spaces collapsed", "hello    world", "hello world"},
		{"Blank lines capped", "a\n\n\n\n\nb", "a\n\nb"},
		{"Bullets preserved", "- item one\n  - nested item", "- item one\n  - nested item"},
		{"Headings normalized", "   # Heading", "# Heading"},
		{"Surrounding whitespace trimmed", "\n\n  text  \n\n", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("resume.pdf"))
	assert.True(t, Supported("resume.DOCX"))
	assert.True(t, Supported("resume.txt"))
	assert.False(t, Supported("resume.png"))
	assert.False(t, Supported("resume"))
}

func TestExtractFileUnsupported(t *testing.T) {
	_, err := ExtractFile("whatever.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestExtractTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\n\n\n\n\nSkills:  Go,  Python\n"), 0o644))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nSkills: Go, Python", text)
}

func TestExtractTXTLatin1(t *testing.T) {
	// 0xE9 is é in Latin-1 and invalid on its own in UTF-8.
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte{'r', 0xE9, 's', 'u', 'm', 0xE9}, 0o644))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "résumé", text)
}

func TestExtractDOCX(t *testing.T) {
	const documentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Software </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
    <w:p/>
    <w:tbl><w:tr><w:tc><w:p><w:r><w:t>Cell text</w:t></w:r></w:p></w:tc></w:tr></w:tbl>
  </w:body>
</w:document>`

	path := filepath.Join(t.TempDir(), "resume.docx")
	file, err := os.Create(path)
	require.NoError(t, err)
	writer := zip.NewWriter(file)
	part, err := writer.Create("word/document.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSoftware Engineer\nCell text", text)
}

func TestExtractDOCXMissingPart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	file, err := os.Create(path)
	require.NoError(t, err)
	writer := zip.NewWriter(file)
	_, err = writer.Create("unrelated.xml")
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())

	_, err = ExtractFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document part")
}
