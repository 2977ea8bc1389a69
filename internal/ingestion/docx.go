package ingestion

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX reads the main document part of a .docx archive and
// flattens it to text, one line per paragraph. Table cells contain
// paragraphs of their own and come out line by line as well.
func extractDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		reader, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open document part: %w", err)
		}
		defer reader.Close()

		text, err := flattenDocumentXML(reader)
		if err != nil {
			return "", err
		}
		return CleanText(text), nil
	}
	return "", fmt.Errorf("no document part in DOCX archive")
}

// flattenDocumentXML walks WordprocessingML and collects the character
// data of every w:t run, ending a line at each w:p close.
func flattenDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		b      strings.Builder
		line   strings.Builder
		inText bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if trimmed := strings.TrimSpace(line.String()); trimmed != "" {
					b.WriteString(trimmed)
					b.WriteString("\n")
				}
				line.Reset()
			}
		case xml.CharData:
			if inText {
				line.Write(t)
			}
		}
	}
	return b.String(), nil
}
