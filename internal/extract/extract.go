package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrEmptyDocument is returned when a file parses but yields no text.
var ErrEmptyDocument = errors.New("no text content found in document")

// FromBytes extracts plain text from an in-memory resume payload.
// PDF extraction uses github.com/ledongthuc/pdf; DOCX is unpacked directly.
func FromBytes(ctx context.Context, data []byte, mimeType string, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("empty file data")
	}
	normalized := normalizeMimeType(mimeType, fileName, data)
	switch normalized {
	case mimePDF:
		return fromPDF(data)
	case mimeDOCX:
		return fromDOCX(data)
	default:
		return "", fmt.Errorf("unsupported mime type: %s", normalized)
	}
}

func fromPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf plain text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func fromDOCX(data []byte) (string, error) {
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	text := stripDocxXML(string(raw))
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func normalizeMimeType(mimeType string, fileName string, data []byte) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	if clean == "" || clean == "application/octet-stream" {
		if sniffed := sniffType(fileName, data); sniffed != "" {
			return sniffed
		}
		return clean
	}
	if clean != "application/zip" {
		return clean
	}
	if hasZipEntry(data, "word/document.xml") {
		return mimeDOCX
	}
	if strings.ToLower(filepath.Ext(fileName)) == ".docx" {
		return mimeDOCX
	}
	return clean
}

func sniffType(fileName string, data []byte) string {
	if bytes.HasPrefix(data, []byte("%PDF-")) {
		return mimePDF
	}
	if hasZipEntry(data, "word/document.xml") {
		return mimeDOCX
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return mimePDF
	case ".docx":
		return mimeDOCX
	}
	return ""
}

func hasZipEntry(data []byte, entry string) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == entry {
			return true
		}
	}
	return false
}
