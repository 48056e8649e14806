package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	doc := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + body + `</w:t></w:r></w:p></w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestFromBytesDocxFromZipMime(t *testing.T) {
	data := buildDocx(t, "Python engineer, 5 years")

	text, err := FromBytes(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if !strings.Contains(text, "Python engineer") {
		t.Fatalf("expected extracted text to contain body, got %q", text)
	}
}

func TestFromBytesSniffsDocxWithoutMime(t *testing.T) {
	data := buildDocx(t, "Go developer")

	text, err := FromBytes(context.Background(), data, "application/octet-stream", "resume.docx")
	if err != nil {
		t.Fatalf("expected sniffed docx to extract, got error: %v", err)
	}
	if !strings.Contains(text, "Go developer") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestFromBytesRejectsPlainZip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = FromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFromBytesRejectsMalformedPDF(t *testing.T) {
	data := []byte("%PDF-1.4 not actually a pdf")

	if _, err := FromBytes(context.Background(), data, "application/pdf", "resume.pdf"); err == nil {
		t.Fatal("expected error for malformed pdf")
	}
}

func TestFromBytesRejectsEmptyData(t *testing.T) {
	if _, err := FromBytes(context.Background(), nil, "application/pdf", "resume.pdf"); err == nil {
		t.Fatal("expected error for empty data")
	}
}
