package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractTextFromBytes_ZipDocxNormalizes(t *testing.T) {
	const documentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Invoice intake and matching</w:t></w:r></w:p>
    <w:p><w:r><w:t>Weekly status reporting</w:t></w:r></w:p>
  </w:body>
</w:document>`
	data := buildDocx(t, documentXML)

	text, err := ExtractTextFromBytes(context.Background(), data, "application/zip", "tasks.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if !strings.Contains(text, "Invoice intake and matching") {
		t.Fatalf("missing first paragraph in extracted text: %q", text)
	}
	if !strings.Contains(text, "Weekly status reporting") {
		t.Fatalf("missing second paragraph in extracted text: %q", text)
	}
}

func TestExtractTextFromBytes_RealZipRejected(t *testing.T) {
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

	_, err = ExtractTextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !errors.Is(err, ErrUnsupportedMime) {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractTextFromBytes_PlainTextNormalizesLineEndings(t *testing.T) {
	data := []byte("Process invoices\r\nReconcile accounts\r\n\r\n")

	text, err := ExtractTextFromBytes(context.Background(), data, "text/plain; charset=utf-8", "tasks.txt")
	if err != nil {
		t.Fatalf("expected plain text to extract, got error: %v", err)
	}
	want := "Process invoices\nReconcile accounts"
	if text != want {
		t.Fatalf("extracted text = %q, want %q", text, want)
	}
}
