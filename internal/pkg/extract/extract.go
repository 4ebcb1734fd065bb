// Package extract turns uploaded file bytes into plain text for ingestion.
// PDFs go through a structured reader first and fall back to a heuristic
// scan of the raw bytes; everything else is treated as UTF-8 text.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// PDF extracts readable text from raw PDF bytes, capped at maxChars.
// It never fails: when neither the reader nor the scan yields usable
// text, an advisory note naming the file is returned instead.
func PDF(data []byte, name string, maxChars int) string {
	text, err := readPDF(data)
	if err == nil {
		text = strings.TrimSpace(text)
		if text != "" {
			return truncate(text, maxChars)
		}
	}
	return scanPDF(data, name, maxChars)
}

// PlainText decodes data as UTF-8, replacing invalid sequences, capped at maxChars.
func PlainText(data []byte, maxChars int) string {
	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	return truncate(text, maxChars)
}

// readPDF parses the document structure and collects its plain text.
// The underlying reader panics on some malformed inputs, so recover
// and report those as ordinary errors.
func readPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	if len(data) == 0 {
		return "", fmt.Errorf("empty pdf data")
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
