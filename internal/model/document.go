package model

import (
	"github.com/dustin/go-humanize"
)

const previewRunes = 120

type Document struct {
	Name     string `json:"name"`
	Ext      string `json:"ext"`
	MIME     string `json:"mime"`
	Size     int64  `json:"size"`
	Content  string `json:"content"`
	Ingested bool   `json:"ingested"`
}

// SizeLabel renders the raw byte size for display, e.g. "512 B" or "1.5 KiB".
func (d Document) SizeLabel() string {
	return humanize.IBytes(uint64(d.Size))
}

// Preview returns the first 120 characters of the extracted content.
func (d Document) Preview() string {
	runes := []rune(d.Content)
	if len(runes) <= previewRunes {
		return d.Content
	}
	return string(runes[:previewRunes]) + "…"
}
