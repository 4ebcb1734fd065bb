package app

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	"nexusbot/internal/config"
	"nexusbot/internal/model"
	"nexusbot/internal/pkg/extract"
	"nexusbot/internal/store"
)

var (
	ErrUnsupportedType   = errors.New("unsupported file type")
	ErrFileTooLarge      = errors.New("file too large")
	ErrDuplicateDocument = errors.New("document already uploaded")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrNoDocuments       = errors.New("no documents to ingest")
)

// DocumentView is the wire representation of a stored document.
type DocumentView struct {
	Name      string `json:"name"`
	Ext       string `json:"ext"`
	MIME      string `json:"mime"`
	Size      int64  `json:"size"`
	SizeLabel string `json:"size_label"`
	Ingested  bool   `json:"ingested"`
	Preview   string `json:"preview"`
}

type DocumentService struct {
	store    *store.DocumentStore
	maxChars int
	maxBytes int64
	exts     map[string]struct{}
}

func NewDocumentService(docStore *store.DocumentStore, cfg config.IngestConfig) *DocumentService {
	exts := make(map[string]struct{}, len(cfg.SupportedExts))
	for _, ext := range cfg.SupportedExts {
		exts[strings.ToLower(ext)] = struct{}{}
	}
	return &DocumentService{
		store:    docStore,
		maxChars: cfg.MaxDocChars,
		maxBytes: cfg.MaxUploadBytes,
		exts:     exts,
	}
}

// Upload extracts text from raw file bytes and stores the result as a new
// document. PDF content goes through the PDF extractor, whether named .pdf
// or sniffed from the bytes; everything else is treated as plain text.
func (s *DocumentService) Upload(name string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := s.exts[ext]; !ok {
		return ErrUnsupportedType
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return ErrFileTooLarge
	}

	mtype := mimetype.Detect(data)

	var content string
	if ext == ".pdf" || mtype.Is("application/pdf") {
		content = extract.PDF(data, name, s.maxChars)
	} else {
		content = extract.PlainText(data, s.maxChars)
	}

	doc := model.Document{
		Name:    name,
		Ext:     ext,
		MIME:    mtype.String(),
		Size:    int64(len(data)),
		Content: content,
	}
	if !s.store.Add(doc) {
		return ErrDuplicateDocument
	}
	return nil
}

// MaxUploadBytes reports the per-file upload limit, 0 meaning unlimited.
func (s *DocumentService) MaxUploadBytes() int64 {
	return s.maxBytes
}

func (s *DocumentService) Remove(name string) error {
	if !s.store.Remove(name) {
		return ErrDocumentNotFound
	}
	return nil
}

// Ingest compiles all stored documents into the knowledge base and returns
// how many were compiled.
func (s *DocumentService) Ingest() (int, error) {
	count := s.store.Ingest()
	if count == 0 {
		return 0, ErrNoDocuments
	}
	return count, nil
}

func (s *DocumentService) List() []DocumentView {
	return lo.Map(s.store.Documents(), func(doc model.Document, _ int) DocumentView {
		return DocumentView{
			Name:      doc.Name,
			Ext:       doc.Ext,
			MIME:      doc.MIME,
			Size:      doc.Size,
			SizeLabel: doc.SizeLabel(),
			Ingested:  doc.Ingested,
			Preview:   doc.Preview(),
		}
	})
}

func (s *DocumentService) Count() int {
	return s.store.Count()
}

func (s *DocumentService) IsIngested() bool {
	return s.store.IsIngested()
}
