package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"nexusbot/internal/app"
	"nexusbot/internal/transport/http/response"
)

type DocumentHandler struct {
	documents *app.DocumentService
	maxUpload int64
}

type RemoveRequest struct {
	Name string `json:"name"`
}

// UploadResult reports the outcome for one file in a multipart upload.
type UploadResult struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func NewDocumentHandler(documents *app.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		maxUpload: documents.MaxUploadBytes(),
	}
}

func (h *DocumentHandler) List(c *gin.Context) {
	response.OK(c, gin.H{
		"documents": h.documents.List(),
		"ingested":  h.documents.IsIngested(),
		"count":     h.documents.Count(),
	})
}

// Upload accepts one or more files under the "file" multipart field. Each
// file succeeds or fails on its own; the response carries a result per file.
func (h *DocumentHandler) Upload(c *gin.Context) {
	if !strings.Contains(c.GetHeader("Content-Type"), "multipart/form-data") {
		response.Error(c, http.StatusBadRequest, "Expected multipart/form-data")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to parse upload: "+err.Error())
		return
	}

	files := form.File["file"]
	results := make([]UploadResult, 0, len(files))
	for _, fh := range files {
		if fh.Filename == "" {
			continue
		}
		name := filepath.Base(fh.Filename)

		// Oversized files are rejected up front so they are never read in.
		if h.maxUpload > 0 && fh.Size > h.maxUpload {
			results = append(results, UploadResult{
				Name:    name,
				OK:      false,
				Message: h.uploadMessage(app.ErrFileTooLarge, name),
			})
			continue
		}

		data, err := readUploadedFile(fh)
		if err == nil {
			err = h.documents.Upload(name, data)
		}
		results = append(results, UploadResult{
			Name:    name,
			OK:      err == nil,
			Message: h.uploadMessage(err, name),
		})
	}

	if len(results) == 0 {
		response.Error(c, http.StatusBadRequest, "No files received")
		return
	}

	response.OK(c, gin.H{
		"results":   results,
		"documents": h.documents.List(),
	})
}

func (h *DocumentHandler) Remove(c *gin.Context) {
	var req RemoveRequest
	if !bindJSON(c, &req) {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		response.Error(c, http.StatusBadRequest, "Missing 'name' field")
		return
	}

	if err := h.documents.Remove(name); err != nil {
		switch {
		case errors.Is(err, app.ErrDocumentNotFound):
			response.Error(c, http.StatusBadRequest, "Not found: "+name)
		default:
			response.Error(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	response.OK(c, gin.H{
		"message":   "Removed: " + name,
		"documents": h.documents.List(),
	})
}

func (h *DocumentHandler) Ingest(c *gin.Context) {
	count, err := h.documents.Ingest()
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNoDocuments):
			response.Error(c, http.StatusBadRequest, "No documents to ingest")
		default:
			response.Error(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	noun := lo.Ternary(count == 1, "document", "documents")
	response.OK(c, gin.H{
		"message":  fmt.Sprintf("%d %s ingested", count, noun),
		"ingested": true,
	})
}

func (h *DocumentHandler) uploadMessage(err error, name string) string {
	switch {
	case err == nil:
		return "Added: " + name
	case errors.Is(err, app.ErrUnsupportedType):
		return "Unsupported file type: " + strings.ToLower(filepath.Ext(name))
	case errors.Is(err, app.ErrFileTooLarge):
		return fmt.Sprintf("Too large: %s (max %s)", name, humanize.IBytes(uint64(h.maxUpload)))
	case errors.Is(err, app.ErrDuplicateDocument):
		return "Already uploaded: " + name
	default:
		return err.Error()
	}
}

func readUploadedFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file failed: %w", err)
	}
	return data, nil
}
