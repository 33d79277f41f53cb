package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/qagen/api/http/middleware"
	"github.com/artem13815/qagen/api/http/presenter"
	"github.com/artem13815/qagen/pkg/knowledge"
	"github.com/artem13815/qagen/pkg/logger"
)

const (
	msgKnowledgeUploaded = "Domain knowledge uploaded successfully."
	msgNoKnowledge       = "No domain knowledge provided."
	msgInvalidBody       = "Invalid request body."
	msgUnreadableFile    = "Failed to read domain knowledge file."
)

type KnowledgeHandler struct {
	store knowledge.Store
	log   *logger.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewKnowledgeHandler(store knowledge.Store, log *logger.Logger, maxBytes int64) *KnowledgeHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20
	}
	return &KnowledgeHandler{store: store, log: log, maxBytes: maxBytes}
}

type uploadKnowledgeRequest struct {
	Knowledge string `json:"knowledge"`
}

// Upload replaces the stored domain knowledge with the posted text.
// @Summary Upload domain knowledge
// @Description Replaces the single in-memory domain knowledge document used to ground test cases.
// @Tags    Knowledge
// @Accept  json
// @Produce json
// @Param   input body uploadKnowledgeRequest true "Knowledge text"
// @Success 200 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /upload-domain-knowledge [post]
func (h *KnowledgeHandler) Upload(c *fiber.Ctx) error {
	var req uploadKnowledgeRequest
	if err := decodeJSON(c, &req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgInvalidBody)
	}
	if err := h.store.Replace(req.Knowledge); err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgNoKnowledge)
	}
	h.log.Info("domain knowledge updated", "request_id", middleware.RequestID(c), "chars", len(req.Knowledge), "source", "json")
	return presenter.Message(c, http.StatusOK, msgKnowledgeUploaded)
}

// UploadFile extracts text from an uploaded document (txt, md, csv, json,
// pdf, docx) and stores it as the domain knowledge.
// @Summary Upload domain knowledge file
// @Tags    Knowledge
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Knowledge document"
// @Success 200 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /upload-domain-knowledge/file [post]
func (h *KnowledgeHandler) UploadFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, msgNoKnowledge)
	}
	if !knowledge.SupportedExtension(fh.Filename) {
		return presenter.Error(c, http.StatusBadRequest, knowledge.ErrUnsupportedFormat.Error())
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgUnreadableFile)
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := knowledge.ExtractText(fh.Filename, data)
	if err != nil {
		h.log.Warn("knowledge file extraction failed", "request_id", middleware.RequestID(c), "filename", fh.Filename, "error", err)
		return presenter.Error(c, http.StatusBadRequest, msgUnreadableFile)
	}
	if err := h.store.Replace(text); err != nil {
		if errors.Is(err, knowledge.ErrEmptyKnowledge) {
			return presenter.Error(c, http.StatusBadRequest, msgNoKnowledge)
		}
		return err
	}
	h.log.Info("domain knowledge updated", "request_id", middleware.RequestID(c), "chars", len(text), "source", "file", "filename", fh.Filename, "sizeB", len(data))
	return presenter.Message(c, http.StatusOK, msgKnowledgeUploaded)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}

// decodeJSON treats an empty body as an empty request so that missing
// fields are reported by the handler rather than as a parse failure.
func decodeJSON(c *fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(v)
}
