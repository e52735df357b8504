package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushdesk/rush-scheduler/internal/httperr"
	"github.com/rushdesk/rush-scheduler/internal/httpresp"
	"github.com/rushdesk/rush-scheduler/internal/pdfparser"
	"github.com/rushdesk/rush-scheduler/internal/usecase/intake"
)

// 10 MB is far above any plausible application PDF.
const maxApplicationSize = 10 << 20

type ApplicationHandler struct {
	importer *intake.ImportApplication
}

func NewApplicationHandler(importer *intake.ImportApplication) *ApplicationHandler {
	return &ApplicationHandler{importer: importer}
}

// --------- Requests ---------

type CommitApplicationRequest struct {
	Filename string                       `json:"filename"`
	Parsed   pdfparser.ParsedApplication `json:"parsed" binding:"required"`
}

// --------- Handlers ---------

// Preview extracts the rushee and their availabilities from an uploaded PDF
// without persisting anything.
func (h *ApplicationHandler) Preview(c *gin.Context) {
	filename, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	parsed, err := h.importer.Preview(c.Request.Context(), actorFromContext(c), filename, data)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, parsed)
}

// Import parses and persists in one shot.
func (h *ApplicationHandler) Import(c *gin.Context) {
	filename, data, ok := h.readUpload(c)
	if !ok {
		return
	}

	result, err := h.importer.Execute(c.Request.Context(), actorFromContext(c), filename, data)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, result)
}

// Commit persists a previewed application after admin edits. No file travels
// with it, so nothing is archived.
func (h *ApplicationHandler) Commit(c *gin.Context) {
	var req CommitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	result, err := h.importer.Commit(c.Request.Context(), actorFromContext(c), req.Filename, nil, &req.Parsed)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, result)
}

func (h *ApplicationHandler) readUpload(c *gin.Context) (string, []byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Attach the application PDF as 'file'.")
		return "", nil, false
	}
	if fileHeader.Size > maxApplicationSize {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "file_too_large", "The PDF is too large.")
		return "", nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read the upload.")
		return "", nil, false
	}

	return fileHeader.Filename, data, true
}
