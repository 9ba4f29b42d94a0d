package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thales-ken/CRM/internal/constants"
	apierrors "github.com/thales-ken/CRM/internal/errors"
)

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// UploadHandler stores uploaded contact photos and returns accessible URLs.
type UploadHandler struct {
	uploadDir string
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

type uploadedFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Mimetype     string `json:"mimetype"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

// UploadImage stores a single image from the "file" form field.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "No file uploaded")
		return
	}

	info, err := h.save(c, file)
	if err != nil {
		apierrors.InternalError(c, "Failed to upload file")
		return
	}
	if info == nil {
		apierrors.BadRequest(c, "Unsupported file type")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"file":    info,
	})
}

// UploadImages stores up to MaxUploadFiles images from the "files" form field.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		apierrors.BadRequest(c, "No files uploaded")
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		apierrors.BadRequest(c, "No files uploaded")
		return
	}
	if len(files) > constants.MaxUploadFiles {
		files = files[:constants.MaxUploadFiles]
	}

	infos := make([]uploadedFile, 0, len(files))
	for _, file := range files {
		info, err := h.save(c, file)
		if err != nil {
			apierrors.InternalError(c, "Failed to upload files")
			return
		}
		if info == nil {
			apierrors.BadRequest(c, "Unsupported file type")
			return
		}
		infos = append(infos, *info)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Files uploaded successfully",
		"files":   infos,
	})
}

// save writes the upload under a fresh uuid name. Returns nil info for
// disallowed extensions.
func (h *UploadHandler) save(c *gin.Context, file *multipart.FileHeader) (*uploadedFile, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return nil, nil
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return nil, err
	}

	return &uploadedFile{
		Filename:     name,
		OriginalName: file.Filename,
		Mimetype:     file.Header.Get("Content-Type"),
		Size:         file.Size,
		URL:          fmt.Sprintf("/uploads/%s", name),
	}, nil
}
