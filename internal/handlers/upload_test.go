package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()

	dir := t.TempDir()
	handler := NewUploadHandler(dir)

	r := gin.New()
	r.POST("/api/upload/image", handler.UploadImage)
	r.POST("/api/upload/images", handler.UploadImages)
	return r, dir
}

func multipartBody(t *testing.T, field string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range filenames {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadHandler_SingleImage(t *testing.T) {
	r, dir := setupUploadRouter(t)

	body, contentType := multipartBody(t, "file", "avatar.png")
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		File uploadedFile `json:"file"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "avatar.png", response.File.OriginalName)
	require.Equal(t, "/uploads/"+response.File.Filename, response.File.URL)

	_, err := os.Stat(filepath.Join(dir, response.File.Filename))
	require.NoError(t, err)
}

func TestUploadHandler_RejectsNonImage(t *testing.T) {
	r, _ := setupUploadRouter(t)

	body, contentType := multipartBody(t, "file", "notes.txt")
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_MissingFile(t *testing.T) {
	r, _ := setupUploadRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_MultipleImages(t *testing.T) {
	r, dir := setupUploadRouter(t)

	body, contentType := multipartBody(t, "files", "one.jpg", "two.webp")
	req := httptest.NewRequest(http.MethodPost, "/api/upload/images", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Files []uploadedFile `json:"files"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Files, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
