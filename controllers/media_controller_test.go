package controllers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartRequest(t *testing.T, title string, files map[string][]byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if title != "" {
		require.NoError(t, w.WriteField("title", title))
	}
	for name, data := range files {
		part, err := w.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/images", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadProductImages(t *testing.T) {
	uploader := &fakeUploader{}
	r := newTestRouter(newMemoryStore(), uploader)

	w := serveRequest(r, multipartRequest(t, "Lace Bra", map[string][]byte{"front.png": pngBytes}))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"images":[{"url":"https://files.example/media/products/lace-bra/front.png"}]}`, w.Body.String())
	assert.Equal(t, "lace-bra", uploader.slug)
	assert.Equal(t, 1, uploader.files)
}

func TestUploadProductImages_Rejections(t *testing.T) {
	r := newTestRouter(newMemoryStore(), &fakeUploader{})

	w := serveRequest(r, multipartRequest(t, "", map[string][]byte{"notes.txt": []byte("hello")}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serveRequest(r, multipartRequest(t, "", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"images must be 1 to 2"}`, w.Body.String())

	w = serveRequest(r, httptest.NewRequest(http.MethodPost, "/api/media/images", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadProductImages_StorageErrors(t *testing.T) {
	w := serveRequest(newTestRouter(newMemoryStore(), nil),
		multipartRequest(t, "", map[string][]byte{"front.png": pngBytes}))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serveRequest(newTestRouter(newMemoryStore(), &fakeUploader{err: errors.New("bucket unavailable")}),
		multipartRequest(t, "", map[string][]byte{"front.png": pngBytes}))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
