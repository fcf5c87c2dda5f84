package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("PK\x03\x04fake"), 0o644))
	return path
}

func TestUpload(t *testing.T) {
	var gotPath, gotAuth, gotFile string
	var gotContent []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			gotFile = header.Filename
			gotContent, _ = io.ReadAll(file)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"fileUrl": "https://files/app.zip", "shaUrl": "https://files/app.zip.sha256"})
	}))
	defer srv.Close()

	u, err := NewHTTPUploader(Options{Endpoint: srv.URL + "/", AuthToken: "abc"})
	require.NoError(t, err)

	out, err := u.Upload(context.Background(), "Acme", writeZip(t, "app.zip"))
	require.NoError(t, err)

	assert.Equal(t, "/toolkit/zipdeploy/Acme", gotPath)
	assert.Equal(t, "Basic abc", gotAuth)
	assert.Equal(t, "app.zip", gotFile)
	assert.Equal(t, []byte("PK\x03\x04fake"), gotContent)
	assert.Equal(t, "https://files/app.zip", out.FileURL)
	assert.Equal(t, "https://files/app.zip.sha256", out.ShaURL)
	assert.Equal(t, "app.zip", out.Name)
}

func TestUploadStreamsLargeFile(t *testing.T) {
	payload := bytes.Repeat([]byte("0123456789abcdef"), 1<<18)
	path := filepath.Join(t.TempDir(), "big.zip")
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	var gotLength int64
	var gotContent []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLength = r.ContentLength
		file, _, err := r.FormFile("file")
		if assert.NoError(t, err) {
			gotContent, _ = io.ReadAll(file)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"fileUrl": "https://files/big.zip", "shaUrl": "https://files/big.zip.sha256"})
	}))
	defer srv.Close()

	u, err := NewHTTPUploader(Options{Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "Acme", path)
	require.NoError(t, err)

	// Streamed bodies have no declared length and arrive chunked.
	assert.Equal(t, int64(-1), gotLength)
	assert.Equal(t, len(payload), len(gotContent))
	assert.True(t, bytes.Equal(payload, gotContent))
}

func TestUploadRejectsNonZip(t *testing.T) {
	u, err := NewHTTPUploader(Options{Endpoint: "http://unused"})
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "Acme", writeZip(t, "app.tar"))
	assert.ErrorIs(t, err, ErrNotZip)
}

func TestUploadServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	u, err := NewHTTPUploader(Options{Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "Acme", writeZip(t, "app.zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestUploadIncompleteResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"fileUrl": "https://files/app.zip"})
	}))
	defer srv.Close()

	u, err := NewHTTPUploader(Options{Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "Acme", writeZip(t, "app.zip"))
	assert.Error(t, err)
}

func TestNewHTTPUploaderRequiresEndpoint(t *testing.T) {
	_, err := NewHTTPUploader(Options{})
	assert.Error(t, err)
}
