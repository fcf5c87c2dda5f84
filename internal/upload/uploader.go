// Package upload sends deployment zips to the toolkit upload service.
package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fnctl/internal/functionapp"
	"fnctl/pkg/logging"
)

// DefaultPath is the upload route prefix; the project name is appended.
const DefaultPath = "/toolkit/zipdeploy/"

// ErrNotZip is returned for files without a .zip extension.
var ErrNotZip = errors.New("only .zip files can be published")

// Options configures an HTTPUploader.
type Options struct {
	// Endpoint is the upload service origin, e.g. https://toolkit.example.com.
	Endpoint   string
	Path       string
	AuthToken  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// HTTPUploader posts zips as multipart/form-data and decodes the stored file
// descriptor from the response.
type HTTPUploader struct {
	endpoint   string
	path       string
	authToken  string
	httpClient *http.Client
}

var _ functionapp.Uploader = (*HTTPUploader)(nil)

// NewHTTPUploader creates an uploader for the given service.
func NewHTTPUploader(opts Options) (*HTTPUploader, error) {
	if strings.TrimSpace(opts.Endpoint) == "" {
		return nil, fmt.Errorf("upload endpoint is not configured")
	}
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Minute
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &HTTPUploader{
		endpoint:   strings.TrimRight(opts.Endpoint, "/"),
		path:       "/" + strings.Trim(path, "/") + "/",
		authToken:  opts.AuthToken,
		httpClient: httpClient,
	}, nil
}

// Upload stores the zip at path for project.
func (u *HTTPUploader) Upload(ctx context.Context, project, path string) (functionapp.UploadedFile, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return functionapp.UploadedFile{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrNotZip)
	}
	f, err := os.Open(path)
	if err != nil {
		return functionapp.UploadedFile{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeForm(mw, f, filepath.Base(path)))
	}()
	defer pr.Close()

	target := u.endpoint + u.path + project
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, pr)
	if err != nil {
		return functionapp.UploadedFile{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if u.authToken != "" {
		req.Header.Set("Authorization", "Basic "+u.authToken)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return functionapp.UploadedFile{}, fmt.Errorf("upload %s: %w", filepath.Base(path), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return functionapp.UploadedFile{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return functionapp.UploadedFile{}, fmt.Errorf("upload %s failed: %s", filepath.Base(path), resp.Status)
	}

	var out functionapp.UploadedFile
	if err := json.Unmarshal(data, &out); err != nil {
		return functionapp.UploadedFile{}, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if out.FileURL == "" || out.ShaURL == "" {
		return functionapp.UploadedFile{}, fmt.Errorf("upload response is missing file or checksum URL")
	}
	if out.Name == "" {
		out.Name = filepath.Base(path)
	}
	logging.Info("Upload", "Uploaded %s for project %s", out.Name, project)
	return out, nil
}

// writeForm streams src into mw as the "file" part and closes the form.
func writeForm(mw *multipart.Writer, src io.Reader, name string) error {
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return mw.Close()
}
