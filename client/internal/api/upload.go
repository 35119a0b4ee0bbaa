package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/pawplanet/pawplanet-go/client/internal/apierr"
	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// UploadFile streams a file to the media endpoint as multipart form data and
// returns the server-assigned relative URL. POST /api/upload
//
// filename is used only for its base name; the server decides where the
// bytes land.
func UploadFile(ctx context.Context, hc *http.Client, baseURL, field, filename string, r io.Reader) (*types.UploadResponse, error) {
	const operation = "upload file"

	if field == "" {
		field = "file"
	}
	if filename == "" {
		return nil, fmt.Errorf("%s: filename is required", operation)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filepath.Base(filename))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/api/upload", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")

	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, apierr.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apierr.FromResponse(operation, resp.StatusCode, raw)
	}

	var ur types.UploadResponse
	if err := json.Unmarshal(raw, &ur); err != nil {
		return nil, err
	}
	return &ur, nil
}
