// Package api holds the per-resource request functions of the SDK.
// Every function forwards its inputs verbatim as method + path + body to
// the shared HTTP client and returns the decoded response; errors are
// classified but never swallowed here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pawplanet/pawplanet-go/client/internal/apierr"
	"github.com/pawplanet/pawplanet-go/client/internal/types"
)

// maxBodyBytes caps how much of a response body is read into memory.
const maxBodyBytes = 1 << 20

// doJSON performs one JSON round trip.
//
//   - in is marshalled as the request body when non-nil.
//   - out is decoded from the response body when non-nil and the body
//     is non-empty.
//   - a status other than wantStatus yields a classified *apierr.Error
//     carrying the backend message field.
func doJSON(ctx context.Context, hc *http.Client, method, reqURL string, in, out any, wantStatus int, operation string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(httpReq)
	if err != nil {
		return apierr.NewNetworkError(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode != wantStatus {
		return apierr.FromResponse(operation, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// listURL appends encoded list parameters to a collection URL.
func listURL(base string, params types.ListParams) string {
	if q := params.Values().Encode(); q != "" {
		return base + "?" + q
	}
	return base
}

// pathEscape guards identifiers interpolated into path templates.
func pathEscape(id string) string { return url.PathEscape(id) }
