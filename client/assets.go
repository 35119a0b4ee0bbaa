package client

import "strings"

// placeholderAsset is shown when an entity has no media of its own.
const placeholderAsset = "/placeholder.png"

// ResolveAssetURL turns a backend-relative media path into an absolute URL.
//
//   - empty input yields the placeholder image
//   - absolute http/https URLs pass through unchanged
//   - anything else is joined onto the asset base with exactly one slash
func (c *Client) ResolveAssetURL(path string) string {
	if path == "" {
		return c.assetBase + placeholderAsset
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimSuffix(c.assetBase, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
