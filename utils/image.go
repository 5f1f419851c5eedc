package utils

import "encoding/base64"

// EncodeDataURL packs raw image bytes into a data URL, the opaque image
// reference the client renders directly.
func EncodeDataURL(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
