package gemini

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURI wraps raw bytes as a base64 data URI with the given mime type.
func EncodeDataURI(data []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI splits a data URI into raw bytes and mime type. A bare base64
// string without a data: prefix is accepted and assumed to be a PNG, since
// callers sometimes hold only the encoded payload.
func DecodeDataURI(uri string) ([]byte, string, error) {
	mimeType := "image/png"
	payload := uri

	if strings.HasPrefix(uri, "data:") {
		comma := strings.Index(uri, ",")
		if comma < 0 {
			return nil, "", fmt.Errorf("data uri has no payload")
		}
		header := uri[len("data:"):comma]
		payload = uri[comma+1:]
		if mt := strings.TrimSuffix(header, ";base64"); mt != "" {
			mimeType = mt
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("data uri payload: %w", err)
	}
	return data, mimeType, nil
}
