package docurl

import (
	"encoding/base64"
	"fmt"

	"docdesk/internal/domains"

	"github.com/h2non/filetype"
)

// MaxAssetSize bounds an uploaded logo or signature.
const MaxAssetSize = 2 << 20

// EncodeAsset turns uploaded image bytes into a data URI. Empty, oversized
// and non-image payloads fail with domains.ErrAssetRead.
func EncodeAsset(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", domains.ErrAssetRead)
	}
	if len(data) > MaxAssetSize {
		return "", fmt.Errorf("%w: file exceeds %d bytes", domains.ErrAssetRead, MaxAssetSize)
	}
	kind, err := filetype.Image(data)
	if err != nil || kind == filetype.Unknown {
		return "", fmt.Errorf("%w: not a recognised image", domains.ErrAssetRead)
	}
	return "data:" + kind.MIME.Value + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
