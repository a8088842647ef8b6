package codec

import (
	"encoding/base64"
	"strings"
)

// EncodingBase64 is the only content encoding the API uses for file and blob bodies.
const EncodingBase64 = "base64"

// DecodeContent turns an encoded content body into bytes. The API wraps base64 bodies at 60
// columns, so line breaks are dropped before decoding.
func DecodeContent(encoding, content string) ([]byte, error) {
	if encoding != EncodingBase64 {
		return nil, &ContentDecodeError{Encoding: encoding}
	}
	stripped := strings.NewReplacer("\n", "", "\r", "").Replace(content)
	decoded, err := base64.StdEncoding.DecodeString(stripped)
	if err != nil {
		return nil, &ContentDecodeError{Encoding: encoding, Err: err}
	}
	return decoded, nil
}
