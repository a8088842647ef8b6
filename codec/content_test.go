package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		encoding string
		content  string
		expected string
	}{
		{"base64", "aGVsbG8gd29ybGQ=", "hello world"},
		{"base64", "aGVsbG8g\nd29ybGQ=\n", "hello world"},
		{"base64", "aGVsbG8g\r\nd29ybGQ=", "hello world"},
		{"base64", "", ""},
	}

	for _, tc := range cases {
		decoded, err := DecodeContent(tc.encoding, tc.content)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, string(decoded))
	}
}

func TestDecodeContentFailures(t *testing.T) {
	t.Parallel()

	_, err := DecodeContent("utf-8", "hello")
	var contentErr *ContentDecodeError
	require.True(t, errors.As(err, &contentErr))
	assert.True(t, contentErr.Unsupported())
	assert.Equal(t, "utf-8", contentErr.Encoding)

	_, err = DecodeContent("base64", "not base64!")
	require.True(t, errors.As(err, &contentErr))
	assert.False(t, contentErr.Unsupported())
}
