// Package response turns a finished HTTP exchange into either a typed value or a typed error.
//
// A 2xx status decodes the body with the supplied decoder. Any other status decodes the body as
// an API error and returns it as an apierror.ClientError.
package response

import (
	"github.com/gruntwork-io/hubcodec/apierror"
	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/search"
)

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// Decode decodes a single resource.
func Decode[T any](status int, body []byte, fn codec.DecodeFunc[T]) (T, error) {
	if !IsSuccess(status) {
		var zero T
		return zero, apierror.Decode(status, body)
	}
	return codec.Decode(body, fn)
}

// DecodeList decodes a top-level array of resources.
func DecodeList[T any](status int, body []byte, fn codec.DecodeFunc[T]) ([]T, error) {
	if !IsSuccess(status) {
		return nil, apierror.Decode(status, body)
	}
	return codec.DecodeList(body, fn)
}

// DecodeSearch decodes a search envelope whose items are decoded with item.
func DecodeSearch[T any](status int, body []byte, item codec.DecodeFunc[T]) (search.Result[T], error) {
	return Decode(status, body, search.Of(item))
}
