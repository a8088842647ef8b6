// Package keys models repository deploy keys.
package keys

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
)

type Key struct {
	Id        uint64
	Key       string
	Url       *string
	Title     string
	Verified  bool
	CreatedAt time.Time
	ReadOnly  bool
}

func DecodeKey(v codec.Value) (Key, error) {
	o := codec.AsObject(v)
	key := Key{
		Id:        o.Uint64("id"),
		Key:       o.String("key"),
		Url:       o.OptString("url"),
		Title:     o.String("title"),
		Verified:  o.Bool("verified"),
		CreatedAt: o.Time("created_at"),
		ReadOnly:  o.Bool("read_only"),
	}
	return key, o.Err()
}

type KeyOptions struct {
	Title    string `json:"title"`
	Key      string `json:"key"`
	ReadOnly bool   `json:"read_only"`
}
