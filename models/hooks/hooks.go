// Package hooks models repository webhooks.
package hooks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
)

// ContentType is the payload format a webhook delivers.
type ContentType string

const (
	Json ContentType = "json"
	Form ContentType = "form"
)

var ContentTypes = codec.NewOpenEnum("hooks.ContentType", Json, Form)

func (c ContentType) IsOther() bool {
	return !ContentTypes.Known(c)
}

type Hook struct {
	Id        uint64
	Type      *string
	Name      string
	Active    bool
	Events    []string
	Config    Config
	Url       string
	TestUrl   string
	PingUrl   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Config is the delivery configuration of a hook. Raw holds the whole config object verbatim,
// including members specific to other hook kinds.
type Config struct {
	Url         *string
	ContentType *ContentType
	Secret      *string
	InsecureSsl bool
	Raw         json.RawMessage
}

func DecodeHook(v codec.Value) (Hook, error) {
	o := codec.AsObject(v)
	hook := Hook{
		Id:        o.Uint64("id"),
		Type:      o.OptString("type"),
		Name:      o.String("name"),
		Active:    o.Bool("active"),
		Events:    o.Strings("events"),
		Config:    codec.Field(o, "config", DecodeConfig),
		Url:       o.String("url"),
		TestUrl:   o.String("test_url"),
		PingUrl:   o.String("ping_url"),
		CreatedAt: o.Time("created_at"),
		UpdatedAt: o.Time("updated_at"),
	}
	return hook, o.Err()
}

func DecodeConfig(v codec.Value) (Config, error) {
	o := codec.AsObject(v)
	config := Config{
		Url:         o.OptString("url"),
		ContentType: codec.OptEnumField(o, "content_type", ContentTypes),
		Secret:      o.OptString("secret"),
		InsecureSsl: codec.Field(o, "insecure_ssl", decodeInsecureSsl),
	}
	if err := o.Err(); err != nil {
		return Config{}, err
	}
	config.Raw = json.RawMessage(v.Raw())
	return config, nil
}

// decodeInsecureSsl accepts the "0"/"1" strings the API sends as well as the numbers 0 and 1. A missing
// member means verification is on.
func decodeInsecureSsl(v codec.Value) (bool, error) {
	if v.IsNull() {
		return false, nil
	}
	if s, err := v.String(); err == nil {
		switch s {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
		return false, &codec.DecodeError{Field: v.Path(), Expected: `"0" or "1"`, Reason: fmt.Sprintf("got %q", s)}
	}
	n, err := v.Int64()
	if err != nil {
		return false, &codec.DecodeError{Field: v.Path(), Expected: `"0" or "1"`, Reason: "got " + v.Kind()}
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, &codec.DecodeError{Field: v.Path(), Expected: `"0" or "1"`, Reason: "got " + v.Raw()}
}
