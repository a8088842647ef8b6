// Package ratelimit models the rate limit status endpoint.
package ratelimit

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
)

type Status struct {
	Resources Resources
	// Rate mirrors Resources.Core. Older servers only send this member.
	Rate *Resource
}

type Resources struct {
	Core    Resource
	Search  Resource
	Graphql *Resource
}

type Resource struct {
	Limit     uint64
	Remaining uint64
	Used      *uint64
	// Reset is sent as epoch seconds.
	Reset time.Time
}

// Exhausted reports whether no calls remain before Reset.
func (r Resource) Exhausted() bool {
	return r.Remaining == 0
}

func DecodeStatus(v codec.Value) (Status, error) {
	o := codec.AsObject(v)
	status := Status{
		Resources: codec.Field(o, "resources", DecodeResources),
		Rate:      codec.OptField(o, "rate", DecodeResource),
	}
	return status, o.Err()
}

func DecodeResources(v codec.Value) (Resources, error) {
	o := codec.AsObject(v)
	resources := Resources{
		Core:    codec.Field(o, "core", DecodeResource),
		Search:  codec.Field(o, "search", DecodeResource),
		Graphql: codec.OptField(o, "graphql", DecodeResource),
	}
	return resources, o.Err()
}

func DecodeResource(v codec.Value) (Resource, error) {
	o := codec.AsObject(v)
	resource := Resource{
		Limit:     o.Uint64("limit"),
		Remaining: o.Uint64("remaining"),
		Used:      o.OptUint64("used"),
		Reset:     o.UnixTime("reset"),
	}
	return resource, o.Err()
}
