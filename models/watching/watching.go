// Package watching models repository watch subscriptions.
package watching

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
)

type Subscription struct {
	Subscribed    bool
	Ignored       bool
	Reason        *string
	CreatedAt     time.Time
	Url           string
	RepositoryUrl string
}

func DecodeSubscription(v codec.Value) (Subscription, error) {
	o := codec.AsObject(v)
	subscription := Subscription{
		Subscribed:    o.Bool("subscribed"),
		Ignored:       o.Bool("ignored"),
		Reason:        o.OptString("reason"),
		CreatedAt:     o.Time("created_at"),
		Url:           o.String("url"),
		RepositoryUrl: o.String("repository_url"),
	}
	return subscription, o.Err()
}

// SubscriptionOptions sets the watch state of a repository.
type SubscriptionOptions struct {
	Subscribed bool `json:"subscribed"`
	Ignored    bool `json:"ignored"`
}
