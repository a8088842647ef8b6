// Package notifications models notification threads and thread subscriptions.
package notifications

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

// Reason is why the authenticated user received a notification.
type Reason string

const (
	Assign          Reason = "assign"
	Author          Reason = "author"
	Comment         Reason = "comment"
	Invitation      Reason = "invitation"
	Manual          Reason = "manual"
	Mention         Reason = "mention"
	ReviewRequested Reason = "review_requested"
	SecurityAlert   Reason = "security_alert"
	StateChange     Reason = "state_change"
	Subscribed      Reason = "subscribed"
	TeamMention     Reason = "team_mention"
	CiActivity      Reason = "ci_activity"
)

var Reasons = codec.NewOpenEnum("notifications.Reason",
	Assign, Author, Comment, Invitation, Manual, Mention, ReviewRequested, SecurityAlert,
	StateChange, Subscribed, TeamMention, CiActivity)

func (r Reason) IsOther() bool {
	return !Reasons.Known(r)
}

type Thread struct {
	Id              string
	Unread          bool
	Reason          Reason
	UpdatedAt       time.Time
	LastReadAt      *time.Time
	Subject         Subject
	Repository      Repository
	Url             string
	SubscriptionUrl string
}

type Subject struct {
	Title            string
	Url              *string
	LatestCommentUrl *string
	Type             string
}

// Repository is the short repository record embedded in a thread.
type Repository struct {
	Id       uint64
	NodeId   string
	Name     string
	FullName string
	Owner    users.User
	Private  bool
	HtmlUrl  string
}

type Subscription struct {
	Subscribed bool
	Ignored    bool
	Reason     *Reason
	CreatedAt  time.Time
	Url        string
	ThreadUrl  string
}

func DecodeThread(v codec.Value) (Thread, error) {
	o := codec.AsObject(v)
	thread := Thread{
		Id:              o.String("id"),
		Unread:          o.Bool("unread"),
		Reason:          codec.EnumField(o, "reason", Reasons),
		UpdatedAt:       o.Time("updated_at"),
		LastReadAt:      o.OptTime("last_read_at"),
		Subject:         codec.Field(o, "subject", DecodeSubject),
		Repository:      codec.Field(o, "repository", DecodeRepository),
		Url:             o.String("url"),
		SubscriptionUrl: o.String("subscription_url"),
	}
	return thread, o.Err()
}

func DecodeSubject(v codec.Value) (Subject, error) {
	o := codec.AsObject(v)
	subject := Subject{
		Title:            o.String("title"),
		Url:              o.OptString("url"),
		LatestCommentUrl: o.OptString("latest_comment_url"),
		Type:             o.String("type"),
	}
	return subject, o.Err()
}

func DecodeRepository(v codec.Value) (Repository, error) {
	o := codec.AsObject(v)
	repo := Repository{
		Id:       o.Uint64("id"),
		NodeId:   o.String("node_id"),
		Name:     o.String("name"),
		FullName: o.String("full_name"),
		Owner:    codec.Field(o, "owner", users.DecodeUser),
		Private:  valueOr(o.OptBool("private"), false),
		HtmlUrl:  o.String("html_url"),
	}
	return repo, o.Err()
}

func DecodeSubscription(v codec.Value) (Subscription, error) {
	o := codec.AsObject(v)
	subscription := Subscription{
		Subscribed: o.Bool("subscribed"),
		Ignored:    o.Bool("ignored"),
		Reason:     codec.OptEnumField(o, "reason", Reasons),
		CreatedAt:  o.Time("created_at"),
		Url:        o.String("url"),
		ThreadUrl:  o.String("thread_url"),
	}
	return subscription, o.Err()
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
