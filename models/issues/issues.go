// Package issues models repository issues.
package issues

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/labels"
	"github.com/gruntwork-io/hubcodec/models/milestones"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type State string

const (
	Open   State = "open"
	Closed State = "closed"
)

var States = codec.NewClosedEnum("issues.State", Open, Closed)

type Issue struct {
	Id            uint64
	NodeId        *string
	Url           string
	RepositoryUrl *string
	LabelsUrl     string
	CommentsUrl   string
	EventsUrl     string
	HtmlUrl       string
	Number        uint64
	State         State
	Title         string
	Body          *string
	User          users.User
	Labels        []labels.Label
	Assignee      *users.User
	Assignees     []users.User
	Milestone     *milestones.Milestone
	Locked        bool
	Comments      uint64
	ClosedAt      *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func DecodeIssue(v codec.Value) (Issue, error) {
	o := codec.AsObject(v)
	issue := Issue{
		Id:            o.Uint64("id"),
		NodeId:        o.OptString("node_id"),
		Url:           o.String("url"),
		RepositoryUrl: o.OptString("repository_url"),
		LabelsUrl:     o.String("labels_url"),
		CommentsUrl:   o.String("comments_url"),
		EventsUrl:     o.String("events_url"),
		HtmlUrl:       o.String("html_url"),
		Number:        o.Uint64("number"),
		State:         codec.EnumField(o, "state", States),
		Title:         o.String("title"),
		Body:          o.OptString("body"),
		User:          codec.Field(o, "user", users.DecodeUser),
		Labels:        codec.ListField(o, "labels", labels.DecodeLabel),
		Assignee:      codec.OptField(o, "assignee", users.DecodeUser),
		Assignees:     codec.OptListField(o, "assignees", users.DecodeUser),
		Milestone:     codec.OptField(o, "milestone", milestones.DecodeMilestone),
		Locked:        o.Bool("locked"),
		Comments:      o.Uint64("comments"),
		ClosedAt:      o.OptTime("closed_at"),
		CreatedAt:     o.Time("created_at"),
		UpdatedAt:     o.Time("updated_at"),
	}
	return issue, o.Err()
}

// IssueOptions is the body of a create or edit issue request.
type IssueOptions struct {
	Title     string   `json:"title"`
	Body      *string  `json:"body,omitempty"`
	Assignee  *string  `json:"assignee,omitempty"`
	Milestone *uint64  `json:"milestone,omitempty"`
	Labels    []string `json:"labels"`
}
