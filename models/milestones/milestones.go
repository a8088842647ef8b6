// Package milestones models repository milestones.
package milestones

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type State string

const (
	Open   State = "open"
	Closed State = "closed"
)

var States = codec.NewClosedEnum("milestones.State", Open, Closed)

type Milestone struct {
	Url          string
	HtmlUrl      string
	LabelsUrl    string
	Id           uint64
	NodeId       *string
	Number       uint64
	Title        string
	Description  *string
	Creator      *users.User
	OpenIssues   uint64
	ClosedIssues uint64
	State        State
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DueOn        *time.Time
	ClosedAt     *time.Time
}

func DecodeMilestone(v codec.Value) (Milestone, error) {
	o := codec.AsObject(v)
	milestone := Milestone{
		Url:          o.String("url"),
		HtmlUrl:      o.String("html_url"),
		LabelsUrl:    o.String("labels_url"),
		Id:           o.Uint64("id"),
		NodeId:       o.OptString("node_id"),
		Number:       o.Uint64("number"),
		Title:        o.String("title"),
		Description:  o.OptString("description"),
		Creator:      codec.OptField(o, "creator", users.DecodeUser),
		OpenIssues:   o.Uint64("open_issues"),
		ClosedIssues: o.Uint64("closed_issues"),
		State:        codec.EnumField(o, "state", States),
		CreatedAt:    o.Time("created_at"),
		UpdatedAt:    o.Time("updated_at"),
		DueOn:        o.OptTime("due_on"),
		ClosedAt:     o.OptTime("closed_at"),
	}
	return milestone, o.Err()
}
