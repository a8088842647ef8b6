// Package comments models issue and pull request conversation comments.
package comments

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type Comment struct {
	Id        uint64
	NodeId    *string
	Url       string
	HtmlUrl   string
	IssueUrl  *string
	Body      string
	User      users.User
	CreatedAt time.Time
	UpdatedAt time.Time
}

func DecodeComment(v codec.Value) (Comment, error) {
	o := codec.AsObject(v)
	comment := Comment{
		Id:        o.Uint64("id"),
		NodeId:    o.OptString("node_id"),
		Url:       o.String("url"),
		HtmlUrl:   o.String("html_url"),
		IssueUrl:  o.OptString("issue_url"),
		Body:      o.String("body"),
		User:      codec.Field(o, "user", users.DecodeUser),
		CreatedAt: o.Time("created_at"),
		UpdatedAt: o.Time("updated_at"),
	}
	return comment, o.Err()
}

type CommentOptions struct {
	Body string `json:"body"`
}
