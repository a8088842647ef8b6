// Package reviewcomments models comments attached to lines of a pull request diff.
package reviewcomments

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type ReviewComment struct {
	Id       uint64
	NodeId   *string
	Url      string
	DiffHunk string
	Path     string
	// Position is null once the line it pointed at is no longer part of the diff.
	Position         *uint64
	OriginalPosition uint64
	CommitId         string
	OriginalCommitId string
	InReplyToId      *uint64
	User             users.User
	Body             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	HtmlUrl          string
	PullRequestUrl   string
}

func DecodeReviewComment(v codec.Value) (ReviewComment, error) {
	o := codec.AsObject(v)
	comment := ReviewComment{
		Id:               o.Uint64("id"),
		NodeId:           o.OptString("node_id"),
		Url:              o.String("url"),
		DiffHunk:         o.String("diff_hunk"),
		Path:             o.String("path"),
		Position:         o.OptUint64("position"),
		OriginalPosition: o.Uint64("original_position"),
		CommitId:         o.String("commit_id"),
		OriginalCommitId: o.String("original_commit_id"),
		InReplyToId:      o.OptUint64("in_reply_to_id"),
		User:             codec.Field(o, "user", users.DecodeUser),
		Body:             o.String("body"),
		CreatedAt:        o.Time("created_at"),
		UpdatedAt:        o.Time("updated_at"),
		HtmlUrl:          o.String("html_url"),
		PullRequestUrl:   o.String("pull_request_url"),
	}
	return comment, o.Err()
}

type ReviewCommentOptions struct {
	Body     string `json:"body"`
	CommitId string `json:"commit_id"`
	Path     string `json:"path"`
	Position uint64 `json:"position"`
}
