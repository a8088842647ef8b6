// Package pullcommits models the commits listed on a pull request.
package pullcommits

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type PullCommit struct {
	Url         string
	Sha         string
	NodeId      *string
	HtmlUrl     string
	CommentsUrl string
	Commit      CommitDetails
	// Author and Committer are null when the git identity matches no account.
	Author    *users.User
	Committer *users.User
	Parents   []CommitRef
}

type CommitDetails struct {
	Url          string
	Author       UserStamp
	Committer    *UserStamp
	Message      string
	Tree         CommitRef
	CommentCount uint64
}

type CommitRef struct {
	Url string
	Sha string
}

// UserStamp is a git identity and the time it acted.
type UserStamp struct {
	Name  string
	Email string
	Date  time.Time
}

func DecodePullCommit(v codec.Value) (PullCommit, error) {
	o := codec.AsObject(v)
	commit := PullCommit{
		Url:         o.String("url"),
		Sha:         o.String("sha"),
		NodeId:      o.OptString("node_id"),
		HtmlUrl:     o.String("html_url"),
		CommentsUrl: o.String("comments_url"),
		Commit:      codec.Field(o, "commit", DecodeCommitDetails),
		Author:      codec.OptField(o, "author", users.DecodeUser),
		Committer:   codec.OptField(o, "committer", users.DecodeUser),
		Parents:     codec.ListField(o, "parents", DecodeCommitRef),
	}
	return commit, o.Err()
}

func DecodeCommitDetails(v codec.Value) (CommitDetails, error) {
	o := codec.AsObject(v)
	details := CommitDetails{
		Url:          o.String("url"),
		Author:       codec.Field(o, "author", DecodeUserStamp),
		Committer:    codec.OptField(o, "committer", DecodeUserStamp),
		Message:      o.String("message"),
		Tree:         codec.Field(o, "tree", DecodeCommitRef),
		CommentCount: o.Uint64("comment_count"),
	}
	return details, o.Err()
}

func DecodeCommitRef(v codec.Value) (CommitRef, error) {
	o := codec.AsObject(v)
	ref := CommitRef{
		Url: o.String("url"),
		Sha: o.String("sha"),
	}
	return ref, o.Err()
}

func DecodeUserStamp(v codec.Value) (UserStamp, error) {
	o := codec.AsObject(v)
	stamp := UserStamp{
		Name:  o.String("name"),
		Email: o.String("email"),
		Date:  o.Time("date"),
	}
	return stamp, o.Err()
}
