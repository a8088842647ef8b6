// Package repocommits models commits as listed from a repository's history.
//
// The records mirror the pull request commit listing today, but the two endpoints have drifted
// before, so this package keeps its own copies.
package repocommits

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type RepoCommit struct {
	Url         string
	Sha         string
	NodeId      *string
	HtmlUrl     string
	CommentsUrl string
	Commit      CommitDetails
	Author      *users.User
	Committer   *users.User
	Parents     []CommitRef
	// Stats and Files are only sent when fetching a single commit.
	Stats *Stats
	Files []File
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

type UserStamp struct {
	Name  string
	Email string
	Date  time.Time
}

type Stats struct {
	Additions uint64
	Deletions uint64
	Total     uint64
}

type File struct {
	Sha       *string
	Filename  string
	Status    string
	Additions uint64
	Deletions uint64
	Changes   uint64
	Patch     *string
}

func DecodeRepoCommit(v codec.Value) (RepoCommit, error) {
	o := codec.AsObject(v)
	commit := RepoCommit{
		Url:         o.String("url"),
		Sha:         o.String("sha"),
		NodeId:      o.OptString("node_id"),
		HtmlUrl:     o.String("html_url"),
		CommentsUrl: o.String("comments_url"),
		Commit:      codec.Field(o, "commit", decodeCommitDetails),
		Author:      codec.OptField(o, "author", users.DecodeUser),
		Committer:   codec.OptField(o, "committer", users.DecodeUser),
		Parents:     codec.ListField(o, "parents", decodeCommitRef),
		Stats:       codec.OptField(o, "stats", decodeStats),
		Files:       codec.OptListField(o, "files", decodeFile),
	}
	return commit, o.Err()
}

func decodeCommitDetails(v codec.Value) (CommitDetails, error) {
	o := codec.AsObject(v)
	details := CommitDetails{
		Url:          o.String("url"),
		Author:       codec.Field(o, "author", decodeUserStamp),
		Committer:    codec.OptField(o, "committer", decodeUserStamp),
		Message:      o.String("message"),
		Tree:         codec.Field(o, "tree", decodeCommitRef),
		CommentCount: o.Uint64("comment_count"),
	}
	return details, o.Err()
}

func decodeCommitRef(v codec.Value) (CommitRef, error) {
	o := codec.AsObject(v)
	ref := CommitRef{
		Url: o.String("url"),
		Sha: o.String("sha"),
	}
	return ref, o.Err()
}

func decodeUserStamp(v codec.Value) (UserStamp, error) {
	o := codec.AsObject(v)
	stamp := UserStamp{
		Name:  o.String("name"),
		Email: o.String("email"),
		Date:  o.Time("date"),
	}
	return stamp, o.Err()
}

func decodeStats(v codec.Value) (Stats, error) {
	o := codec.AsObject(v)
	stats := Stats{
		Additions: o.Uint64("additions"),
		Deletions: o.Uint64("deletions"),
		Total:     o.Uint64("total"),
	}
	return stats, o.Err()
}

func decodeFile(v codec.Value) (File, error) {
	o := codec.AsObject(v)
	file := File{
		Sha:       o.OptString("sha"),
		Filename:  o.String("filename"),
		Status:    o.String("status"),
		Additions: o.Uint64("additions"),
		Deletions: o.Uint64("deletions"),
		Changes:   o.Uint64("changes"),
		Patch:     o.OptString("patch"),
	}
	return file, o.Err()
}
