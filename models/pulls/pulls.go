// Package pulls models pull requests and the files they change.
package pulls

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/labels"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type State string

const (
	Open   State = "open"
	Closed State = "closed"
)

var States = codec.NewClosedEnum("pulls.State", Open, Closed)

// FileStatus is how a pull request touched a file.
type FileStatus string

const (
	Added     FileStatus = "added"
	Removed   FileStatus = "removed"
	Modified  FileStatus = "modified"
	Renamed   FileStatus = "renamed"
	Copied    FileStatus = "copied"
	Changed   FileStatus = "changed"
	Unchanged FileStatus = "unchanged"
)

var FileStatuses = codec.NewOpenEnum("pulls.FileStatus",
	Added, Removed, Modified, Renamed, Copied, Changed, Unchanged)

func (s FileStatus) IsOther() bool {
	return !FileStatuses.Known(s)
}

type Pull struct {
	Id                uint64
	NodeId            *string
	Url               string
	HtmlUrl           string
	DiffUrl           string
	PatchUrl          string
	IssueUrl          string
	CommitsUrl        string
	ReviewCommentsUrl string
	ReviewCommentUrl  string
	CommentsUrl       string
	StatusesUrl       string
	Number            uint64
	State             State
	Locked            *bool
	Draft             *bool
	Title             string
	Body              *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ClosedAt          *time.Time
	MergedAt          *time.Time
	Head              Commit
	Base              Commit
	User              users.User
	Assignee          *users.User
	Assignees         []users.User
	MergeCommitSha    *string
	Merged            *bool
	Mergeable         *bool
	MergedBy          *users.User
	Comments          *uint64
	ReviewComments    *uint64
	Commits           *uint64
	Additions         *uint64
	Deletions         *uint64
	ChangedFiles      *uint64
	Labels            []labels.Label
}

// Commit is one end of a pull request. The repository is identified by Label ("owner:branch")
// rather than embedded.
type Commit struct {
	Label string
	Ref   string
	Sha   string
	User  users.User
}

type FileDiff struct {
	Sha              *string
	Filename         string
	Status           FileStatus
	Additions        uint64
	Deletions        uint64
	Changes          uint64
	BlobUrl          string
	RawUrl           string
	ContentsUrl      string
	Patch            *string
	PreviousFilename *string
}

func DecodePull(v codec.Value) (Pull, error) {
	o := codec.AsObject(v)
	pull := Pull{
		Id:                o.Uint64("id"),
		NodeId:            o.OptString("node_id"),
		Url:               o.String("url"),
		HtmlUrl:           o.String("html_url"),
		DiffUrl:           o.String("diff_url"),
		PatchUrl:          o.String("patch_url"),
		IssueUrl:          o.String("issue_url"),
		CommitsUrl:        o.String("commits_url"),
		ReviewCommentsUrl: o.String("review_comments_url"),
		ReviewCommentUrl:  o.String("review_comment_url"),
		CommentsUrl:       o.String("comments_url"),
		StatusesUrl:       o.String("statuses_url"),
		Number:            o.Uint64("number"),
		State:             codec.EnumField(o, "state", States),
		Locked:            o.OptBool("locked"),
		Draft:             o.OptBool("draft"),
		Title:             o.String("title"),
		Body:              o.OptString("body"),
		CreatedAt:         o.Time("created_at"),
		UpdatedAt:         o.Time("updated_at"),
		ClosedAt:          o.OptTime("closed_at"),
		MergedAt:          o.OptTime("merged_at"),
		Head:              codec.Field(o, "head", DecodeCommit),
		Base:              codec.Field(o, "base", DecodeCommit),
		User:              codec.Field(o, "user", users.DecodeUser),
		Assignee:          codec.OptField(o, "assignee", users.DecodeUser),
		Assignees:         codec.ListField(o, "assignees", users.DecodeUser),
		MergeCommitSha:    o.OptString("merge_commit_sha"),
		Merged:            o.OptBool("merged"),
		Mergeable:         o.OptBool("mergeable"),
		MergedBy:          codec.OptField(o, "merged_by", users.DecodeUser),
		Comments:          o.OptUint64("comments"),
		ReviewComments:    o.OptUint64("review_comments"),
		Commits:           o.OptUint64("commits"),
		Additions:         o.OptUint64("additions"),
		Deletions:         o.OptUint64("deletions"),
		ChangedFiles:      o.OptUint64("changed_files"),
		Labels:            codec.ListField(o, "labels", labels.DecodeLabel),
	}
	return pull, o.Err()
}

func DecodeCommit(v codec.Value) (Commit, error) {
	o := codec.AsObject(v)
	commit := Commit{
		Label: o.String("label"),
		Ref:   o.String("ref"),
		Sha:   o.String("sha"),
		User:  codec.Field(o, "user", users.DecodeUser),
	}
	return commit, o.Err()
}

func DecodeFileDiff(v codec.Value) (FileDiff, error) {
	o := codec.AsObject(v)
	diff := FileDiff{
		Sha:              o.OptString("sha"),
		Filename:         o.String("filename"),
		Status:           codec.EnumField(o, "status", FileStatuses),
		Additions:        o.Uint64("additions"),
		Deletions:        o.Uint64("deletions"),
		Changes:          o.Uint64("changes"),
		BlobUrl:          o.String("blob_url"),
		RawUrl:           o.String("raw_url"),
		ContentsUrl:      o.String("contents_url"),
		Patch:            o.OptString("patch"),
		PreviousFilename: o.OptString("previous_filename"),
	}
	return diff, o.Err()
}

// PullOptions is the body of a create pull request call.
type PullOptions struct {
	Title string  `json:"title"`
	Head  string  `json:"head"`
	Base  string  `json:"base"`
	Body  *string `json:"body,omitempty"`
	Draft *bool   `json:"draft,omitempty"`
}

// PullEditOptions is the body of an update pull request call.
type PullEditOptions struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
	State *State  `json:"state,omitempty"`
	Base  *string `json:"base,omitempty"`
}
