package search

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/labels"
	"github.com/gruntwork-io/hubcodec/models/users"
)

// IssueState is the state of an issue search hit.
type IssueState string

const (
	Open   IssueState = "open"
	Closed IssueState = "closed"
)

var IssueStates = codec.NewClosedEnum("search.IssueState", Open, Closed)

// IssuesItem is an issue search hit. Pull requests are issues too; for those PullRequest is set.
type IssuesItem struct {
	Id            uint64
	NodeId        *string
	Url           string
	RepositoryUrl string
	LabelsUrl     string
	CommentsUrl   string
	EventsUrl     string
	HtmlUrl       string
	Number        uint64
	Title         string
	User          users.User
	Labels        []labels.Label
	State         IssueState
	Locked        bool
	Assignee      *users.User
	Assignees     []users.User
	Comments      uint64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ClosedAt      *time.Time
	PullRequest   *PullRequestInfo
	Body          *string
	Score         float64
}

// PullsItem is an issue search hit restricted to pull requests.
type PullsItem struct {
	IssuesItem
	PullRequest PullRequestInfo
}

type PullRequestInfo struct {
	Url      string
	HtmlUrl  string
	DiffUrl  string
	PatchUrl string
}

// RepoTuple returns the owner and name of the repository the issue belongs to, taken from the
// last two segments of RepositoryUrl.
func (i IssuesItem) RepoTuple() (owner, repo string, err error) {
	parsed, err := url.Parse(i.RepositoryUrl)
	if err != nil {
		return "", "", err
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-2] == "" || segments[len(segments)-1] == "" {
		return "", "", fmt.Errorf("repository url %q does not end in owner/repo", i.RepositoryUrl)
	}
	return segments[len(segments)-2], segments[len(segments)-1], nil
}

func DecodeIssuesItem(v codec.Value) (IssuesItem, error) {
	o := codec.AsObject(v)
	item := IssuesItem{
		Id:            o.Uint64("id"),
		NodeId:        o.OptString("node_id"),
		Url:           o.String("url"),
		RepositoryUrl: o.String("repository_url"),
		LabelsUrl:     o.String("labels_url"),
		CommentsUrl:   o.String("comments_url"),
		EventsUrl:     o.String("events_url"),
		HtmlUrl:       o.String("html_url"),
		Number:        o.Uint64("number"),
		Title:         o.String("title"),
		User:          codec.Field(o, "user", users.DecodeUser),
		Labels:        codec.ListField(o, "labels", labels.DecodeLabel),
		State:         codec.EnumField(o, "state", IssueStates),
		Locked:        o.Bool("locked"),
		Assignee:      codec.OptField(o, "assignee", users.DecodeUser),
		Assignees:     codec.OptListField(o, "assignees", users.DecodeUser),
		Comments:      o.Uint64("comments"),
		CreatedAt:     o.Time("created_at"),
		UpdatedAt:     o.Time("updated_at"),
		ClosedAt:      o.OptTime("closed_at"),
		PullRequest:   codec.OptField(o, "pull_request", DecodePullRequestInfo),
		Body:          o.OptString("body"),
		Score:         o.Float64("score"),
	}
	return item, o.Err()
}

// DecodePullsItem decodes an issue search hit that must carry pull request links.
func DecodePullsItem(v codec.Value) (PullsItem, error) {
	issue, err := DecodeIssuesItem(v)
	if err != nil {
		return PullsItem{}, err
	}
	o := codec.AsObject(v)
	item := PullsItem{
		IssuesItem:  issue,
		PullRequest: codec.Field(o, "pull_request", DecodePullRequestInfo),
	}
	return item, o.Err()
}

func DecodePullRequestInfo(v codec.Value) (PullRequestInfo, error) {
	o := codec.AsObject(v)
	info := PullRequestInfo{
		Url:      o.String("url"),
		HtmlUrl:  o.String("html_url"),
		DiffUrl:  o.String("diff_url"),
		PatchUrl: o.String("patch_url"),
	}
	return info, o.Err()
}
