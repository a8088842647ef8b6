// Package gists models gists, their files and forks.
package gists

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type Gist struct {
	Id          string
	Url         string
	ForksUrl    string
	CommitsUrl  string
	Description *string
	Public      bool
	Owner       *users.User
	User        *users.User
	// Files is keyed by file name.
	Files       map[string]GistFile
	Truncated   bool
	Comments    uint64
	CommentsUrl string
	HtmlUrl     string
	GitPullUrl  string
	GitPushUrl  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GistFile is one file of a gist. Content is only sent when a single gist is fetched.
type GistFile struct {
	Filename  *string
	Size      uint64
	RawUrl    string
	Content   *string
	Type      string
	Truncated *bool
	Language  *string
}

func (f GistFile) HumanSize() string {
	return humanize.Bytes(f.Size)
}

type GistFork struct {
	Id        string
	Url       string
	User      users.User
	CreatedAt time.Time
	UpdatedAt time.Time
}

func DecodeGist(v codec.Value) (Gist, error) {
	o := codec.AsObject(v)
	gist := Gist{
		Id:          o.String("id"),
		Url:         o.String("url"),
		ForksUrl:    o.String("forks_url"),
		CommitsUrl:  o.String("commits_url"),
		Description: o.OptString("description"),
		Public:      o.Bool("public"),
		Owner:       codec.OptField(o, "owner", users.DecodeUser),
		User:        codec.OptField(o, "user", users.DecodeUser),
		Files:       codec.MapField(o, "files", DecodeGistFile),
		Truncated:   o.Bool("truncated"),
		Comments:    o.Uint64("comments"),
		CommentsUrl: o.String("comments_url"),
		HtmlUrl:     o.String("html_url"),
		GitPullUrl:  o.String("git_pull_url"),
		GitPushUrl:  o.String("git_push_url"),
		CreatedAt:   o.Time("created_at"),
		UpdatedAt:   o.Time("updated_at"),
	}
	return gist, o.Err()
}

func DecodeGistFile(v codec.Value) (GistFile, error) {
	o := codec.AsObject(v)
	file := GistFile{
		Filename:  o.OptString("filename"),
		Size:      o.Uint64("size"),
		RawUrl:    o.String("raw_url"),
		Content:   o.OptString("content"),
		Type:      o.String("type"),
		Truncated: o.OptBool("truncated"),
		Language:  o.OptString("language"),
	}
	return file, o.Err()
}

func DecodeGistFork(v codec.Value) (GistFork, error) {
	o := codec.AsObject(v)
	fork := GistFork{
		Id:        o.String("id"),
		Url:       o.String("url"),
		User:      codec.Field(o, "user", users.DecodeUser),
		CreatedAt: o.Time("created_at"),
		UpdatedAt: o.Time("updated_at"),
	}
	return fork, o.Err()
}

// GistOptions creates or edits a gist. Files is keyed by file name.
type GistOptions struct {
	Description *string            `json:"description,omitempty"`
	Public      *bool              `json:"public,omitempty"`
	Files       map[string]Content `json:"files"`
}

// Content is a file body in a gist request. Filename renames the file when editing.
type Content struct {
	Filename *string `json:"filename,omitempty"`
	Content  string  `json:"content"`
}
