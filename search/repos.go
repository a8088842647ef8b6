package search

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

// ReposItem is a repository search hit.
type ReposItem struct {
	Id              uint64
	NodeId          *string
	Name            string
	FullName        string
	Owner           users.User
	Private         bool
	HtmlUrl         string
	Description     *string
	Fork            bool
	Url             string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PushedAt        *time.Time
	GitUrl          string
	SshUrl          string
	CloneUrl        string
	SvnUrl          string
	Homepage        *string
	MirrorUrl       *string
	Language        *string
	Size            uint64
	StargazersCount uint64
	WatchersCount   uint64
	ForksCount      uint64
	OpenIssuesCount uint64
	HasIssues       bool
	HasProjects     bool
	HasDownloads    bool
	HasWiki         bool
	HasPages        bool
	Archived        bool
	Topics          []string
	License         *License
	DefaultBranch   string
	Score           float64
}

type License struct {
	Key    string
	Name   string
	SpdxId *string
	Url    *string
	NodeId *string
}

func DecodeReposItem(v codec.Value) (ReposItem, error) {
	o := codec.AsObject(v)
	item := ReposItem{
		Id:              o.Uint64("id"),
		NodeId:          o.OptString("node_id"),
		Name:            o.String("name"),
		FullName:        o.String("full_name"),
		Owner:           codec.Field(o, "owner", users.DecodeUser),
		Private:         o.Bool("private"),
		HtmlUrl:         o.String("html_url"),
		Description:     o.OptString("description"),
		Fork:            o.Bool("fork"),
		Url:             o.String("url"),
		CreatedAt:       o.Time("created_at"),
		UpdatedAt:       o.Time("updated_at"),
		PushedAt:        o.OptTime("pushed_at"),
		GitUrl:          o.String("git_url"),
		SshUrl:          o.String("ssh_url"),
		CloneUrl:        o.String("clone_url"),
		SvnUrl:          o.String("svn_url"),
		Homepage:        o.OptString("homepage"),
		MirrorUrl:       o.OptString("mirror_url"),
		Language:        o.OptString("language"),
		Size:            o.Uint64("size"),
		StargazersCount: o.Uint64("stargazers_count"),
		WatchersCount:   o.Uint64("watchers_count"),
		ForksCount:      o.Uint64("forks_count"),
		OpenIssuesCount: o.Uint64("open_issues_count"),
		HasIssues:       o.Bool("has_issues"),
		HasProjects:     o.Bool("has_projects"),
		HasDownloads:    o.Bool("has_downloads"),
		HasWiki:         o.Bool("has_wiki"),
		HasPages:        o.Bool("has_pages"),
		Archived:        o.Bool("archived"),
		Topics:          o.OptStrings("topics"),
		License:         codec.OptField(o, "license", DecodeLicense),
		DefaultBranch:   o.String("default_branch"),
		Score:           o.Float64("score"),
	}
	return item, o.Err()
}

func DecodeLicense(v codec.Value) (License, error) {
	o := codec.AsObject(v)
	license := License{
		Key:    o.String("key"),
		Name:   o.String("name"),
		SpdxId: o.OptString("spdx_id"),
		Url:    o.OptString("url"),
		NodeId: o.OptString("node_id"),
	}
	return license, o.Err()
}
