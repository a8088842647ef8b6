// Package releases models repository releases and their uploaded assets.
package releases

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
	"github.com/hashicorp/go-version"
)

// AssetState is "uploaded" once an asset is usable; "open" while an upload is in flight.
type AssetState string

const (
	Uploaded AssetState = "uploaded"
	Open     AssetState = "open"
)

var AssetStates = codec.NewOpenEnum("releases.AssetState", Uploaded, Open)

func (s AssetState) IsOther() bool {
	return !AssetStates.Known(s)
}

// Modeled directly after the api.github.com response. For more info, see:
// https://docs.github.com/en/rest/releases/releases#get-a-release
type Release struct {
	Url             string
	HtmlUrl         string
	AssetsUrl       string
	UploadUrl       string
	TarballUrl      *string
	ZipballUrl      *string
	Id              uint64
	NodeId          *string
	TagName         string
	TargetCommitish string
	Name            *string
	Body            *string
	Draft           bool
	Prerelease      bool
	CreatedAt       time.Time
	// Drafts are not published.
	PublishedAt *time.Time
	Author      users.User
	Assets      []Asset
}

// The "assets" portion of a Release.
type Asset struct {
	Url                string
	BrowserDownloadUrl string
	Id                 uint64
	NodeId             *string
	Name               string
	Label              *string
	State              AssetState
	ContentType        string
	Size               uint64
	DownloadCount      uint64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Uploader           *users.User
}

func DecodeRelease(v codec.Value) (Release, error) {
	o := codec.AsObject(v)
	release := Release{
		Url:             o.String("url"),
		HtmlUrl:         o.String("html_url"),
		AssetsUrl:       o.String("assets_url"),
		UploadUrl:       o.String("upload_url"),
		TarballUrl:      o.OptString("tarball_url"),
		ZipballUrl:      o.OptString("zipball_url"),
		Id:              o.Uint64("id"),
		NodeId:          o.OptString("node_id"),
		TagName:         o.String("tag_name"),
		TargetCommitish: o.String("target_commitish"),
		Name:            o.OptString("name"),
		Body:            o.OptString("body"),
		Draft:           o.Bool("draft"),
		Prerelease:      o.Bool("prerelease"),
		CreatedAt:       o.Time("created_at"),
		PublishedAt:     o.OptTime("published_at"),
		Author:          codec.Field(o, "author", users.DecodeUser),
		Assets:          codec.ListField(o, "assets", DecodeAsset),
	}
	return release, o.Err()
}

func DecodeAsset(v codec.Value) (Asset, error) {
	o := codec.AsObject(v)
	asset := Asset{
		Url:                o.String("url"),
		BrowserDownloadUrl: o.String("browser_download_url"),
		Id:                 o.Uint64("id"),
		NodeId:             o.OptString("node_id"),
		Name:               o.String("name"),
		Label:              o.OptString("label"),
		State:              codec.EnumField(o, "state", AssetStates),
		ContentType:        o.String("content_type"),
		Size:               o.Uint64("size"),
		DownloadCount:      o.Uint64("download_count"),
		CreatedAt:          o.Time("created_at"),
		UpdatedAt:          o.Time("updated_at"),
		Uploader:           codec.OptField(o, "uploader", users.DecodeUser),
	}
	return asset, o.Err()
}

// Version parses the release tag as a semantic version, e.g. "v1.0.0".
func (r Release) Version() (*version.Version, error) {
	return version.NewVersion(r.TagName)
}

// AssetNamed returns the asset with the given file name, or nil.
func (r Release) AssetNamed(name string) *Asset {
	for i := range r.Assets {
		if strings.EqualFold(r.Assets[i].Name, name) {
			return &r.Assets[i]
		}
	}
	return nil
}

// HumanSize formats the asset size for display, e.g. "1.0 kB".
func (a Asset) HumanSize() string {
	return humanize.Bytes(a.Size)
}

// ReleaseOptions is the body of a create or edit release request.
type ReleaseOptions struct {
	TagName         string  `json:"tag_name"`
	TargetCommitish *string `json:"target_commitish,omitempty"`
	Name            *string `json:"name,omitempty"`
	Body            *string `json:"body,omitempty"`
	Draft           *bool   `json:"draft,omitempty"`
	Prerelease      *bool   `json:"prerelease,omitempty"`
}
