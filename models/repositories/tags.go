package repositories

import (
	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/hashicorp/go-version"
)

// Tag is one entry of the repository tags listing.
type Tag struct {
	Name       string // The tag name
	ZipballUrl string // The URL where a ZIP of the tagged tree can be downloaded
	TarballUrl string // The URL where a Tarball of the tagged tree can be downloaded
	NodeId     *string
	Commit     TagCommit
}

// TagCommit is the commit a tag points at.
type TagCommit struct {
	Sha string // The SHA of the commit associated with a given tag
	Url string // The URL at which additional API information can be found for the given commit
}

func DecodeTag(v codec.Value) (Tag, error) {
	o := codec.AsObject(v)
	tag := Tag{
		Name:       o.String("name"),
		ZipballUrl: o.String("zipball_url"),
		TarballUrl: o.String("tarball_url"),
		NodeId:     o.OptString("node_id"),
		Commit:     codec.Field(o, "commit", decodeTagCommit),
	}
	return tag, o.Err()
}

func decodeTagCommit(v codec.Value) (TagCommit, error) {
	o := codec.AsObject(v)
	commit := TagCommit{
		Sha: o.String("sha"),
		Url: o.String("url"),
	}
	return commit, o.Err()
}

// Version parses the tag name as a semantic version. Tags such as "v1.2.3" are accepted; names
// that are not versions return an error.
func (t Tag) Version() (*version.Version, error) {
	return version.NewVersion(t.Name)
}
