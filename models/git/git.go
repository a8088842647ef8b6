// Package git models the low-level git data API: trees, blobs and references.
package git

import (
	"github.com/dustin/go-humanize"
	"github.com/gruntwork-io/hubcodec/codec"
)

// ObjectType is the kind of git object a tree entry or reference points at.
type ObjectType string

const (
	CommitObject ObjectType = "commit"
	TreeObject   ObjectType = "tree"
	BlobObject   ObjectType = "blob"
	TagObject    ObjectType = "tag"
)

var ObjectTypes = codec.NewClosedEnum("git.ObjectType", CommitObject, TreeObject, BlobObject, TagObject)

type TreeData struct {
	Sha       string
	Url       string
	Tree      []GitFile
	Truncated bool
}

// GitFile is one entry of a tree. Size is nil for trees and Url is nil for submodule commits.
type GitFile struct {
	Path string
	Mode string
	Type ObjectType
	Size *uint64
	Sha  string
	Url  *string
}

type Blob struct {
	Content  string
	Encoding string
	Url      string
	Sha      string
	Size     *uint64
}

// DecodedContents decodes the blob body. It fails with *codec.ContentDecodeError for any encoding
// other than base64.
func (b Blob) DecodedContents() ([]byte, error) {
	return codec.DecodeContent(b.Encoding, b.Content)
}

func (b Blob) HumanSize() string {
	if b.Size == nil {
		return ""
	}
	return humanize.Bytes(*b.Size)
}

func DecodeTreeData(v codec.Value) (TreeData, error) {
	o := codec.AsObject(v)
	tree := TreeData{
		Sha:       o.String("sha"),
		Url:       o.String("url"),
		Tree:      codec.ListField(o, "tree", DecodeGitFile),
		Truncated: o.Bool("truncated"),
	}
	return tree, o.Err()
}

func DecodeGitFile(v codec.Value) (GitFile, error) {
	o := codec.AsObject(v)
	file := GitFile{
		Path: o.String("path"),
		Mode: o.String("mode"),
		Type: codec.EnumField(o, "type", ObjectTypes),
		Size: o.OptUint64("size"),
		Sha:  o.String("sha"),
		Url:  o.OptString("url"),
	}
	return file, o.Err()
}

func DecodeBlob(v codec.Value) (Blob, error) {
	o := codec.AsObject(v)
	blob := Blob{
		Content:  o.String("content"),
		Encoding: o.String("encoding"),
		Url:      o.String("url"),
		Sha:      o.String("sha"),
		Size:     o.OptUint64("size"),
	}
	return blob, o.Err()
}
