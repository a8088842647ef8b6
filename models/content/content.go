// Package content models the repository contents API: files, symlinks, submodules and directory
// listings.
package content

import (
	"github.com/dustin/go-humanize"
	"github.com/gruntwork-io/hubcodec/codec"
)

// Type is the kind of entry at a path.
type Type string

const (
	FileType      Type = "file"
	DirType       Type = "dir"
	SymlinkType   Type = "symlink"
	SubmoduleType Type = "submodule"
)

var Types = codec.NewClosedEnum("content.Type", FileType, DirType, SymlinkType, SubmoduleType)

// Encoding is how a file body is encoded. Only base64 can be decoded; the API answers "none" for
// files too large to inline.
type Encoding string

const Base64 Encoding = codec.EncodingBase64

var Encodings = codec.NewOpenEnum("content.Encoding", Base64)

func (e Encoding) IsOther() bool {
	return !Encodings.Known(e)
}

// Contents is the entry at a single path. Exactly one of File, Symlink and Submodule is set,
// matching Type.
type Contents struct {
	Type      Type
	File      *File
	Symlink   *Symlink
	Submodule *Submodule
}

type File struct {
	Encoding Encoding
	Size     uint64
	Name     string
	Path     string
	// Content is the encoded body exactly as sent. Use DecodedContents for the bytes.
	Content     string
	Sha         string
	Url         string
	GitUrl      string
	HtmlUrl     string
	DownloadUrl string
	Links       Links
}

type Symlink struct {
	Target      string
	Size        uint64
	Name        string
	Path        string
	Sha         string
	Url         string
	GitUrl      string
	HtmlUrl     string
	DownloadUrl string
	Links       Links
}

type Submodule struct {
	SubmoduleGitUrl string
	Size            uint64
	Name            string
	Path            string
	Sha             string
	Url             string
	GitUrl          string
	HtmlUrl         string
	DownloadUrl     *string
	Links           Links
}

// DirectoryItem is one entry of a directory listing. Bodies are never included.
type DirectoryItem struct {
	Type        Type
	Size        uint64
	Name        string
	Path        string
	Sha         string
	Url         string
	GitUrl      *string
	HtmlUrl     *string
	DownloadUrl *string
	Links       Links
}

type Links struct {
	Git  *string
	Self string
	Html *string
}

// DecodedContents decodes the file body. It fails with *codec.ContentDecodeError when the
// encoding is not base64 or the body is not valid base64.
func (f File) DecodedContents() ([]byte, error) {
	return codec.DecodeContent(string(f.Encoding), f.Content)
}

// HumanSize formats the file size for display, e.g. "5.4 kB".
func (f File) HumanSize() string {
	return humanize.Bytes(f.Size)
}

// DecodeContents decodes the response for a single path, dispatching on its "type" member. A
// directory path answers with a listing instead; use DecodeDirectoryItem for those.
func DecodeContents(v codec.Value) (Contents, error) {
	o := codec.AsObject(v)
	contents := Contents{Type: codec.EnumField(o, "type", Types)}
	if err := o.Err(); err != nil {
		return Contents{}, err
	}

	var err error
	switch contents.Type {
	case FileType:
		var file File
		file, err = DecodeFile(v)
		contents.File = &file
	case SymlinkType:
		var symlink Symlink
		symlink, err = DecodeSymlink(v)
		contents.Symlink = &symlink
	case SubmoduleType:
		var submodule Submodule
		submodule, err = DecodeSubmodule(v)
		contents.Submodule = &submodule
	default:
		err = &codec.DecodeError{
			Field:    o.Value("type").Path(),
			Expected: "file, symlink or submodule",
			Reason:   "directories are returned as a listing",
		}
	}
	if err != nil {
		return Contents{}, err
	}
	return contents, nil
}

func DecodeFile(v codec.Value) (File, error) {
	o := codec.AsObject(v)
	file := File{
		Encoding:    codec.EnumField(o, "encoding", Encodings),
		Size:        o.Uint64("size"),
		Name:        o.String("name"),
		Path:        o.String("path"),
		Content:     o.String("content"),
		Sha:         o.String("sha"),
		Url:         o.String("url"),
		GitUrl:      o.String("git_url"),
		HtmlUrl:     o.String("html_url"),
		DownloadUrl: o.String("download_url"),
		Links:       codec.Field(o, "_links", DecodeLinks),
	}
	return file, o.Err()
}

func DecodeSymlink(v codec.Value) (Symlink, error) {
	o := codec.AsObject(v)
	symlink := Symlink{
		Target:      o.String("target"),
		Size:        o.Uint64("size"),
		Name:        o.String("name"),
		Path:        o.String("path"),
		Sha:         o.String("sha"),
		Url:         o.String("url"),
		GitUrl:      o.String("git_url"),
		HtmlUrl:     o.String("html_url"),
		DownloadUrl: o.String("download_url"),
		Links:       codec.Field(o, "_links", DecodeLinks),
	}
	return symlink, o.Err()
}

func DecodeSubmodule(v codec.Value) (Submodule, error) {
	o := codec.AsObject(v)
	submodule := Submodule{
		SubmoduleGitUrl: o.String("submodule_git_url"),
		Size:            o.Uint64("size"),
		Name:            o.String("name"),
		Path:            o.String("path"),
		Sha:             o.String("sha"),
		Url:             o.String("url"),
		GitUrl:          o.String("git_url"),
		HtmlUrl:         o.String("html_url"),
		DownloadUrl:     o.OptString("download_url"),
		Links:           codec.Field(o, "_links", DecodeLinks),
	}
	return submodule, o.Err()
}

func DecodeDirectoryItem(v codec.Value) (DirectoryItem, error) {
	o := codec.AsObject(v)
	item := DirectoryItem{
		Type:        codec.EnumField(o, "type", Types),
		Size:        o.Uint64("size"),
		Name:        o.String("name"),
		Path:        o.String("path"),
		Sha:         o.String("sha"),
		Url:         o.String("url"),
		GitUrl:      o.OptString("git_url"),
		HtmlUrl:     o.OptString("html_url"),
		DownloadUrl: o.OptString("download_url"),
		Links:       codec.Field(o, "_links", DecodeLinks),
	}
	return item, o.Err()
}

func DecodeLinks(v codec.Value) (Links, error) {
	o := codec.AsObject(v)
	links := Links{
		Git:  o.OptString("git"),
		Self: o.String("self"),
		Html: o.OptString("html"),
	}
	return links, o.Err()
}
