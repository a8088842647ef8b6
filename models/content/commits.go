package content

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
)

// NewFile is the body of a create, update or delete file request. Content must already be base64
// encoded; Sha names the blob being replaced and is required for updates and deletes.
type NewFile struct {
	Content string  `json:"content,omitempty"`
	Message string  `json:"message"`
	Sha     *string `json:"sha,omitempty"`
	Branch  *string `json:"branch,omitempty"`
}

// NewFileResponse is the answer to a file write. Content is nil after a delete.
type NewFileResponse struct {
	Content *DirectoryItem
	Commit  CommitDetails
}

// CommitDetails is the commit a file write created. It is a git commit object, not the commit
// listing entry the commits APIs return.
type CommitDetails struct {
	Sha       string
	Url       string
	HtmlUrl   *string
	Author    UserStamp
	Committer UserStamp
	Message   string
	Tree      CommitRef
	Parents   []CommitRef
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

func DecodeNewFileResponse(v codec.Value) (NewFileResponse, error) {
	o := codec.AsObject(v)
	response := NewFileResponse{
		Content: codec.OptField(o, "content", DecodeDirectoryItem),
		Commit:  codec.Field(o, "commit", decodeCommitDetails),
	}
	return response, o.Err()
}

func decodeCommitDetails(v codec.Value) (CommitDetails, error) {
	o := codec.AsObject(v)
	details := CommitDetails{
		Sha:       o.String("sha"),
		Url:       o.String("url"),
		HtmlUrl:   o.OptString("html_url"),
		Author:    codec.Field(o, "author", decodeUserStamp),
		Committer: codec.Field(o, "committer", decodeUserStamp),
		Message:   o.String("message"),
		Tree:      codec.Field(o, "tree", decodeCommitRef),
		Parents:   codec.OptListField(o, "parents", decodeCommitRef),
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
