// Package repositories models repositories and their tags.
package repositories

import (
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/users"
)

type Repo struct {
	Id               uint64
	NodeId           *string
	Owner            users.User
	Name             string
	FullName         string
	Description      *string
	Private          bool
	Fork             bool
	Archived         bool
	Url              string
	HtmlUrl          string
	ArchiveUrl       string
	AssigneesUrl     string
	BlobsUrl         string
	BranchesUrl      string
	CloneUrl         string
	CollaboratorsUrl string
	CommentsUrl      string
	CommitsUrl       string
	CompareUrl       string
	ContentsUrl      string
	ContributorsUrl  string
	DeploymentsUrl   string
	DownloadsUrl     string
	EventsUrl        string
	ForksUrl         string
	GitCommitsUrl    string
	GitRefsUrl       string
	GitTagsUrl       string
	GitUrl           string
	HooksUrl         string
	IssueCommentUrl  string
	IssueEventsUrl   string
	IssuesUrl        string
	KeysUrl          string
	LabelsUrl        string
	LanguagesUrl     string
	MergesUrl        string
	MilestonesUrl    string
	MirrorUrl        *string
	NotificationsUrl string
	PullsUrl         string
	ReleasesUrl      string
	SshUrl           string
	StargazersUrl    string
	StatusesUrl      string
	SubscribersUrl   string
	SubscriptionUrl  string
	SvnUrl           string
	TagsUrl          string
	TeamsUrl         string
	TreesUrl         string
	Homepage         *string
	Language         *string
	Topics           []string
	ForksCount       uint64
	StargazersCount  uint64
	WatchersCount    uint64
	Size             uint64
	DefaultBranch    string
	OpenIssuesCount  uint64
	HasIssues        bool
	HasProjects      *bool
	HasWiki          bool
	HasPages         bool
	HasDownloads     bool
	// Empty repositories have never been pushed to.
	PushedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Permissions *Permissions
}

// Permissions are the caller's rights on a repository. Only present on authenticated requests.
type Permissions struct {
	Admin bool
	Push  bool
	Pull  bool
}

func DecodeRepo(v codec.Value) (Repo, error) {
	o := codec.AsObject(v)
	repo := Repo{
		Id:               o.Uint64("id"),
		NodeId:           o.OptString("node_id"),
		Owner:            codec.Field(o, "owner", users.DecodeUser),
		Name:             o.String("name"),
		FullName:         o.String("full_name"),
		Description:      o.OptString("description"),
		Private:          o.Bool("private"),
		Fork:             o.Bool("fork"),
		Url:              o.String("url"),
		HtmlUrl:          o.String("html_url"),
		ArchiveUrl:       o.String("archive_url"),
		AssigneesUrl:     o.String("assignees_url"),
		BlobsUrl:         o.String("blobs_url"),
		BranchesUrl:      o.String("branches_url"),
		CloneUrl:         o.String("clone_url"),
		CollaboratorsUrl: o.String("collaborators_url"),
		CommentsUrl:      o.String("comments_url"),
		CommitsUrl:       o.String("commits_url"),
		CompareUrl:       o.String("compare_url"),
		ContentsUrl:      o.String("contents_url"),
		ContributorsUrl:  o.String("contributors_url"),
		DeploymentsUrl:   o.String("deployments_url"),
		DownloadsUrl:     o.String("downloads_url"),
		EventsUrl:        o.String("events_url"),
		ForksUrl:         o.String("forks_url"),
		GitCommitsUrl:    o.String("git_commits_url"),
		GitRefsUrl:       o.String("git_refs_url"),
		GitTagsUrl:       o.String("git_tags_url"),
		GitUrl:           o.String("git_url"),
		HooksUrl:         o.String("hooks_url"),
		IssueCommentUrl:  o.String("issue_comment_url"),
		IssueEventsUrl:   o.String("issue_events_url"),
		IssuesUrl:        o.String("issues_url"),
		KeysUrl:          o.String("keys_url"),
		LabelsUrl:        o.String("labels_url"),
		LanguagesUrl:     o.String("languages_url"),
		MergesUrl:        o.String("merges_url"),
		MilestonesUrl:    o.String("milestones_url"),
		MirrorUrl:        o.OptString("mirror_url"),
		NotificationsUrl: o.String("notifications_url"),
		PullsUrl:         o.String("pulls_url"),
		ReleasesUrl:      o.String("releases_url"),
		SshUrl:           o.String("ssh_url"),
		StargazersUrl:    o.String("stargazers_url"),
		StatusesUrl:      o.String("statuses_url"),
		SubscribersUrl:   o.String("subscribers_url"),
		SubscriptionUrl:  o.String("subscription_url"),
		SvnUrl:           o.String("svn_url"),
		TagsUrl:          o.String("tags_url"),
		TeamsUrl:         o.String("teams_url"),
		TreesUrl:         o.String("trees_url"),
		Homepage:         o.OptString("homepage"),
		Language:         o.OptString("language"),
		Topics:           o.OptStrings("topics"),
		ForksCount:       o.Uint64("forks_count"),
		StargazersCount:  o.Uint64("stargazers_count"),
		WatchersCount:    o.Uint64("watchers_count"),
		Size:             o.Uint64("size"),
		DefaultBranch:    o.String("default_branch"),
		OpenIssuesCount:  o.Uint64("open_issues_count"),
		HasIssues:        o.Bool("has_issues"),
		HasProjects:      o.OptBool("has_projects"),
		HasWiki:          o.Bool("has_wiki"),
		HasPages:         o.Bool("has_pages"),
		HasDownloads:     o.Bool("has_downloads"),
		PushedAt:         o.OptTime("pushed_at"),
		CreatedAt:        o.Time("created_at"),
		UpdatedAt:        o.Time("updated_at"),
		Permissions:      codec.OptField(o, "permissions", DecodePermissions),
	}
	if archived := o.OptBool("archived"); archived != nil {
		repo.Archived = *archived
	}
	return repo, o.Err()
}

func DecodePermissions(v codec.Value) (Permissions, error) {
	o := codec.AsObject(v)
	permissions := Permissions{
		Admin: o.Bool("admin"),
		Push:  o.Bool("push"),
		Pull:  o.Bool("pull"),
	}
	return permissions, o.Err()
}

// RepoOptions is the body of a create-repository request.
type RepoOptions struct {
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	Homepage          *string `json:"homepage,omitempty"`
	Private           *bool   `json:"private,omitempty"`
	HasIssues         *bool   `json:"has_issues,omitempty"`
	HasWiki           *bool   `json:"has_wiki,omitempty"`
	HasDownloads      *bool   `json:"has_downloads,omitempty"`
	TeamId            *int    `json:"team_id,omitempty"`
	AutoInit          *bool   `json:"auto_init,omitempty"`
	GitignoreTemplate *string `json:"gitignore_template,omitempty"`
	LicenseTemplate   *string `json:"license_template,omitempty"`
}

// RepoEditOptions is the body of an edit-repository request.
type RepoEditOptions struct {
	Name             string  `json:"name"`
	Description      *string `json:"description,omitempty"`
	Homepage         *string `json:"homepage,omitempty"`
	Private          *bool   `json:"private,omitempty"`
	HasIssues        *bool   `json:"has_issues,omitempty"`
	HasProjects      *bool   `json:"has_projects,omitempty"`
	HasWiki          *bool   `json:"has_wiki,omitempty"`
	DefaultBranch    *string `json:"default_branch,omitempty"`
	AllowSquashMerge *bool   `json:"allow_squash_merge,omitempty"`
	AllowMergeCommit *bool   `json:"allow_merge_commit,omitempty"`
	AllowRebaseMerge *bool   `json:"allow_rebase_merge,omitempty"`
}
