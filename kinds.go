package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/models/apps"
	"github.com/gruntwork-io/hubcodec/models/branches"
	"github.com/gruntwork-io/hubcodec/models/checks"
	"github.com/gruntwork-io/hubcodec/models/collaborators"
	"github.com/gruntwork-io/hubcodec/models/comments"
	"github.com/gruntwork-io/hubcodec/models/content"
	"github.com/gruntwork-io/hubcodec/models/deployments"
	"github.com/gruntwork-io/hubcodec/models/gists"
	"github.com/gruntwork-io/hubcodec/models/git"
	"github.com/gruntwork-io/hubcodec/models/hooks"
	"github.com/gruntwork-io/hubcodec/models/issues"
	"github.com/gruntwork-io/hubcodec/models/keys"
	"github.com/gruntwork-io/hubcodec/models/labels"
	"github.com/gruntwork-io/hubcodec/models/milestones"
	"github.com/gruntwork-io/hubcodec/models/notifications"
	"github.com/gruntwork-io/hubcodec/models/orgs"
	"github.com/gruntwork-io/hubcodec/models/pullcommits"
	"github.com/gruntwork-io/hubcodec/models/pulls"
	"github.com/gruntwork-io/hubcodec/models/ratelimit"
	"github.com/gruntwork-io/hubcodec/models/releases"
	"github.com/gruntwork-io/hubcodec/models/repocommits"
	"github.com/gruntwork-io/hubcodec/models/repositories"
	"github.com/gruntwork-io/hubcodec/models/reviewcomments"
	"github.com/gruntwork-io/hubcodec/models/reviewrequests"
	"github.com/gruntwork-io/hubcodec/models/statuses"
	"github.com/gruntwork-io/hubcodec/models/teams"
	"github.com/gruntwork-io/hubcodec/models/traffic"
	"github.com/gruntwork-io/hubcodec/models/users"
	"github.com/gruntwork-io/hubcodec/models/watching"
	"github.com/gruntwork-io/hubcodec/response"
	"github.com/gruntwork-io/hubcodec/search"
	"github.com/gruntwork-io/hubcodec/transport"
)

// kind is a resource shape the CLI can decode. The decoders are stored with their type erased so
// that every kind fits in one table.
type kind struct {
	name        string
	description string
	one         func(status int, body []byte) (interface{}, error)
	list        func(status int, body []byte) (interface{}, error)
	fetch       func(ctx context.Context, client *transport.Client, path string, all bool) (interface{}, error)
}

func newKind[T any](name, description string, fn codec.DecodeFunc[T]) kind {
	return kind{
		name:        name,
		description: description,
		one: func(status int, body []byte) (interface{}, error) {
			return response.Decode(status, body, fn)
		},
		list: func(status int, body []byte) (interface{}, error) {
			return response.DecodeList(status, body, fn)
		},
		fetch: func(ctx context.Context, client *transport.Client, path string, all bool) (interface{}, error) {
			if all {
				return transport.FetchAll(ctx, client, path, fn)
			}
			return transport.Fetch(ctx, client, path, fn)
		},
	}
}

// decode decodes body as one resource, or as an array of them when asList is set.
func (k kind) decode(status int, body []byte, asList bool) (interface{}, error) {
	if asList {
		return k.list(status, body)
	}
	return k.one(status, body)
}

var kinds = map[string]kind{}

func registerKinds(entries ...kind) {
	for _, entry := range entries {
		if _, exists := kinds[entry.name]; exists {
			panic(fmt.Sprintf("kind %s registered twice", entry.name))
		}
		kinds[entry.name] = entry
	}
}

func init() {
	registerKinds(
		newKind("user", "a user", users.DecodeUser),
		newKind("authenticated-user", "the authenticated user, GET /user", users.DecodeAuthenticatedUser),
		newKind("repo", "a repository", repositories.DecodeRepo),
		newKind("tag", "a lightweight tag from a tag listing", repositories.DecodeTag),
		newKind("label", "an issue label", labels.DecodeLabel),
		newKind("milestone", "a milestone", milestones.DecodeMilestone),
		newKind("issue", "an issue", issues.DecodeIssue),
		newKind("pull", "a pull request", pulls.DecodePull),
		newKind("pull-file", "a file changed by a pull request", pulls.DecodeFileDiff),
		newKind("pull-commit", "a commit of a pull request", pullcommits.DecodePullCommit),
		newKind("repo-commit", "a repository commit", repocommits.DecodeRepoCommit),
		newKind("comment", "an issue comment", comments.DecodeComment),
		newKind("review-comment", "a pull request review comment", reviewcomments.DecodeReviewComment),
		newKind("review-request", "the requested reviewers of a pull request", reviewrequests.DecodeReviewRequest),
		newKind("team", "a team", teams.DecodeTeam),
		newKind("team-member", "a team membership", teams.DecodeTeamMember),
		newKind("key", "a deploy key", keys.DecodeKey),
		newKind("org", "an organization", orgs.DecodeOrg),
		newKind("invitation", "an organization invitation", orgs.DecodeInvitation),
		newKind("check-run", "a check run", checks.DecodeCheckRun),
		newKind("check-suite", "a check suite", checks.DecodeCheckSuite),
		newKind("annotation", "a check run annotation", checks.DecodeAnnotation),
		newKind("deployment", "a deployment", deployments.DecodeDeployment),
		newKind("deployment-status", "a deployment status", deployments.DecodeDeploymentStatus),
		newKind("status", "a commit status", statuses.DecodeStatus),
		newKind("combined-status", "the combined status of a ref", statuses.DecodeCombinedStatus),
		newKind("release", "a release", releases.DecodeRelease),
		newKind("asset", "a release asset", releases.DecodeAsset),
		newKind("branch", "a branch", branches.DecodeBranch),
		newKind("protection", "the protection settings of a branch", branches.DecodeProtectionState),
		newKind("contents", "the contents of a file, symlink or submodule", content.DecodeContents),
		newKind("directory-item", "an entry of a directory listing", content.DecodeDirectoryItem),
		newKind("file-commit", "the response to creating or updating a file", content.DecodeNewFileResponse),
		newKind("tree", "a git tree", git.DecodeTreeData),
		newKind("blob", "a git blob", git.DecodeBlob),
		newKind("ref", "a git reference lookup, exact or by prefix", git.DecodeReferenceResponse),
		newKind("hook", "a repository webhook", hooks.DecodeHook),
		newKind("gist", "a gist", gists.DecodeGist),
		newKind("gist-fork", "a fork of a gist", gists.DecodeGistFork),
		newKind("thread", "a notification thread", notifications.DecodeThread),
		newKind("thread-subscription", "a notification thread subscription", notifications.DecodeSubscription),
		newKind("repo-subscription", "a repository watch subscription", watching.DecodeSubscription),
		newKind("referrer", "a traffic referrer", traffic.DecodeReferrer),
		newKind("popular-path", "a popular traffic path", traffic.DecodePath),
		newKind("views", "repository view counts", traffic.DecodeViews),
		newKind("clones", "repository clone counts", traffic.DecodeClones),
		newKind("rate-limit", "the rate limit status, GET /rate_limit", ratelimit.DecodeStatus),
		newKind("installation", "a GitHub App installation", apps.DecodeInstallation),
		newKind("access-token", "an installation access token", apps.DecodeAccessToken),
		newKind("collaborator", "a repository collaborator", collaborators.DecodeCollaborator),
		newKind("search-repos", "a page of repository search results", search.DecodeRepos),
		newKind("search-issues", "a page of issue search results", search.DecodeIssues),
		newKind("search-pulls", "a page of pull request search results", search.DecodePulls),
		newKind("search-users", "a page of user search results", search.Of(users.DecodeUser)),
	)
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[strings.ToLower(name)]
	if !ok {
		return kind{}, newError(invalidKind, fmt.Sprintf("unknown kind %q; run \"hubcodec kinds\" for the list", name))
	}
	return k, nil
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
