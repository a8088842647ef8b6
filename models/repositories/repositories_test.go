package repositories

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRepo(t *testing.T) {
	t.Parallel()

	repo, err := codec.Decode([]byte(fixtures.Repo), DecodeRepo)
	require.NoError(t, err)

	assert.Equal(t, uint64(1296269), repo.Id)
	assert.Equal(t, "octocat/Hello-World", repo.FullName)
	assert.Equal(t, "octocat", repo.Owner.Login)
	require.NotNil(t, repo.Description)
	assert.Equal(t, "This your first repo!", *repo.Description)
	assert.Nil(t, repo.MirrorUrl)
	assert.Nil(t, repo.Language)
	assert.Equal(t, []string{"octocat", "atom"}, repo.Topics)
	assert.Equal(t, uint64(80), repo.StargazersCount)
	assert.Equal(t, "master", repo.DefaultBranch)
	assert.True(t, repo.HasIssues)
	require.NotNil(t, repo.PushedAt)
	assert.Equal(t, time.Date(2011, 1, 26, 19, 6, 43, 0, time.UTC), *repo.PushedAt)
	require.NotNil(t, repo.Permissions)
	assert.Equal(t, Permissions{Admin: false, Push: false, Pull: true}, *repo.Permissions)
}

func TestDecodeRepoOptionalMembers(t *testing.T) {
	t.Parallel()

	payload := fixtures.Without(fixtures.Repo, "permissions", "topics", "archived", "has_projects")
	payload = fixtures.With(payload, "pushed_at", `null`)

	repo, err := codec.Decode([]byte(payload), DecodeRepo)
	require.NoError(t, err)

	assert.Nil(t, repo.Permissions)
	assert.Nil(t, repo.Topics)
	assert.Nil(t, repo.PushedAt)
	assert.Nil(t, repo.HasProjects)
	assert.False(t, repo.Archived)
}

func TestDecodeRepoFailsOnNestedMember(t *testing.T) {
	t.Parallel()

	payload := fixtures.With(fixtures.Repo, "owner", fixtures.Without(fixtures.User, "login"))
	_, err := codec.Decode([]byte(payload), DecodeRepo)

	var decodeErr *codec.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "owner.login", decodeErr.Field)
}

func TestDecodeTags(t *testing.T) {
	t.Parallel()

	body := `[
		{"name":"v0.1","commit":{"sha":"c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc","url":"https://api.github.com/repos/octocat/Hello-World/commits/c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc"},
		 "zipball_url":"https://github.com/octocat/Hello-World/zipball/v0.1","tarball_url":"https://github.com/octocat/Hello-World/tarball/v0.1","node_id":"MDQ6VXNlcjE="},
		{"name":"nightly","commit":{"sha":"7fd1a60b01f91b314f59955a4e4d4e80d8edf11d","url":"https://api.github.com/repos/octocat/Hello-World/commits/7fd1a60b01f91b314f59955a4e4d4e80d8edf11d"},
		 "zipball_url":"https://github.com/octocat/Hello-World/zipball/nightly","tarball_url":"https://github.com/octocat/Hello-World/tarball/nightly"}
	]`

	tags, err := codec.DecodeList([]byte(body), DecodeTag)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	assert.Equal(t, "c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc", tags[0].Commit.Sha)

	v, err := tags[0].Version()
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", v.String())

	_, err = tags[1].Version()
	assert.Error(t, err)
}

func TestRepoOptionsRoundTrip(t *testing.T) {
	t.Parallel()

	private := true
	description := "a new repo"
	options := RepoOptions{Name: "hubcodec", Description: &description, Private: &private}

	encoded, err := json.Marshal(options)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"hubcodec","description":"a new repo","private":true}`, string(encoded))

	var decoded RepoOptions
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, options, decoded)
}
