package gists

import (
	"encoding/json"
	"testing"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gist = `{
  "url": "https://api.github.com/gists/aa5a315d61ae9438b18d",
  "forks_url": "https://api.github.com/gists/aa5a315d61ae9438b18d/forks",
  "commits_url": "https://api.github.com/gists/aa5a315d61ae9438b18d/commits",
  "id": "aa5a315d61ae9438b18d",
  "node_id": "MDQ6R2lzdGFhNWEzMTVkNjFhZTk0MzhiMThk",
  "git_pull_url": "https://gist.github.com/aa5a315d61ae9438b18d.git",
  "git_push_url": "https://gist.github.com/aa5a315d61ae9438b18d.git",
  "html_url": "https://gist.github.com/aa5a315d61ae9438b18d",
  "files": {
    "hello_world.rb": {
      "filename": "hello_world.rb",
      "type": "application/x-ruby",
      "language": "Ruby",
      "raw_url": "https://gist.githubusercontent.com/octocat/6cad326836d38bd3a7ae/raw/db9c55113504e46fa076e7df3a04ce592e2e86d8/hello_world.rb",
      "size": 167
    }
  },
  "public": true,
  "created_at": "2010-04-14T02:15:15Z",
  "updated_at": "2011-06-20T11:34:15Z",
  "description": null,
  "comments": 0,
  "user": null,
  "comments_url": "https://api.github.com/gists/aa5a315d61ae9438b18d/comments/",
  "truncated": false
}`

func TestDecodeGist(t *testing.T) {
	t.Parallel()

	payload := fixtures.With(gist, "owner", fixtures.User)

	g, err := codec.Decode([]byte(payload), DecodeGist)
	require.NoError(t, err)

	assert.Equal(t, "aa5a315d61ae9438b18d", g.Id)
	assert.Nil(t, g.Description)
	assert.Nil(t, g.User)
	require.NotNil(t, g.Owner)
	assert.Equal(t, "octocat", g.Owner.Login)

	require.Contains(t, g.Files, "hello_world.rb")
	file := g.Files["hello_world.rb"]
	assert.Equal(t, "application/x-ruby", file.Type)
	assert.Nil(t, file.Content)
	require.NotNil(t, file.Language)
	assert.Equal(t, "Ruby", *file.Language)
	assert.Equal(t, "167 B", file.HumanSize())
}

func TestDecodeGistFileErrorNamesTheFile(t *testing.T) {
	t.Parallel()

	payload := fixtures.With(gist, "files", `{"a.txt":{"type":"text/plain","raw_url":"u"}}`)

	_, err := codec.Decode([]byte(payload), DecodeGist)

	var decodeErr *codec.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "files.a.txt.size", decodeErr.Field)
}

func TestDecodeGistFork(t *testing.T) {
	t.Parallel()

	body := `{"user":` + fixtures.User + `,"url":"https://api.github.com/gists/dee9c42e4998ce2ea439","id":"dee9c42e4998ce2ea439",` +
		`"created_at":"2011-04-14T16:00:49Z","updated_at":"2011-04-14T16:00:49Z"}`

	forks, err := codec.DecodeList([]byte("["+body+"]"), DecodeGistFork)
	require.NoError(t, err)
	require.Len(t, forks, 1)
	assert.Equal(t, "octocat", forks[0].User.Login)
}

func TestGistOptionsRoundTrip(t *testing.T) {
	t.Parallel()

	description := "Example of a gist"
	public := false
	options := GistOptions{
		Description: &description,
		Public:      &public,
		Files:       map[string]Content{"README.md": {Content: "Hello World"}},
	}

	encoded, err := json.Marshal(options)
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"Example of a gist","public":false,"files":{"README.md":{"content":"Hello World"}}}`, string(encoded))

	var decoded GistOptions
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, options, decoded)
}
