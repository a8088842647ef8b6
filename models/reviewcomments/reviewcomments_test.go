package reviewcomments

import (
	"testing"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewComment = `{
  "url": "https://api.github.com/repos/octocat/Hello-World/pulls/comments/1",
  "id": 10,
  "diff_hunk": "@@ -16,33 +16,40 @@ public class Connection : IConnection...",
  "path": "file1.txt",
  "position": 1,
  "original_position": 4,
  "commit_id": "6dcb09b5b57875f334f61aebed695e2e4193db5e",
  "original_commit_id": "9c48853fa3dc5c1c3d6f1f1cd1f2743e72652840",
  "in_reply_to_id": 8,
  "user": ` + fixtures.User + `,
  "body": "Great stuff!",
  "created_at": "2011-04-14T16:00:49Z",
  "updated_at": "2011-04-14T16:00:49Z",
  "html_url": "https://github.com/octocat/Hello-World/pull/1#discussion-diff-1",
  "pull_request_url": "https://api.github.com/repos/octocat/Hello-World/pulls/1"
}`

func TestDecodeReviewComment(t *testing.T) {
	t.Parallel()

	comment, err := codec.Decode([]byte(reviewComment), DecodeReviewComment)
	require.NoError(t, err)

	assert.Equal(t, "file1.txt", comment.Path)
	require.NotNil(t, comment.Position)
	assert.Equal(t, uint64(1), *comment.Position)
	assert.Equal(t, uint64(4), comment.OriginalPosition)
	require.NotNil(t, comment.InReplyToId)
	assert.Equal(t, uint64(8), *comment.InReplyToId)
}

func TestDecodeOutdatedReviewComment(t *testing.T) {
	t.Parallel()

	payload := fixtures.With(reviewComment, "position", `null`)
	comment, err := codec.Decode([]byte(fixtures.Without(payload, "in_reply_to_id")), DecodeReviewComment)
	require.NoError(t, err)

	assert.Nil(t, comment.Position)
	assert.Nil(t, comment.InReplyToId)
}
