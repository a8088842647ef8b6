package git

import (
	"errors"
	"testing"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exactRef = `{
  "ref": "refs/heads/featureA",
  "url": "https://api.github.com/repos/octocat/Hello-World/git/refs/heads/featureA",
  "object": {
    "type": "commit",
    "sha": "aa218f56b14c9653891f9e74264a383fa43fefbd",
    "url": "https://api.github.com/repos/octocat/Hello-World/git/commits/aa218f56b14c9653891f9e74264a383fa43fefbd"
  }
}`

const prefixRefs = `[
  {
    "ref": "refs/heads/feature-a",
    "url": "https://api.github.com/repos/octocat/Hello-World/git/refs/heads/feature-a",
    "object": {
      "type": "commit",
      "sha": "aa218f56b14c9653891f9e74264a383fa43fefbd",
      "url": "https://api.github.com/repos/octocat/Hello-World/git/commits/aa218f56b14c9653891f9e74264a383fa43fefbd"
    }
  },
  {
    "ref": "refs/heads/feature-b",
    "url": "https://api.github.com/repos/octocat/Hello-World/git/refs/heads/feature-b",
    "object": {
      "type": "commit",
      "sha": "612077ae6dffb4d2fbd8ce0cccaa58893b07b5ac",
      "url": "https://api.github.com/repos/octocat/Hello-World/git/commits/612077ae6dffb4d2fbd8ce0cccaa58893b07b5ac"
    }
  }
]`

func TestDecodeReferenceResponse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		body     string
		exact    bool
		expected []string
	}{
		{"exact", exactRef, true, []string{"refs/heads/featureA"}},
		{"prefix matches", prefixRefs, false, []string{"refs/heads/feature-a", "refs/heads/feature-b"}},
		{"no prefix matches", `[]`, false, []string{}},
	}

	for _, tc := range cases {
		response, err := codec.Decode([]byte(tc.body), DecodeReferenceResponse)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.exact, response.IsExact(), tc.name)

		refs := []string{}
		for _, ref := range response.References() {
			assert.Equal(t, CommitObject, ref.Object.Type)
			refs = append(refs, ref.Ref)
		}
		assert.Equal(t, tc.expected, refs, tc.name)
	}
}

func TestDecodeTreeData(t *testing.T) {
	t.Parallel()

	body := `{
	  "sha": "9fb037999f264ba9a7fc6274d15fa3ae2ab98312",
	  "url": "https://api.github.com/repos/octocat/Hello-World/trees/9fb037999f264ba9a7fc6274d15fa3ae2ab98312",
	  "tree": [
	    {"path": "file.rb", "mode": "100644", "type": "blob", "size": 30, "sha": "44b4fc6d56897b048c772eb4087f854f46256132", "url": "https://api.github.com/repos/octocat/Hello-World/git/blobs/44b4fc6d56897b048c772eb4087f854f46256132"},
	    {"path": "subdir", "mode": "040000", "type": "tree", "sha": "f484d249c660418515fb01c2b9662073663c242e", "url": "https://api.github.com/repos/octocat/Hello-World/git/blobs/f484d249c660418515fb01c2b9662073663c242e"},
	    {"path": "vendor/lib", "mode": "160000", "type": "commit", "sha": "a84d88e7554fc1fa21bcbc4efae3c782a70d2b9d"}
	  ],
	  "truncated": false
	}`

	tree, err := codec.Decode([]byte(body), DecodeTreeData)
	require.NoError(t, err)
	require.Len(t, tree.Tree, 3)

	assert.Equal(t, BlobObject, tree.Tree[0].Type)
	require.NotNil(t, tree.Tree[0].Size)
	assert.Equal(t, uint64(30), *tree.Tree[0].Size)
	assert.Nil(t, tree.Tree[1].Size)
	assert.Nil(t, tree.Tree[2].Url)
	assert.False(t, tree.Truncated)
}

func TestDecodeTreeDataRejectsUnknownObjectType(t *testing.T) {
	t.Parallel()

	body := `{"sha":"a","url":"u","truncated":true,"tree":[{"path":"x","mode":"100644","type":"blob","sha":"b"},{"path":"y","mode":"100644","type":"lfs","sha":"c"}]}`

	_, err := codec.Decode([]byte(body), DecodeTreeData)

	var decodeErr *codec.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "tree[1].type", decodeErr.Field)

	var unknown *codec.UnknownVariantError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "lfs", unknown.Raw)
}

func TestBlobDecodedContents(t *testing.T) {
	t.Parallel()

	body := `{"content":"Q29udGVudCBvZiB0aGUgYmxvYg==\n","encoding":"base64","url":"https://api.github.com/repos/octocat/example/git/blobs/3a0f86fb8db8eea7ccbb9a95f325ddbedfb25e15","sha":"3a0f86fb8db8eea7ccbb9a95f325ddbedfb25e15","size":19}`

	blob, err := codec.Decode([]byte(body), DecodeBlob)
	require.NoError(t, err)

	contents, err := blob.DecodedContents()
	require.NoError(t, err)
	assert.Equal(t, "Content of the blob", string(contents))
	assert.Equal(t, "19 B", blob.HumanSize())

	blob.Encoding = "utf-8"
	_, err = blob.DecodedContents()
	var contentErr *codec.ContentDecodeError
	require.True(t, errors.As(err, &contentErr))
	assert.True(t, contentErr.Unsupported())
}
