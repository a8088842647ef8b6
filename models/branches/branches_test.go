package branches

import (
	"encoding/json"
	"testing"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBranches(t *testing.T) {
	t.Parallel()

	body := `[
		{"name":"master","commit":{"sha":"c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc","url":"https://api.github.com/repos/octocat/Hello-World/commits/c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc"},
		 "protected":true,"protection_url":"https://api.github.com/repos/octocat/Hello-World/branches/master/protection"},
		{"name":"topic"}
	]`

	branches, err := codec.DecodeList([]byte(body), DecodeBranch)
	require.NoError(t, err)
	require.Len(t, branches, 2)

	require.NotNil(t, branches[0].Commit)
	assert.Equal(t, "c5b97d5ae6c19d5c5df71a34c7fbeeda2479ccbc", branches[0].Commit.Sha)
	require.NotNil(t, branches[0].Protected)
	assert.True(t, *branches[0].Protected)

	assert.Equal(t, "topic", branches[1].Name)
	assert.Nil(t, branches[1].Commit)
	assert.Nil(t, branches[1].ProtectionUrl)
}

func TestDecodeProtectionState(t *testing.T) {
	t.Parallel()

	body := `{
	  "url": "https://api.github.com/repos/octocat/Hello-World/branches/master/protection",
	  "required_status_checks": {
	    "url": "https://api.github.com/repos/octocat/Hello-World/branches/master/protection/required_status_checks",
	    "strict": true,
	    "contexts": ["continuous-integration/travis-ci"],
	    "contexts_url": "https://api.github.com/repos/octocat/Hello-World/branches/master/protection/required_status_checks/contexts"
	  },
	  "enforce_admins": {"url": "https://api.github.com/repos/octocat/Hello-World/branches/master/protection/enforce_admins", "enabled": true},
	  "required_pull_request_reviews": {
	    "dismissal_restrictions": {"users": [{"login": "octocat"}], "teams": []},
	    "dismiss_stale_reviews": true,
	    "require_code_owner_reviews": true,
	    "required_approving_review_count": 2
	  }
	}`

	state, err := codec.Decode([]byte(body), DecodeProtectionState)
	require.NoError(t, err)

	require.NotNil(t, state.RequiredStatusChecks)
	assert.True(t, state.RequiredStatusChecks.Strict)
	assert.Equal(t, []string{"continuous-integration/travis-ci"}, state.RequiredStatusChecks.Contexts)
	require.NotNil(t, state.EnforceAdmins)
	assert.True(t, state.EnforceAdmins.Enabled)
	require.NotNil(t, state.RequiredPullRequestReviews)
	assert.Equal(t, uint8(2), state.RequiredPullRequestReviews.RequiredApprovingReviewCount)
	assert.Nil(t, state.RequiredPullRequestReviews.DismissalRestrictions)
}

func TestDecodeUnprotectedState(t *testing.T) {
	t.Parallel()

	state, err := codec.Decode([]byte(`{}`), DecodeProtectionState)
	require.NoError(t, err)
	assert.Nil(t, state.RequiredStatusChecks)
	assert.Nil(t, state.EnforceAdmins)
}

func TestProtectionRoundTrip(t *testing.T) {
	t.Parallel()

	protection := Protection{
		RequiredStatusChecks: &StatusChecks{Strict: true, Contexts: []string{"ci"}},
		EnforceAdmins:        true,
		RequiredPullRequestReviews: &RequiredPullRequestReviews{
			DismissalRestrictions:        &Restrictions{Users: []string{"octocat"}, Teams: []string{}},
			RequiredApprovingReviewCount: 1,
		},
	}

	encoded, err := json.Marshal(protection)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"restrictions":null`)

	var decoded Protection
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, protection, decoded)
}
