package teams

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTeam(t *testing.T) {
	t.Parallel()

	team, err := codec.Decode([]byte(fixtures.Team), DecodeTeam)
	require.NoError(t, err)

	assert.Equal(t, "justice-league", team.Slug)
	assert.Equal(t, Closed, team.Privacy)
	assert.Equal(t, Admin, team.Permission)
	assert.False(t, team.Permission.IsOther())
}

func TestDecodeTeamEnumPolicies(t *testing.T) {
	t.Parallel()

	team, err := codec.Decode([]byte(fixtures.With(fixtures.Team, "permission", `"custom-role"`)), DecodeTeam)
	require.NoError(t, err)
	assert.Equal(t, Permission("custom-role"), team.Permission)
	assert.True(t, team.Permission.IsOther())

	_, err = codec.Decode([]byte(fixtures.With(fixtures.Team, "privacy", `"visible"`)), DecodeTeam)
	var unknown *codec.UnknownVariantError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "teams.Privacy", unknown.Type)
}

func TestDecodeTeamMember(t *testing.T) {
	t.Parallel()

	cases := []struct {
		body  string
		role  MemberRole
		state MemberState
		ok    bool
	}{
		{`{"url":"https://api.github.com/teams/1/memberships/octocat","role":"maintainer","state":"active"}`, Maintainer, Active, true},
		{`{"url":"https://api.github.com/teams/1/memberships/octocat","role":"member","state":"pending"}`, Member, Pending, true},
		{`{"url":"https://api.github.com/teams/1/memberships/octocat","role":"owner","state":"active"}`, "", "", false},
		{`{"url":"https://api.github.com/teams/1/memberships/octocat","role":"member","state":"left"}`, "", "", false},
	}

	for _, tc := range cases {
		member, err := codec.Decode([]byte(tc.body), DecodeTeamMember)
		if !tc.ok {
			assert.Error(t, err, tc.body)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.role, member.Role)
		assert.Equal(t, tc.state, member.State)
	}
}

func TestTeamOptionsRoundTrip(t *testing.T) {
	t.Parallel()

	privacy := Secret
	options := TeamOptions{Name: "Justice League", Privacy: &privacy}

	encoded, err := json.Marshal(options)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Justice League","privacy":"secret"}`, string(encoded))

	var decoded TeamOptions
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, options, decoded)
}
