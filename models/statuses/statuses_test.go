package statuses

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const status = `{
  "url": "https://api.github.com/repos/octocat/Hello-World/statuses/6dcb09b5b57875f334f61aebed695e2e4193db5e",
  "id": 1,
  "node_id": "MDY6U3RhdHVzMQ==",
  "state": "success",
  "description": "Build has completed successfully",
  "target_url": "https://ci.example.com/1000/output",
  "context": "continuous-integration/jenkins",
  "created_at": "2012-07-20T01:19:13Z",
  "updated_at": "2012-07-20T01:19:13Z",
  "creator": ` + fixtures.User + `
}`

func TestDecodeStatus(t *testing.T) {
	t.Parallel()

	s, err := codec.Decode([]byte(status), DecodeStatus)
	require.NoError(t, err)

	assert.Equal(t, Success, s.State)
	assert.Equal(t, "continuous-integration/jenkins", s.Context)
	require.NotNil(t, s.Creator)
}

func TestDecodeStatusRejectsUnknownState(t *testing.T) {
	t.Parallel()

	_, err := codec.DecodeList([]byte("["+fixtures.With(status, "state", `"skipped"`)+"]"), DecodeStatus)

	var decodeErr *codec.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "[0].state", decodeErr.Field)

	var unknown *codec.UnknownVariantError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "statuses.State", unknown.Type)
	assert.Equal(t, "skipped", unknown.Raw)
}

func TestDecodeCombinedStatus(t *testing.T) {
	t.Parallel()

	body := `{"state":"pending","sha":"6dcb09b5b57875f334f61aebed695e2e4193db5e","total_count":1,` +
		`"statuses":[` + fixtures.Without(status, "creator") + `],` +
		`"commit_url":"https://api.github.com/repos/octocat/Hello-World/6dcb09b5b57875f334f61aebed695e2e4193db5e",` +
		`"url":"https://api.github.com/repos/octocat/Hello-World/6dcb09b5b57875f334f61aebed695e2e4193db5e/status"}`

	combined, err := codec.Decode([]byte(body), DecodeCombinedStatus)
	require.NoError(t, err)

	assert.Equal(t, Pending, combined.State)
	require.Len(t, combined.Statuses, 1)
	assert.Nil(t, combined.Statuses[0].Creator)
}

func TestStatusOptionsRoundTrip(t *testing.T) {
	t.Parallel()

	context := "ci"
	options := StatusOptions{State: Failure, Context: &context}

	encoded, err := json.Marshal(options)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"failure","context":"ci"}`, string(encoded))

	var decoded StatusOptions
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, options, decoded)
}
