package deployments

import (
	"encoding/json"
	"testing"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/gruntwork-io/hubcodec/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deployment = `{
  "url": "https://api.github.com/repos/octocat/example/deployments/1",
  "id": 1,
  "node_id": "MDEwOkRlcGxveW1lbnQx",
  "sha": "a84d88e7554fc1fa21bcbc4efae3c782a70d2b9d",
  "ref": "topic-branch",
  "task": "deploy",
  "payload": {"deploy": "migrate"},
  "original_environment": "staging",
  "environment": "production",
  "description": "Deploy request from hubot",
  "creator": ` + fixtures.User + `,
  "created_at": "2012-07-20T01:19:13Z",
  "updated_at": "2012-07-20T01:19:13Z",
  "statuses_url": "https://api.github.com/repos/octocat/example/deployments/1/statuses",
  "repository_url": "https://api.github.com/repos/octocat/example",
  "transient_environment": false,
  "production_environment": true
}`

const deploymentStatus = `{
  "url": "https://api.github.com/repos/octocat/example/deployments/42/statuses/1",
  "id": 1,
  "state": "success",
  "creator": ` + fixtures.User + `,
  "description": "Deployment finished successfully.",
  "environment": "production",
  "target_url": "https://example.com/deployment/42/output",
  "created_at": "2012-07-20T01:19:13Z",
  "updated_at": "2012-07-20T01:19:13Z",
  "deployment_url": "https://api.github.com/repos/octocat/example/deployments/42",
  "repository_url": "https://api.github.com/repos/octocat/example",
  "environment_url": "https://test-branch.lab.acme.com",
  "log_url": "https://example.com/deployment/42/output"
}`

func TestDecodeDeployment(t *testing.T) {
	t.Parallel()

	d, err := codec.Decode([]byte(deployment), DecodeDeployment)
	require.NoError(t, err)

	assert.Equal(t, "topic-branch", d.Ref)
	assert.Equal(t, "production", d.Environment)
	assert.JSONEq(t, `{"deploy":"migrate"}`, string(d.Payload))
	require.NotNil(t, d.ProductionEnvironment)
	assert.True(t, *d.ProductionEnvironment)
}

func TestDecodeDeploymentPayloadShapes(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{`""`, `"{\"a\":1}"`, `null`, `[]`} {
		d, err := codec.Decode([]byte(fixtures.With(deployment, "payload", payload)), DecodeDeployment)
		require.NoError(t, err)
		assert.Equal(t, payload, string(d.Payload))
	}

	_, err := codec.Decode([]byte(fixtures.Without(deployment, "payload")), DecodeDeployment)
	assert.Error(t, err)
}

func TestDecodeDeploymentStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		state string
		other bool
	}{
		{"success", false},
		{"in_progress", false},
		{"inactive", false},
		{"waiting_for_approval", true},
	}

	for _, tc := range cases {
		status, err := codec.Decode([]byte(fixtures.With(deploymentStatus, "state", `"`+tc.state+`"`)), DecodeDeploymentStatus)
		require.NoError(t, err)
		assert.Equal(t, State(tc.state), status.State)
		assert.Equal(t, tc.other, status.State.IsOther())
	}
}

func TestDeploymentOptionsRoundTrip(t *testing.T) {
	t.Parallel()

	environment := "production"
	options := DeploymentOptions{
		Ref:              "topic-branch",
		Environment:      &environment,
		RequiredContexts: []string{"ci"},
		Payload:          json.RawMessage(`{"deploy":"migrate"}`),
	}

	encoded, err := json.Marshal(options)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ref":"topic-branch","environment":"production","required_contexts":["ci"],"payload":{"deploy":"migrate"}}`, string(encoded))

	var decoded DeploymentOptions
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, options, decoded)
}
