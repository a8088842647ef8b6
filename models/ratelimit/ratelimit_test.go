package ratelimit

import (
	"testing"
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatus(t *testing.T) {
	t.Parallel()

	body := `{
	  "resources": {
	    "core": {"limit": 5000, "remaining": 4999, "reset": 1372700873, "used": 1},
	    "search": {"limit": 30, "remaining": 0, "reset": 1372697452, "used": 30},
	    "graphql": {"limit": 5000, "remaining": 5000, "reset": 1372700389, "used": 0}
	  },
	  "rate": {"limit": 5000, "remaining": 4999, "reset": 1372700873, "used": 1}
	}`

	status, err := codec.Decode([]byte(body), DecodeStatus)
	require.NoError(t, err)

	assert.Equal(t, uint64(5000), status.Resources.Core.Limit)
	assert.Equal(t, time.Unix(1372700873, 0).UTC(), status.Resources.Core.Reset)
	assert.True(t, status.Resources.Search.Exhausted())
	assert.False(t, status.Resources.Core.Exhausted())
	require.NotNil(t, status.Resources.Graphql)
	require.NotNil(t, status.Rate)
	assert.Equal(t, status.Resources.Core, *status.Rate)
}

func TestDecodeStatusWithoutOptionalResources(t *testing.T) {
	t.Parallel()

	body := `{"resources":{"core":{"limit":60,"remaining":59,"reset":1372700873},"search":{"limit":10,"remaining":10,"reset":1372697452}}}`

	status, err := codec.Decode([]byte(body), DecodeStatus)
	require.NoError(t, err)
	assert.Nil(t, status.Rate)
	assert.Nil(t, status.Resources.Graphql)
	assert.Nil(t, status.Resources.Core.Used)
}

func TestDecodeResourceRejectsTimestampReset(t *testing.T) {
	t.Parallel()

	_, err := codec.Decode([]byte(`{"limit":60,"remaining":59,"reset":"2013-07-01T17:47:53Z"}`), DecodeResource)

	var decodeErr *codec.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "reset", decodeErr.Field)
}
