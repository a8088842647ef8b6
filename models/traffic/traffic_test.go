package traffic

import (
	"testing"
	"time"

	"github.com/gruntwork-io/hubcodec/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeViewsAndClones(t *testing.T) {
	t.Parallel()

	views, err := codec.Decode([]byte(`{"count":14850,"uniques":3782,"views":[`+
		`{"timestamp":"2016-10-10T00:00:00Z","count":440,"uniques":143},`+
		`{"timestamp":"2016-10-11T00:00:00Z","count":1308,"uniques":414}]}`), DecodeViews)
	require.NoError(t, err)
	assert.Equal(t, uint64(14850), views.Count)
	require.Len(t, views.Views, 2)
	assert.Equal(t, time.Date(2016, 10, 11, 0, 0, 0, 0, time.UTC), views.Views[1].Timestamp.UTC())

	clones, err := codec.Decode([]byte(`{"count":173,"uniques":128,"clones":[]}`), DecodeClones)
	require.NoError(t, err)
	assert.NotNil(t, clones.Clones)
	assert.Empty(t, clones.Clones)
}

func TestDecodeReferrersAndPaths(t *testing.T) {
	t.Parallel()

	referrers, err := codec.DecodeList([]byte(`[{"referrer":"Google","count":4,"uniques":3},{"referrer":"stackoverflow.com","count":2,"uniques":2}]`), DecodeReferrer)
	require.NoError(t, err)
	assert.Equal(t, []Referrer{{"Google", 4, 3}, {"stackoverflow.com", 2, 2}}, referrers)

	paths, err := codec.DecodeList([]byte(`[{"path":"/github/hubot","title":"github/hubot: A customizable life embetterment robot.","count":3542,"uniques":2225}]`), DecodePath)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "/github/hubot", paths[0].Path)
}

func TestDecodeDataPointRejectsNegativeCounts(t *testing.T) {
	t.Parallel()

	_, err := codec.Decode([]byte(`{"timestamp":"2016-10-10T00:00:00Z","count":-1,"uniques":0}`), DecodeDataPoint)

	var decodeErr *codec.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "count", decodeErr.Field)
}
