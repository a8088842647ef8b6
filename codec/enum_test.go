package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testColor string

type testShape string

var (
	testColors = NewClosedEnum[testColor]("codec.testColor", "red", "green")
	testShapes = NewOpenEnum[testShape]("codec.testShape", "circle", "square")
)

func TestClosedEnumRejectsUnknownTags(t *testing.T) {
	t.Parallel()

	color, err := testColors.Parse("green")
	require.NoError(t, err)
	assert.Equal(t, testColor("green"), color)

	_, err = testColors.Parse("purple")
	var unknown *UnknownVariantError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "codec.testColor", unknown.Type)
	assert.Equal(t, "purple", unknown.Raw)
}

func TestOpenEnumKeepsUnknownTags(t *testing.T) {
	t.Parallel()

	shape, err := testShapes.Parse("hexagon")
	require.NoError(t, err)
	assert.Equal(t, testShape("hexagon"), shape)
	assert.False(t, testShapes.Known(shape))
	assert.True(t, testShapes.Known("circle"))
}

func TestEnumFieldNamesTheField(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(`{"shape":"hexagon","color":"purple"}`))
	require.NoError(t, err)

	o := AsObject(root)
	assert.Equal(t, testShape("hexagon"), EnumField(o, "shape", testShapes))
	require.NoError(t, o.Err())

	EnumField(o, "color", testColors)

	var decodeErr *DecodeError
	require.True(t, errors.As(o.Err(), &decodeErr))
	assert.Equal(t, "color", decodeErr.Field)

	var unknown *UnknownVariantError
	require.True(t, errors.As(o.Err(), &unknown))
	assert.Equal(t, "purple", unknown.Raw)
}

func TestOptEnumField(t *testing.T) {
	t.Parallel()

	root, err := Parse([]byte(`{"color":null}`))
	require.NoError(t, err)

	o := AsObject(root)
	assert.Nil(t, OptEnumField(o, "color", testColors))
	assert.Nil(t, OptEnumField(o, "missing", testColors))
	assert.NoError(t, o.Err())
}

func TestEnumsAreRegistered(t *testing.T) {
	t.Parallel()

	var found bool
	enums := Enums()
	for i, info := range enums {
		if i > 0 {
			assert.True(t, enums[i-1].Name < info.Name, "enums are sorted by name")
		}
		if info.Name == "codec.testShape" {
			found = true
			assert.True(t, info.Open)
			assert.Equal(t, []string{"circle", "square"}, info.Values)
		}
	}
	assert.True(t, found)
}

func TestDuplicateEnumPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewClosedEnum[testColor]("codec.testColor", "red")
	})
}
