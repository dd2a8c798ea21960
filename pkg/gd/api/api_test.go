package api

import (
	"errors"
	"testing"

	opt "github.com/repeale/fp-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfoust/gdlevel/pkg/gd/colors"
	"github.com/cfoust/gdlevel/pkg/gd/schema"
	"github.com/cfoust/gdlevel/pkg/gd/serde"
)

func dump(t *testing.T, s interface{ Dump() (string, error) }) string {
	text, err := s.Dump()
	require.NoError(t, err)
	return text
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{
		"1,1,2,0,3,0",
		"1,899,2,45,3,15,7,255,8,128,9,0,10,0.5,23,12,57,2.4.10",
		"1,1,2,15,3,45,31,aGVsbG8=,43,0a1a1a0a0",
	} {
		object, err := ObjectFromString(text)
		require.NoError(t, err)
		assert.Equal(t, text, dump(t, object))

		again, err := ObjectFromString(dump(t, object))
		require.NoError(t, err)
		assert.Equal(t, text, dump(t, again))
	}

	channel, err := ColorChannelFromString("1_40_2_125_3_255_4_-1_5_1_6_1000_7_1_8_1_11_255_12_255_13_255_15_1_18_0")
	require.NoError(t, err)
	assert.Equal(t, "1_40_2_125_3_255_4_-1_5_1_6_1000_7_1_8_1_11_255_12_255_13_255_15_1_18_0", dump(t, channel))
}

func TestDefaults(t *testing.T) {
	object := NewObject()
	assert.Empty(t, object.ToDict())
	assert.Equal(t, "1,1,2,0,3,0", dump(t, object))

	require.NoError(t, object.Edit(map[string]any{"x": 15}))
	assert.Equal(t, map[string]any{"x": 15.0}, object.ToDict())

	channel := NewColorChannel()
	assert.Empty(t, channel.ToDict())
	assert.Equal(t, "1_255_2_255_3_255_4_-1_5_0_7_1_8_1_11_255_12_255_13_255_15_1_18_0", dump(t, channel))
}

func TestFromStringOmitsAbsentDefaults(t *testing.T) {
	object, err := ObjectFromString("2,30")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 30.0}, object.ToDict())
	assert.Equal(t, 1, object.Len())
	assert.Equal(t, "1,1,2,30,3,0", dump(t, object))
}

func TestToMapIsFresh(t *testing.T) {
	object := NewObject()
	X.Set(object, 5)

	merged := object.ToMap()
	assert.Equal(t, schema.Data{1: 1, 2: 5.0, 3: 0.0}, merged)

	merged[1] = 500
	merged[2] = 0.0
	assert.Equal(t, schema.Data{1: 1, 2: 5.0, 3: 0.0}, object.ToMap())
	assert.Equal(t, schema.Data{1: 1, 2: 0.0, 3: 0.0}, NewObject().ToMap())
}

func TestUnset(t *testing.T) {
	object := NewObject()

	value, err := object.Get("x")
	require.NoError(t, err)
	assert.True(t, opt.IsNone(value))

	value, err = object.GetMerged("x")
	require.NoError(t, err)
	require.True(t, opt.IsSome(value))
	assert.Equal(t, 0.0, value.Value)

	value, err = object.GetMerged("rotation")
	require.NoError(t, err)
	assert.True(t, opt.IsNone(value))

	_, err = object.Get("nope")
	assert.ErrorIs(t, err, schema.ErrUnknownField)

	ObjectID.Set(object, 1)
	assert.Equal(t, map[string]any{"id": 1}, object.ToDict())
	require.NoError(t, object.Clear("id"))
	assert.Empty(t, object.ToDict())
}

func TestUnknownKeyOpacity(t *testing.T) {
	object, err := ObjectFromString("1,1,999,abc")
	require.NoError(t, err)
	assert.Contains(t, dump(t, object), "999,abc")
	assert.Equal(t, map[string]any{"id": 1}, object.ToDict())
}

func TestAddGroups(t *testing.T) {
	object := NewObject()
	object.AddGroups(1, 2)
	object.AddGroups(2, 3)
	assert.Equal(t, schema.Groups{1, 2, 3}, Groups.Get(object).Value)

	other := NewObject()
	other.AddGroups(1, 2)
	other.AddGroups(1, 2)
	assert.Equal(t, schema.Groups{1, 2}, Groups.Get(other).Value)

	reordered := NewObject()
	reordered.AddGroups(2, 1)
	assert.Equal(t, dump(t, other), dump(t, reordered))
}

func TestSetColor(t *testing.T) {
	for _, input := range []colors.Input{
		colors.Triple{10, 20, 30},
		colors.FromRGB(10, 20, 30),
		colors.Number(0x0a141e),
	} {
		object := NewObject()
		require.NoError(t, object.SetColor(input))
		assert.Equal(t, map[string]any{"r": 10, "g": 20, "b": 30}, object.ToDict())

		channel := NewColorChannel()
		require.NoError(t, channel.SetColor(input))
		assert.Equal(t, 10, ChannelRed.Get(channel).Value)
		assert.Equal(t, 20, ChannelGreen.Get(channel).Value)
		assert.Equal(t, 30, ChannelBlue.Get(channel).Value)
	}

	object := NewObject()
	assert.ErrorIs(t, object.SetColor(colors.Triple{300, 0, 0}), colors.ErrComponent)
	assert.ErrorIs(t, object.SetColor(nil), colors.ErrNoInput)
	assert.Empty(t, object.ToDict())
}

func TestCopyIndependence(t *testing.T) {
	a := NewObject()
	X.Set(a, 10)
	a.AddGroups(1)

	b := a.Copy()
	require.NoError(t, b.Edit(map[string]any{"x": 99}))
	b.AddGroups(2)

	assert.Equal(t, 10.0, X.Get(a).Value)
	assert.Equal(t, schema.Groups{1}, Groups.Get(a).Value)
	assert.Equal(t, 99.0, X.Get(b).Value)
	assert.Equal(t, schema.Groups{1, 2}, Groups.Get(b).Value)

	c := NewColorChannel()
	d := c.Copy()
	ChannelOpacity.Set(d, 0.5)
	assert.True(t, opt.IsNone(ChannelOpacity.Get(c)))
}

func TestMalformed(t *testing.T) {
	for _, text := range []string{"1", "1,notanumber", "x,1", "4,2"} {
		object, err := ObjectFromString(text)
		assert.Nil(t, object)
		assert.ErrorIs(t, err, ErrMalformed, text)

		var malformed *MalformedError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, "object", malformed.Kind)
	}

	_, err := ObjectFromString("1,notanumber")
	var fieldErr *serde.FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, 1, fieldErr.Key)

	_, err = ColorChannelFromString("1_255_2")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCanonicalOrdering(t *testing.T) {
	a := NewObject()
	require.NoError(t, a.Set("rotation", 90))
	require.NoError(t, a.Set("x", 15))
	require.NoError(t, a.Set("groups", []int{4, 2}))
	require.NoError(t, a.Set("color_1", colors.Obj))

	b := NewObject()
	require.NoError(t, b.Set("color_1", 1004))
	b.AddGroups(2, 4)
	X.Set(b, 15)
	Rotation.Set(b, 90)

	assert.Equal(t, dump(t, a), dump(t, b))
	assert.Equal(t, "1,1,2,15,3,0,6,90,21,1004,57,2.4", dump(t, a))
}

func TestEdit(t *testing.T) {
	object := NewObject()
	err := object.Edit(map[string]any{
		"x":        15,
		"y":        30,
		"blending": "yes",
	})
	assert.ErrorIs(t, err, schema.ErrValueType)

	// blending sorts first, so nothing was applied
	assert.Empty(t, object.ToDict())

	err = object.Edit(map[string]any{"unknown_field": 1})
	assert.ErrorIs(t, err, schema.ErrUnknownField)
}

func TestFromMappingIsTrusted(t *testing.T) {
	// Literals in declared fields are written in canonical form, undeclared
	// keys untouched
	object := ObjectFromMapping(schema.Data{1: 8, 2: "12.50", 57: []int{3, 1}, 500: "x"})
	assert.Equal(t, "1,8,2,12.5,3,0,57,1.3,500,x", dump(t, object))

	for _, data := range []schema.Data{
		{4: "yes"},
		{57: "b"},
	} {
		_, err := ObjectFromMapping(data).Dump()
		var fieldErr *serde.FieldError
		assert.True(t, errors.As(err, &fieldErr), "%v", data)
		assert.ErrorIs(t, err, schema.ErrLiteral)
	}
}

func TestFromMappingRoundTrip(t *testing.T) {
	for _, data := range []schema.Data{
		{2: "12.50", 3: 7},
		{1: "0901", 21: "1004", 57: "4.2.2"},
		{57: []int{9, 1}, 31: "aGVsbG8="},
		{6: 90.0, 500: "opaque"},
	} {
		text := dump(t, ObjectFromMapping(data))

		parsed, err := ObjectFromString(text)
		require.NoError(t, err, text)
		assert.Equal(t, text, dump(t, parsed))
	}
}

func TestString(t *testing.T) {
	object := NewObject()
	X.Set(object, 3)
	ObjectID.Set(object, 8)
	assert.Equal(t, "<object id=8 x=3>", object.String())
}
