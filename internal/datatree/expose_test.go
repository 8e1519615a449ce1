package datatree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestCtyValue_NamedAndPositional(t *testing.T) {
	root := build(t,
		insert{[]string{"mine"}, "mine text"},
		insert{[]string{"yours"}, "yours text"},
	)

	val := root.CtyValue()
	require.True(t, val.Type().IsObjectType())
	assert.Equal(t, cty.StringVal("mine text"), val.GetAttr("mine"))
	assert.Equal(t, cty.StringVal("yours text"), val.GetAttr("yours"))

	coll := val.GetAttr(CollectionKey)
	require.True(t, coll.Type().IsTupleType())
	require.Equal(t, 2, coll.LengthInt())
	assert.Equal(t, cty.StringVal("mine text"), coll.Index(cty.NumberIntVal(0)))
	assert.Equal(t, cty.StringVal("yours text"), coll.Index(cty.NumberIntVal(1)))
}

func TestCtyValue_NestedCollections(t *testing.T) {
	root := build(t,
		insert{[]string{"f1", "i1"}, "1"},
		insert{[]string{"f1", "i2"}, "2"},
		insert{[]string{"f2", "i3"}, "3"},
	)

	coll := root.CtyValue().GetAttr(CollectionKey)
	require.Equal(t, 2, coll.LengthInt())

	first := coll.Index(cty.NumberIntVal(0))
	second := coll.Index(cty.NumberIntVal(1))
	assert.Equal(t, 2, first.GetAttr(CollectionKey).LengthInt())
	assert.Equal(t, 1, second.GetAttr(CollectionKey).LengthInt())
	assert.True(t, first.RawEquals(root.CtyValue().GetAttr("f1")))
}

func TestCtyValue_EmptyRoot(t *testing.T) {
	val := NewNode().CtyValue()
	require.True(t, val.Type().HasAttribute(CollectionKey))
	assert.Equal(t, 0, val.GetAttr(CollectionKey).LengthInt())
}

func TestNative(t *testing.T) {
	root := build(t,
		insert{[]string{"f1", "i1"}, "1"},
		insert{[]string{"top"}, "t"},
	)

	want := map[string]any{
		"f1": map[string]any{
			"i1":          "1",
			CollectionKey: []any{"1"},
		},
		"top": "t",
		CollectionKey: []any{
			map[string]any{
				"i1":          "1",
				CollectionKey: []any{"1"},
			},
			"t",
		},
	}
	if diff := cmp.Diff(want, root.Native()); diff != "" {
		t.Errorf("Native() mismatch (-want +got):\n%s", diff)
	}
}

func TestCtyValue_NamedAndPositionalStayInStep(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Insert([]string{"caf\u00e9"}, "precomposed"))
	require.Error(t, b.Insert([]string{"cafe\u0301"}, "decomposed"))
	require.NoError(t, b.Insert([]string{"tea"}, "plain"))

	val := b.Root().CtyValue()
	assert.Len(t, val.Type().AttributeTypes(), b.Root().Len()+1)
	assert.Equal(t, b.Root().Len(), val.GetAttr(CollectionKey).LengthInt())
}

func TestCtyValue_LeafTextIsNFC(t *testing.T) {
	root := build(t, insert{[]string{"word"}, "cafe\u0301"})

	assert.Equal(t, cty.StringVal("caf\u00e9"), root.CtyValue().GetAttr("word"))
	e, _ := root.Get("word")
	assert.Equal(t, "cafe\u0301", e.Text(), "stored text keeps its bytes")
	assert.Equal(t, "cafe\u0301", root.Native()["word"])
}
