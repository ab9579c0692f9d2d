package sarif

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeTree(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestLookup(t *testing.T) {
	tree := decodeTree(t, `{"a":{"b":[{"c":"deep"},{"c":null}]},"n":7}`)

	tests := []struct {
		name   string
		path   []interface{}
		want   interface{}
		wantOK bool
	}{
		{name: "empty path returns node", path: nil, want: tree, wantOK: true},
		{name: "nested key and index", path: []interface{}{"a", "b", 0, "c"}, want: "deep", wantOK: true},
		{name: "present null", path: []interface{}{"a", "b", 1, "c"}, want: nil, wantOK: true},
		{name: "missing key", path: []interface{}{"a", "x"}, wantOK: false},
		{name: "index out of range", path: []interface{}{"a", "b", 5, "c"}, wantOK: false},
		{name: "negative index", path: []interface{}{"a", "b", -1}, wantOK: false},
		{name: "key on array", path: []interface{}{"a", "b", "c"}, wantOK: false},
		{name: "index on object", path: []interface{}{"a", 0}, wantOK: false},
		{name: "walk through scalar", path: []interface{}{"n", "x"}, wantOK: false},
		{name: "unsupported step type", path: []interface{}{1.5}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tree, tt.path...)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLookupTypedAccessors(t *testing.T) {
	tree := decodeTree(t, `{"s":"text","i":12,"f":3.9,"b":true,"l":[1,2],"null":null}`)

	assert.Equal(t, "text", LookupString(tree, "def", "s"))
	assert.Equal(t, "def", LookupString(tree, "def", "i"), "non-string falls back")
	assert.Equal(t, "def", LookupString(tree, "def", "null"), "null falls back")
	assert.Equal(t, "def", LookupString(tree, "def", "missing"))

	assert.Equal(t, 12, LookupInt(tree, 0, "i"))
	assert.Equal(t, 3, LookupInt(tree, 0, "f"))
	assert.Equal(t, -1, LookupInt(tree, -1, "s"))
	assert.Equal(t, -1, LookupInt(tree, -1, "b"))
	assert.Equal(t, 0, LookupInt(tree, 0, "missing"))
	assert.Equal(t, 5, LookupInt(map[string]interface{}{"n": json.Number("5")}, 0, "n"))
	assert.Equal(t, 0, LookupInt(map[string]interface{}{"n": json.Number("5.5")}, 0, "n"))

	assert.Len(t, LookupSlice(tree, "l"), 2)
	assert.Nil(t, LookupSlice(tree, "s"))
	assert.Nil(t, LookupSlice(tree, "missing"))
}

func TestLookupOnDocument(t *testing.T) {
	doc := Document{"version": "2.1.0"}
	assert.Equal(t, "2.1.0", LookupString(doc, "", "version"))
}
