package levels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	lvl, err := LoadLevelFromFS("foxtrot.json")
	require.NoError(t, err)
	require.Equal(t, 24, lvl.Width)
	require.Len(t, lvl.Layers, 2)
	require.True(t, lvl.LayerMeta[1].Physics)

	types := map[string]bool{}
	for _, e := range lvl.Entities {
		types[e.Type] = true
	}
	for _, want := range []string{"player", "fox", "book", "mug", "candle"} {
		require.True(t, types[want], "level should place a %s", want)
	}
}

func TestParseLevelRejectsShortLayer(t *testing.T) {
	_, err := parseLevel([]byte(`{"width": 2, "height": 2, "layers": [[1, 1, 1]]}`))
	require.ErrorContains(t, err, "layer 0")

	_, err = parseLevel([]byte(`{"width": 0, "height": 2}`))
	require.Error(t, err)
}

func TestLoadLevelAddsExtension(t *testing.T) {
	lvl, err := LoadLevel("foxtrot")
	require.NoError(t, err)
	require.Equal(t, 16, lvl.Height)
}
