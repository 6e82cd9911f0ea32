package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacksShareKeySets(t *testing.T) {
	en := Labels("en")
	zh := Labels("zh")
	require.Equal(t, len(en), len(zh))
	for key := range en {
		assert.Contains(t, zh, key)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	assert.Equal(t, Labels("en"), Labels("fr"))
}
