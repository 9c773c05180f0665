package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadParsesEnvironPairs(t *testing.T) {
	src := NewSourceFromEnviron(func() []string {
		return []string{
			"PORT=3000",
			"MESSAGE=a=b=c",
			"EMPTY=",
			"MALFORMED",
			"=nameless",
		}
	})

	snap, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"PORT", "MESSAGE", "EMPTY"}, snap.Keys())

	v, _ := snap.Get("MESSAGE")
	assert.Equal(t, "a=b=c", v, "only the first = separates name and value")

	v, ok := snap.Get("EMPTY")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestLoadReadsRealEnvironment(t *testing.T) {
	t.Setenv("ENV_CONFIG_VALIDATOR_TEST", "present")

	snap, err := NewSource().Load(context.Background())
	require.NoError(t, err)

	v, ok := snap.Get("ENV_CONFIG_VALIDATOR_TEST")
	assert.True(t, ok)
	assert.Equal(t, "present", v)
}
