package uuid

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOrderedGenerator(t *testing.T) {
	g := NewTimeOrderedGenerator()

	first := g.New()
	second := g.New()

	parsed, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator("snap")
	assert.Equal(t, "snap-1", g.New())
	assert.Equal(t, "snap-2", g.New())
}
