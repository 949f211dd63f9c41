package terrain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/terrarium/internal/noise"
)

func TestNewGeneratorNilSource(t *testing.T) {
	g, err := NewGenerator(nil, GridParams{Width: 4, Depth: 4, Scale: 1}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Nil(t, g)
}

func TestGeneratorGenerate(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	params := GridParams{Width: 8, Depth: 6, Scale: 0.1, HeightMultiplier: 10}

	g, err := NewGenerator(noise.NewField(42), params, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, params, g.Params())

	res, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, res.Grid.Width)
	assert.Equal(t, 6, res.Grid.Depth)
	assert.Len(t, res.Mesh.Vertices, 48)
	assert.Equal(t, 7*5*2, res.Mesh.TriangleCount())

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "height grid built", entries[0].Message)
	assert.Equal(t, "mesh built", entries[1].Message)
	assert.Equal(t, int64(48), entries[1].ContextMap()["vertices"])
}

func TestGeneratorInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params GridParams
	}{
		{"zero scale", GridParams{Width: 4, Depth: 4, Scale: 0}},
		{"single row", GridParams{Width: 4, Depth: 1, Scale: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(noise.NewField(1), tt.params, nil)
			require.NoError(t, err)
			res, err := g.Generate(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Nil(t, res)
		})
	}
}

func TestGeneratorCanceled(t *testing.T) {
	g, err := NewGenerator(noise.NewField(1), GridParams{Width: 4, Depth: 4, Scale: 1}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := g.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}
