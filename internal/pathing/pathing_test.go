package pathing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jailfs/internal/pathing"
)

func TestNormalize_Absolute(t *testing.T) {
	t.Parallel()

	result, err := pathing.Normalize("/a/b/c", "/")

	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", result)
}

func TestNormalize_RelativeToGiven(t *testing.T) {
	t.Parallel()

	result, err := pathing.Normalize("c/d", "/a/b")

	require.NoError(t, err)
	assert.Equal(t, "/a/b/c/d", result)
}

func TestNormalize_DropsDotsAndEmptySegments(t *testing.T) {
	t.Parallel()

	result, err := pathing.Normalize("/a//.//b///./c/", "/")

	require.NoError(t, err)
	assert.Equal(t, "/a/b/c", result)
}

func TestNormalize_ParentSegments(t *testing.T) {
	t.Parallel()

	result, err := pathing.Normalize("/a/b/../c", "/")

	require.NoError(t, err)
	assert.Equal(t, "/a/c", result)
}

func TestNormalize_ClimbAboveRootFails(t *testing.T) {
	t.Parallel()

	_, err := pathing.Normalize("/a/../../b", "/")

	require.ErrorIs(t, err, pathing.ErrClimbedAboveRoot)
}

func TestNormalize_ClimbExactlyToRoot(t *testing.T) {
	t.Parallel()

	result, err := pathing.Normalize("../../x", "/a/b")

	require.NoError(t, err)
	assert.Equal(t, "/x", result)

	_, err = pathing.Normalize("../../../x", "/a/b")

	require.ErrorIs(t, err, pathing.ErrClimbedAboveRoot)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"/a/b/c", "/a//b/./c", "x/../y", "/日本国/movi es"}

	for _, input := range inputs {
		first, err := pathing.Normalize(input, "/")
		require.NoError(t, err)

		second, err := pathing.Normalize(first, "/")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestNormalize_RootItself(t *testing.T) {
	t.Parallel()

	result, err := pathing.Normalize("/", "/")

	require.NoError(t, err)
	assert.Equal(t, "/", result)
}

func TestNormalize_Unicode(t *testing.T) {
	t.Parallel()

	result, err := pathing.Normalize("日本国/file", "/movi es")

	require.NoError(t, err)
	assert.Equal(t, "/movi es/日本国/file", result)
}
