package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAsset(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("img"), 0644))
}

func newAssetFixture(t *testing.T) *AssetService {
	t.Helper()
	root := t.TempDir()

	writeAsset(t, filepath.Join(root, "math", "algebra", "assets", "fig1.png"))
	writeAsset(t, filepath.Join(root, "math", "geometry", "triangle.svg"))

	return NewAssetService(root)
}

func TestAssetResolveFromSharedAssetsDir(t *testing.T) {
	svc := newAssetFixture(t)
	writeAsset(t, filepath.Join(svc.AssetDir, "logo.png"))

	path := svc.Resolve("logo.png")
	assert.Equal(t, filepath.Join(svc.AssetDir, "logo.png"), path,
		"the shared assets dir is anchored beside the content root")
}

func TestAssetResolveFromDivisionAssetsDir(t *testing.T) {
	svc := newAssetFixture(t)

	path := svc.Resolve("fig1.png")
	assert.Equal(t, filepath.Join(svc.RootDir, "math", "algebra", "assets", "fig1.png"), path)
}

func TestAssetResolveByBasename(t *testing.T) {
	svc := newAssetFixture(t)

	path := svc.Resolve("triangle.svg")
	assert.Equal(t, filepath.Join(svc.RootDir, "math", "geometry", "triangle.svg"), path)
}

func TestAssetResolveMiss(t *testing.T) {
	svc := newAssetFixture(t)
	assert.Empty(t, svc.Resolve("nope.png"))
}

func TestAssetResolveRejectsTraversal(t *testing.T) {
	svc := newAssetFixture(t)

	// A file that sits outside the content root must stay unreachable no
	// matter how the request addresses it.
	secret := filepath.Join(filepath.Dir(svc.RootDir), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("keep out"), 0644))

	testCases := []struct {
		name string
		path string
	}{
		{"plain dot-dot", "../secret.txt"},
		{"nested dot-dot", "foo/../../secret.txt"},
		{"deep dot-dot", "../../../../etc/hosts"},
		{"backslash separator", `..\secret.txt`},
		{"empty name", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, svc.Resolve(tc.path))
		})
	}
}

func TestAssetResolvePrefixedRejectsTraversal(t *testing.T) {
	svc := newAssetFixture(t)

	secret := filepath.Join(filepath.Dir(svc.RootDir), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("keep out"), 0644))

	assert.Empty(t, svc.ResolvePrefixed("..", "secret.txt"))
	assert.Empty(t, svc.ResolvePrefixed("math", "../../secret.txt"))
}

func TestAssetResolvePrefixed(t *testing.T) {
	svc := newAssetFixture(t)

	path := svc.ResolvePrefixed(filepath.Join("math", "algebra"), "fig1.png")
	assert.Equal(t, filepath.Join(svc.RootDir, "math", "algebra", "assets", "fig1.png"), path)

	// Falls back to the global search when the prefix has no assets dir.
	path = svc.ResolvePrefixed(filepath.Join("math", "geometry"), "fig1.png")
	assert.NotEmpty(t, path)
}
