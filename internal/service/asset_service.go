package service

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"quizhub_backend/pkg/logger"

	"go.uber.org/zap"
)

// AssetService resolves media files referenced by question records. Assets
// usually live in an assets/ directory next to the chapter files that use
// them, but older content drops them anywhere in the tree, so resolution
// falls back to a search across the content root. Requested names are
// normalized and anything that would escape the searched directories is
// refused.
type AssetService struct {
	RootDir  string
	AssetDir string
}

func NewAssetService(rootDir string) *AssetService {
	return &AssetService{
		RootDir: rootDir,
		// The shared assets directory sits next to the content root.
		AssetDir: filepath.Join(filepath.Dir(rootDir), "assets"),
	}
}

// Resolve maps a requested asset path to a file on disk, or "" when nothing
// matches. Lookup order: the shared assets/ directory beside the content
// root, the exact relative path inside the content tree, per-division
// assets/ directories, and finally any file with the same basename anywhere
// in the tree.
func (s *AssetService) Resolve(name string) string {
	rel, ok := cleanRelPath(name)
	if !ok {
		logger.Log.Warn("Rejected asset path", zap.String("asset", name))
		return ""
	}

	direct := filepath.Join(s.AssetDir, rel)
	if fileExists(direct) {
		return direct
	}

	if found := s.searchTree(rel); found != "" {
		return found
	}

	if found := s.searchTree(filepath.Join("assets", rel)); found != "" {
		return found
	}

	base := filepath.Base(rel)
	var match string
	filepath.WalkDir(s.RootDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || match != "" {
			return fs.SkipAll
		}
		if !d.IsDir() && d.Name() == base {
			match = p
			return fs.SkipAll
		}
		return nil
	})
	if match == "" {
		logger.Log.Debug("Asset not found", zap.String("asset", name))
	}
	return match
}

// ResolvePrefixed handles asset requests addressed relative to a subject or
// division page, e.g. /algebra/linear/assets/fig1.png.
func (s *AssetService) ResolvePrefixed(prefix, name string) string {
	cleanPrefix, okPrefix := cleanRelPath(prefix)
	rel, okName := cleanRelPath(name)
	if !okPrefix || !okName {
		logger.Log.Warn("Rejected asset path",
			zap.String("prefix", prefix), zap.String("asset", name))
		return ""
	}

	candidate := filepath.Join(s.RootDir, cleanPrefix, "assets", rel)
	if fileExists(candidate) {
		return candidate
	}

	return s.Resolve(rel)
}

func (s *AssetService) searchTree(rel string) string {
	var match string
	filepath.WalkDir(s.RootDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || match != "" {
			return fs.SkipAll
		}
		if !d.IsDir() {
			return nil
		}
		candidate := filepath.Join(p, rel)
		if fileExists(candidate) {
			match = candidate
			return fs.SkipAll
		}
		return nil
	})
	return match
}

// cleanRelPath normalizes a requested path and refuses anything rooted
// outside the directory it will be joined to: absolute paths, backslashes,
// and any path whose cleaned form still starts with "..".
func cleanRelPath(name string) (string, bool) {
	name = strings.TrimPrefix(name, "/")
	if name == "" || strings.ContainsRune(name, '\\') {
		return "", false
	}
	cleaned := path.Clean(name)
	if !fs.ValidPath(cleaned) {
		return "", false
	}
	return filepath.FromSlash(cleaned), true
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
