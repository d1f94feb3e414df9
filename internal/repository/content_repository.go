package repository

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"quizhub_backend/internal/model"
	"quizhub_backend/pkg/logger"
	"quizhub_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// ContentRepository walks the subject/division/chapter tree on disk. Every
// operation degrades to an empty result on I/O or parse faults so that one
// missing or corrupt chapter file cannot abort an aggregation spanning the
// whole tree. The fault is returned alongside the result for logging and
// tests; callers must not propagate it.
type ContentRepository struct {
	chapterExt string
}

func NewContentRepository(chapterExt string) *ContentRepository {
	if chapterExt == "" {
		chapterExt = ".json"
	}
	return &ContentRepository{chapterExt: chapterExt}
}

// ChapterExtension returns the filename extension chapter files must carry.
func (r *ContentRepository) ChapterExtension() string {
	return r.chapterExt
}

// ListSubdirectories returns the sorted directory names under path. A missing
// path is not a fault, it is an empty tree level.
func (r *ContentRepository) ListSubdirectories(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		logger.Log.Error("Failed to read content directory",
			zap.String("path", path), zap.Error(err))
		monitoring.ContentWalkFaults.WithLabelValues("list_subdirectories").Inc()
		return []string{}, err
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// ListChapterFiles returns the sorted chapter filenames under path, limited
// to regular files with the chapter extension.
func (r *ContentRepository) ListChapterFiles(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		logger.Log.Error("Failed to read division directory",
			zap.String("path", path), zap.Error(err))
		monitoring.ContentWalkFaults.WithLabelValues("list_chapter_files").Inc()
		return []string{}, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), r.chapterExt) {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

// LoadChapter parses a chapter file into its raw ordered record list. A file
// that is unreadable, not valid JSON, or not a JSON array yields an empty
// list.
func (r *ContentRepository) LoadChapter(filePath string) ([]model.QuestionRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Log.Error("Failed to read chapter file",
			zap.String("path", filePath), zap.Error(err))
		monitoring.ContentWalkFaults.WithLabelValues("load_chapter").Inc()
		return []model.QuestionRecord{}, err
	}

	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Log.Error("Failed to parse chapter file",
			zap.String("path", filePath), zap.Error(err))
		monitoring.ContentWalkFaults.WithLabelValues("load_chapter").Inc()
		return []model.QuestionRecord{}, err
	}

	records := make([]model.QuestionRecord, len(raw))
	for i, item := range raw {
		if rec, ok := item.(map[string]interface{}); ok {
			records[i] = model.QuestionRecord(rec)
		} else {
			// Non-object entries keep their slot so indices stay stable.
			records[i] = model.QuestionRecord{}
		}
	}
	return records, nil
}

// PathExists reports whether path exists at all, for route-level 404 checks.
func (r *ContentRepository) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
