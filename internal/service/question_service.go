package service

import (
	"path/filepath"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"

	"go.uber.org/zap"
)

// QuestionService aggregates question records across the content tree.
type QuestionService struct {
	ContentRepo *repository.ContentRepository
	RootDir     string
}

func NewQuestionService(contentRepo *repository.ContentRepository, rootDir string) *QuestionService {
	return &QuestionService{
		ContentRepo: contentRepo,
		RootDir:     rootDir,
	}
}

// Subjects lists the top-level subject directories.
func (s *QuestionService) Subjects() []string {
	subjects, _ := s.ContentRepo.ListSubdirectories(s.RootDir)
	return subjects
}

// Divisions lists the division directories of a subject. ErrSubjectNotFound
// when the subject directory does not exist.
func (s *QuestionService) Divisions(subject string) ([]string, error) {
	subjectPath := filepath.Join(s.RootDir, subject)
	if !s.ContentRepo.PathExists(subjectPath) {
		return nil, util.ErrSubjectNotFound
	}
	divisions, _ := s.ContentRepo.ListSubdirectories(subjectPath)
	return divisions, nil
}

// Chapters lists the chapter filenames of a division. ErrDivisionNotFound
// when the division directory does not exist.
func (s *QuestionService) Chapters(subject, division string) ([]string, error) {
	divisionPath := filepath.Join(s.RootDir, subject, division)
	if !s.ContentRepo.PathExists(divisionPath) {
		return nil, util.ErrDivisionNotFound
	}
	chapters, _ := s.ContentRepo.ListChapterFiles(divisionPath)
	return chapters, nil
}

// Aggregate walks the tree and returns every content-bearing record as an
// enriched copy, in deterministic order: subjects sorted, divisions sorted
// within a subject, chapters sorted within a division, records in file
// order. Filters are exact matches applied at their level; empty filter
// strings match everything. No matches is an empty slice, not an error.
//
// Composite ids use each record's position in the raw list, counted before
// content-less records are dropped, so ids stay aligned with the keys in
// persisted progress state.
func (s *QuestionService) Aggregate(subjectFilter, divisionFilter, chapterFilter string) []model.QuestionRecord {
	all := []model.QuestionRecord{}

	subjects, _ := s.ContentRepo.ListSubdirectories(s.RootDir)
	for _, subject := range subjects {
		if subjectFilter != "" && subject != subjectFilter {
			continue
		}
		subjectPath := filepath.Join(s.RootDir, subject)

		divisions, _ := s.ContentRepo.ListSubdirectories(subjectPath)
		for _, division := range divisions {
			if divisionFilter != "" && division != divisionFilter {
				continue
			}
			divisionPath := filepath.Join(subjectPath, division)

			chapters, _ := s.ContentRepo.ListChapterFiles(divisionPath)
			for _, chapter := range chapters {
				if chapterFilter != "" && chapter != chapterFilter {
					continue
				}
				chapterPath := filepath.Join(divisionPath, chapter)

				records, _ := s.ContentRepo.LoadChapter(chapterPath)
				for index, record := range records {
					if !record.HasContent() {
						continue
					}
					all = append(all, record.Enrich(model.QuestionSource{
						Subject:  subject,
						Division: division,
						Chapter:  chapter,
						Index:    index,
					}))
				}
			}
		}
	}

	return all
}

// SingleQuestion returns the record at index in one chapter file, enriched.
// Unlike Aggregate it applies no content filter: a content-less record at a
// valid index is returned as-is. ErrChapterNotFound when the file is
// missing, ErrQuestionIndexOutOfRange when index >= length.
func (s *QuestionService) SingleQuestion(subject, division, chapter string, index int) (model.QuestionRecord, error) {
	chapterPath := filepath.Join(s.RootDir, subject, division, chapter)
	if !s.ContentRepo.PathExists(chapterPath) {
		return nil, util.ErrChapterNotFound
	}

	records, _ := s.ContentRepo.LoadChapter(chapterPath)
	if index < 0 || index >= len(records) {
		return nil, util.ErrQuestionIndexOutOfRange
	}

	return records[index].Enrich(model.QuestionSource{
		Subject:  subject,
		Division: division,
		Chapter:  chapter,
		Index:    index,
	}), nil
}

// Summarize builds the nested subject → division → chapter structure with
// per-chapter counts of content-bearing records.
func (s *QuestionService) Summarize() model.Structure {
	structure := model.Structure{}

	subjects, _ := s.ContentRepo.ListSubdirectories(s.RootDir)
	for _, subject := range subjects {
		structure[subject] = map[string]map[string]model.ChapterSummary{}
		subjectPath := filepath.Join(s.RootDir, subject)

		divisions, _ := s.ContentRepo.ListSubdirectories(subjectPath)
		for _, division := range divisions {
			divisionPath := filepath.Join(subjectPath, division)
			chapters, _ := s.ContentRepo.ListChapterFiles(divisionPath)

			chapterInfo := map[string]model.ChapterSummary{}
			for _, chapter := range chapters {
				records, _ := s.ContentRepo.LoadChapter(filepath.Join(divisionPath, chapter))
				count := 0
				for _, record := range records {
					if record.HasContent() {
						count++
					}
				}
				chapterInfo[chapter] = model.ChapterSummary{QuestionCount: count}
			}

			structure[subject][division] = chapterInfo
		}
	}

	return structure
}

// LogContentCensus logs the per-subject count of content-bearing questions
// at startup.
func (s *QuestionService) LogContentCensus() {
	total := 0
	for _, subject := range s.Subjects() {
		count := len(s.Aggregate(subject, "", ""))
		logger.Log.Info("Subject loaded",
			zap.String("subject", subject),
			zap.Int("questions", count))
		total += count
	}
	logger.Log.Info("Content census complete",
		zap.String("root", s.RootDir),
		zap.Int("total_questions", total))
}
