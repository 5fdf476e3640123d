package service

import (
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"roster/internal/codec"
	"roster/internal/store"
)

type ImportReport struct {
	FileName  string
	Added     int
	Skipped   int
	Status    string // "completed", "error"
	Error     string
	StartTime time.Time
	EndTime   time.Time
}

type UploadService struct {
	roster     store.Roster
	reportMap  map[string]*ImportReport
	reportLock sync.RWMutex
}

func NewUploadService(roster store.Roster) *UploadService {
	return &UploadService{
		roster:    roster,
		reportMap: make(map[string]*ImportReport),
	}
}

// Import parses r, appends every valid record and persists the roster once.
// Malformed lines only increase the skipped count.
func (s *UploadService) Import(fileName string, r io.Reader) (*ImportReport, error) {
	report := &ImportReport{
		FileName:  fileName,
		StartTime: time.Now(),
	}

	students, skipped, err := codec.Decode(r)
	if err != nil {
		return s.finish(report, fmt.Errorf("read upload %s: %w", fileName, err))
	}

	for _, student := range students {
		s.roster.Append(student)
	}
	report.Added = len(students)
	report.Skipped = skipped

	if err := s.roster.PersistAll(); err != nil {
		return s.finish(report, fmt.Errorf("%w: %v", ErrPersist, err))
	}

	log.Printf("Imported %s: %d added, %d skipped in %v\n", fileName, report.Added, report.Skipped, time.Since(report.StartTime))
	return s.finish(report, nil)
}

func (s *UploadService) finish(report *ImportReport, err error) (*ImportReport, error) {
	report.EndTime = time.Now()
	report.Status = "completed"
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
	}

	s.reportLock.Lock()
	s.reportMap[report.FileName] = report
	s.reportLock.Unlock()

	copyReport := *report
	return &copyReport, err
}

func (s *UploadService) GetImportReport(fileName string) *ImportReport {
	s.reportLock.RLock()
	defer s.reportLock.RUnlock()

	if report, exists := s.reportMap[fileName]; exists {
		// Return a copy to avoid race conditions
		copyReport := *report
		return &copyReport
	}

	return nil
}

func (s *UploadService) GetAllImportReports() []*ImportReport {
	s.reportLock.RLock()
	defer s.reportLock.RUnlock()

	result := make([]*ImportReport, 0, len(s.reportMap))
	for _, report := range s.reportMap {
		copyReport := *report
		result = append(result, &copyReport)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.Before(result[j].StartTime) })

	return result
}
