package service

import (
	"errors"

	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// Service defines the document store operations used by callers.
type Service interface {
	Save(d *document.Document) (document.Document, error)
	FindByID(id string) (document.Document, bool)
	Search(req document.SearchRequest) []document.Document
}

// Option configures the service returned by NewMemoryService.
type Option func(*memoryService)

func WithLogger(l *logrus.Entry) Option {
	return func(s *memoryService) { s.log = l }
}

// WithMetrics records operation counts on c. Without it nothing is recorded.
func WithMetrics(c *metrics.Collectors) Option {
	return func(s *memoryService) { s.metrics = c }
}

// WithRepoOptions passes options through to the underlying memory repository.
func WithRepoOptions(opts ...repository.Option) Option {
	return func(s *memoryService) { s.repoOpts = append(s.repoOpts, opts...) }
}

// NewMemoryService returns a Service backed by its own in-memory repository.
func NewMemoryService(opts ...Option) Service {
	s := &memoryService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.WithFields(logrus.Fields{"component": "docstore"})
	}
	s.repo = repository.NewMemoryRepo(s.repoOpts...)
	return s
}

type memoryService struct {
	repo     *repository.MemoryRepo
	repoOpts []repository.Option
	log      *logrus.Entry
	metrics  *metrics.Collectors
}

func (s *memoryService) Save(d *document.Document) (document.Document, error) {
	saved, created, err := s.repo.Upsert(d)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidArgument) {
			s.count("invalid")
		}
		s.log.WithField("error", err).Warn("Rejected document save")
		return document.Document{}, err
	}

	result := "updated"
	if created {
		result = "created"
	}
	s.count(result)
	s.log.WithFields(logrus.Fields{
		"document_id": saved.ID,
		"result":      result,
	}).Info("Document saved")
	return saved, nil
}

func (s *memoryService) FindByID(id string) (document.Document, bool) {
	d, ok := s.repo.FindByID(id)
	log := s.log.WithField("document_id", id)
	if !ok {
		s.lookup("miss")
		log.Debug("Document with specified ID not found")
		return document.Document{}, false
	}
	s.lookup("hit")
	log.Debug("Document retrieved successfully")
	return d, true
}

func (s *memoryService) Search(req document.SearchRequest) []document.Document {
	out := s.repo.Search(req)
	if s.metrics != nil {
		s.metrics.Searches.Inc()
		s.metrics.SearchResults.Observe(float64(len(out)))
	}
	s.log.WithFields(logrus.Fields{
		"title_prefixes":    len(req.TitlePrefixes),
		"contains_contents": len(req.ContainsContents),
		"author_ids":        len(req.AuthorIDs),
		"bounded":           req.CreatedFrom != nil || req.CreatedTo != nil,
		"results":           len(out),
	}).Debug("Search completed")
	return out
}

func (s *memoryService) count(result string) {
	if s.metrics != nil {
		s.metrics.Saves.WithLabelValues(result).Inc()
	}
}

func (s *memoryService) lookup(result string) {
	if s.metrics != nil {
		s.metrics.Lookups.WithLabelValues(result).Inc()
	}
}
