// Package reportstore keeps finished reports available for download for a
// bounded window. In-process only: nothing survives a restart.
package reportstore

import (
	"time"

	"github.com/patrickmn/go-cache"

	"pacp_coder/internal/domain/entity"
)

type Store struct {
	reports *cache.Cache
}

func New(ttl time.Duration) *Store {
	return &Store{
		reports: cache.New(ttl, ttl/2),
	}
}

func (s *Store) Put(report entity.Report) {
	s.reports.Set(report.ID, report, cache.DefaultExpiration)
}

func (s *Store) Get(id string) (entity.Report, bool) {
	stored, ok := s.reports.Get(id)
	if !ok {
		return entity.Report{}, false
	}

	report, ok := stored.(entity.Report)

	return report, ok
}

func (s *Store) Count() int {
	return s.reports.ItemCount()
}
