package business

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/OramaLabs/launchpad-program/pkg/amm"
	"github.com/OramaLabs/launchpad-program/pkg/oracle"
)

// forUpdate takes a row lock where the dialect has one. SQLite has no FOR
// UPDATE; its writers serialize on the connection instead.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// Emitter receives settlement events after an operation commits. Wired to the
// RabbitMQ publisher and the websocket hub; a nil-safe no-op in tests.
type Emitter interface {
	Emit(event string, payload interface{})
}

// Service executes the launchpad operations. Every public method runs as one
// gorm transaction: either the whole operation commits or nothing does. The
// clock is read once per operation and threaded through, never re-read.
type Service struct {
	db       *gorm.DB
	verifier oracle.Verifier
	venue    amm.Venue
	emitter  Emitter

	// now is swappable in tests; operations call it exactly once
	now func() int64
}

func NewService(db *gorm.DB, verifier oracle.Verifier, venue amm.Venue, emitter Emitter) *Service {
	return &Service{
		db:       db,
		verifier: verifier,
		venue:    venue,
		emitter:  emitter,
		now:      func() int64 { return time.Now().Unix() },
	}
}

// WithClock overrides the operation clock. Test hook.
func (s *Service) WithClock(now func() int64) *Service {
	s.now = now
	return s
}

func (s *Service) emit(event string, payload interface{}) {
	if s.emitter != nil {
		s.emitter.Emit(event, payload)
	}
}

func (s *Service) DB() *gorm.DB {
	return s.db
}

// Now reads the operation clock, exposed for read-side views that report
// time-dependent state.
func (s *Service) Now() int64 {
	return s.now()
}
