package importer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vgarchive/server/internal/catalog"
	"github.com/vgarchive/server/internal/hygraph"
)

// DefaultSessionTTL is how long an idle import session is kept before
// it is swept.
var DefaultSessionTTL = 30 * time.Minute

// Compensator is the extension point for cleaning up records that were
// created before a batch failed part-way. The default is none: a failed
// batch leaves its already-created records in place and the draft batch
// intact for retry.
type Compensator func(ctx context.Context, created []catalog.Game) error

// ValidationFailed reports a submit attempt rejected before any remote
// call was made. The violations map back to records and fields so the
// form can render them inline.
type ValidationFailed struct {
	Violations catalog.BatchViolations
}

func (e *ValidationFailed) Error() string {
	n := len(e.Violations.Records)
	if n == 0 {
		return "validation failed: batch rules"
	}
	return fmt.Sprintf("validation failed for %d record(s)", n)
}

// Outcome is one record's saga result: the draft it came from and
// either the created game or the error that stopped it.
type Outcome struct {
	Draft   catalog.DraftGame
	Created *catalog.Game
	Err     error
}

// Result is the orchestrator's report for one submission.
type Result struct {
	Created  []catalog.Game // in draft order, full success only
	Outcomes []Outcome      // per-record saga outcomes, always populated
}

// Service coordinates CSV ingestion, draft batches and submission
// against the content store.
type Service struct {
	api        hygraph.API
	sessionTTL time.Duration
	compensate Compensator

	mu       sync.RWMutex
	sessions map[string]*Session
	stop     chan struct{}
}

// Option configures a Service.
type Option func(*Service)

// WithSessionTTL overrides the idle session lifetime.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) { s.sessionTTL = ttl }
}

// WithCompensator installs a cleanup hook for partially-failed batches.
func WithCompensator(c Compensator) Option {
	return func(s *Service) { s.compensate = c }
}

// NewService creates the import service backed by the given content API.
func NewService(api hygraph.API, opts ...Option) *Service {
	s := &Service{
		api:        api,
		sessionTTL: DefaultSessionTTL,
		sessions:   make(map[string]*Session),
		stop:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.sweep(s.stop)
	return s
}

// Close stops the session sweeper.
func (s *Service) Close() {
	close(s.stop)
}

// Ingest parses uploaded CSV content and opens a session holding the
// resulting drafts. Parse and batch-size failures surface to the caller
// and leave no session behind.
func (s *Service) Ingest(consoleSlug string, data []byte) (*Session, error) {
	drafts, err := catalog.ParseGamesCSV(data)
	if err != nil {
		return nil, err
	}
	return s.StartSession(consoleSlug, drafts), nil
}

// Submit validates the batch and, if everything passes, runs one
// create-then-publish saga per record, all records concurrently.
//
// Per record, publish is only issued after its own create succeeds;
// across records there is no ordering. Any record failure fails the
// whole submission without rolling back records that already succeeded,
// and the draft batch is left intact so the user can retry. On full
// success the session is discarded.
func (s *Service) Submit(ctx context.Context, session *Session, existingUPCs map[string]bool) (*Result, error) {
	drafts := session.Drafts()

	// The ceiling holds here independently of CSV parsing; a batch can
	// also grow through manual entry.
	if len(drafts) > catalog.MaxBatchSize {
		return nil, catalog.ErrTooManyRecords
	}

	violations := catalog.ValidateBatch(drafts, existingUPCs)
	if !violations.OK() {
		session.setViolations(violations)
		return nil, &ValidationFailed{Violations: violations}
	}
	session.setViolations(catalog.BatchViolations{})

	result := &Result{Outcomes: make([]Outcome, len(drafts))}
	for i := range result.Outcomes {
		result.Outcomes[i].Draft = drafts[i]
	}

	var g errgroup.Group
	for i, draft := range drafts {
		g.Go(func() error {
			created, err := s.createAndPublish(ctx, session.ConsoleSlug, draft)
			if err != nil {
				result.Outcomes[i].Err = err
				return err
			}
			result.Outcomes[i].Created = created
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		var created []catalog.Game
		for _, o := range result.Outcomes {
			if o.Created != nil {
				created = append(created, *o.Created)
			}
		}
		slog.Warn("import submission failed",
			"console", session.ConsoleSlug,
			"batch_size", len(drafts),
			"succeeded_before_failure", len(created),
			"error", err,
		)
		if s.compensate != nil && len(created) > 0 {
			if cerr := s.compensate(ctx, created); cerr != nil {
				slog.Error("compensation failed", "error", cerr)
			}
		}
		return result, err
	}

	result.Created = make([]catalog.Game, len(drafts))
	for i, o := range result.Outcomes {
		result.Created[i] = *o.Created
	}

	s.Cancel(session.ID)

	slog.Info("import submission succeeded",
		"console", session.ConsoleSlug,
		"created", len(result.Created),
	)
	return result, nil
}

// SubmitDrafts runs the same validation and saga over a caller-provided
// batch, for the JSON bulk endpoint where no session exists.
func (s *Service) SubmitDrafts(ctx context.Context, consoleSlug string, drafts []catalog.DraftGame, existingUPCs map[string]bool) (*Result, error) {
	session := s.StartSession(consoleSlug, drafts)
	defer s.Cancel(session.ID)
	return s.Submit(ctx, session, existingUPCs)
}

// createAndPublish is the two-phase saga for one record.
func (s *Service) createAndPublish(ctx context.Context, consoleSlug string, draft catalog.DraftGame) (*catalog.Game, error) {
	input := hygraph.CreateGameInput{
		Title:       draft.Title,
		Genre:       draft.Genre,
		UPC:         draft.UPC,
		Publisher:   draft.Publisher,
		Developer:   draft.Developer,
		Rating:      draft.Rating,
		Release:     catalog.NormalizeDate(draft.Release),
		Description: draft.Description,
		ConsoleSlug: consoleSlug,
		Slug:        catalog.DeriveSlug(draft.Title, consoleSlug),
	}

	created, err := s.api.CreateGame(ctx, input)
	if err != nil {
		return nil, &catalog.RemoteError{
			Op:       "create",
			Title:    draft.Title,
			Messages: hygraph.ErrorMessages(err),
		}
	}

	if err := s.api.PublishGame(ctx, created.ID); err != nil {
		return nil, &catalog.RemoteError{
			Op:       "publish",
			Title:    draft.Title,
			Messages: hygraph.ErrorMessages(err),
		}
	}

	return created, nil
}
