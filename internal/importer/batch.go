// Package importer owns the import workflow: the editable draft batch,
// the per-user import sessions behind the form, and the submission
// orchestrator that turns a validated batch into create+publish calls
// against the content store.
package importer

import "github.com/vgarchive/server/internal/catalog"

// DraftBatch is the ordered, editable collection of draft games inside
// one import session. Writes never validate; validation happens once,
// at submit time.
type DraftBatch struct {
	drafts []catalog.DraftGame
}

// NewBatch creates a batch seeded from CSV ingestion, or empty for
// manual entry.
func NewBatch(drafts []catalog.DraftGame) *DraftBatch {
	return &DraftBatch{drafts: drafts}
}

// Len returns the number of drafts in the batch.
func (b *DraftBatch) Len() int { return len(b.drafts) }

// At returns the draft at index i.
func (b *DraftBatch) At(i int) (catalog.DraftGame, bool) {
	if i < 0 || i >= len(b.drafts) {
		return catalog.DraftGame{}, false
	}
	return b.drafts[i], true
}

// AddBlank appends one empty draft. Always succeeds.
func (b *DraftBatch) AddBlank() {
	b.drafts = append(b.drafts, catalog.DraftGame{})
}

// RemoveAt removes the draft at index i. Out-of-range indices are a
// no-op. Removing the last draft is allowed; the batch may transiently
// be empty, submission is what requires at least one.
func (b *DraftBatch) RemoveAt(i int) {
	if i < 0 || i >= len(b.drafts) {
		return
	}
	b.drafts = append(b.drafts[:i], b.drafts[i+1:]...)
}

// UpdateField replaces one field's value in place. Out-of-range indices
// and unknown field names are a no-op.
func (b *DraftBatch) UpdateField(i int, field, value string) {
	if i < 0 || i >= len(b.drafts) {
		return
	}
	b.drafts[i].SetField(field, value)
}

// Snapshot returns a copy of the drafts in order. Mutating the copy
// does not affect the batch.
func (b *DraftBatch) Snapshot() []catalog.DraftGame {
	out := make([]catalog.DraftGame, len(b.drafts))
	copy(out, b.drafts)
	return out
}
