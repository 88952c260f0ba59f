package prompts

import "context"

// Store persists prompt override snapshots. Implementations load the full
// snapshot on every read and replace it wholesale on every write; concurrent
// writers are last-writer-wins.
type Store interface {
	// Load returns the current snapshot. A missing or corrupt backing store
	// yields an empty snapshot, not an error; corruption must never block reads.
	Load(ctx context.Context) (Snapshot, error)
	// Save replaces the persisted snapshot.
	Save(ctx context.Context, snap Snapshot) error
}
