package client

// MutationState is the lifecycle of one optimistic update. A mutation moves
// from idle to pending when the local value is flipped ahead of the server,
// then settles exactly once: committed on success, rolled back on failure.
type MutationState int

const (
	MutationIdle MutationState = iota
	MutationPending
	MutationCommitted
	MutationRolledBack
)

func (s MutationState) String() string {
	switch s {
	case MutationIdle:
		return "idle"
	case MutationPending:
		return "pending"
	case MutationCommitted:
		return "committed"
	case MutationRolledBack:
		return "rolled back"
	}
	return "unknown"
}

// Mutation holds the original value while an optimistic update is in flight
// so a failed request can restore it exactly.
type Mutation[T any] struct {
	state    MutationState
	original T
}

// BeginMutation snapshots the pre-update value and marks the mutation
// pending.
func BeginMutation[T any](original T) *Mutation[T] {
	return &Mutation[T]{state: MutationPending, original: original}
}

// Commit settles the mutation as successful. The snapshot is no longer
// needed.
func (m *Mutation[T]) Commit() {
	if m.state == MutationPending {
		m.state = MutationCommitted
	}
}

// Rollback settles the mutation as failed and returns the value to restore.
func (m *Mutation[T]) Rollback() T {
	if m.state == MutationPending {
		m.state = MutationRolledBack
	}
	return m.original
}

func (m *Mutation[T]) State() MutationState {
	return m.state
}
