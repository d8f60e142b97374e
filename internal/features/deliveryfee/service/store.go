package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"delivery-fees/internal/features/deliveryfee/domain"
)

// DefaultHistorySize is how many recently published snapshots stay quotable by version.
const DefaultHistorySize = 32

// CommitHook runs under the writer lock after a new snapshot has been
// validated and before it becomes current. Returning an error aborts the write.
type CommitHook func(ctx context.Context, next domain.DeliveryFeeParameters) error

// StoreOption configures a ParameterStore.
type StoreOption func(*ParameterStore)

// WithCommitHook installs a hook invoked on every Update and Reset.
func WithCommitHook(hook CommitHook) StoreOption {
	return func(s *ParameterStore) {
		s.hook = hook
	}
}

// WithHistorySize sets how many published snapshots Lookup can resolve.
func WithHistorySize(n int) StoreOption {
	return func(s *ParameterStore) {
		if n > 0 {
			s.historySize = n
		}
	}
}

// ParameterStore holds the current delivery fee parameters.
//
// Readers load an immutable snapshot through an atomic pointer and never wait
// for writers. Writers are serialized by mu and publish a fresh snapshot with a
// single pointer swap, so a reader sees either the old or the new snapshot in full.
//
// Recently published snapshots are kept by version so a checkout session can
// keep quoting against the one it started with.
type ParameterStore struct {
	current atomic.Pointer[domain.VersionedParameters]
	mu      sync.Mutex
	hook    CommitHook

	historyMu   sync.RWMutex
	history     map[string]domain.DeliveryFeeParameters
	order       []string
	historySize int
}

// NewParameterStore creates a store initialized to the default parameters.
func NewParameterStore(opts ...StoreOption) *ParameterStore {
	s := &ParameterStore{
		history:     make(map[string]domain.DeliveryFeeParameters),
		historySize: DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.publish(domain.DefaultParameters())
	return s
}

// Current returns a copy of the current snapshot.
func (s *ParameterStore) Current() domain.DeliveryFeeParameters {
	return s.current.Load().DeliveryFeeParameters
}

// CurrentVersioned returns the current snapshot with its version, read in one load.
func (s *ParameterStore) CurrentVersioned() domain.VersionedParameters {
	return *s.current.Load()
}

// Lookup resolves a version published by this store. Versions that were
// never published, or fell out of the history, are not found.
func (s *ParameterStore) Lookup(version string) (domain.DeliveryFeeParameters, bool) {
	if cur := s.current.Load(); cur.Version == version {
		return cur.DeliveryFeeParameters, true
	}

	s.historyMu.RLock()
	defer s.historyMu.RUnlock()
	p, ok := s.history[version]
	return p, ok
}

// Update merges patch onto the current snapshot and publishes the result.
// On a validation or hook error the current snapshot is left untouched.
func (s *ParameterStore) Update(ctx context.Context, patch domain.ParameterPatch) (domain.DeliveryFeeParameters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.current.Load().Apply(patch)
	if err != nil {
		return domain.DeliveryFeeParameters{}, err
	}
	if err := s.commit(ctx, next); err != nil {
		return domain.DeliveryFeeParameters{}, err
	}
	return next, nil
}

// Reset publishes the default parameters. It can only fail when a commit hook rejects the write.
func (s *ParameterStore) Reset(ctx context.Context) (domain.DeliveryFeeParameters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defaults := domain.DefaultParameters()
	if err := s.commit(ctx, defaults); err != nil {
		return domain.DeliveryFeeParameters{}, err
	}
	return defaults, nil
}

// Load installs a previously persisted snapshot without invoking the commit hook.
func (s *ParameterStore) Load(params domain.DeliveryFeeParameters) error {
	if err := params.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.publish(params)
	return nil
}

// commit must be called with mu held.
func (s *ParameterStore) commit(ctx context.Context, next domain.DeliveryFeeParameters) error {
	if s.hook != nil {
		if err := s.hook(ctx, next); err != nil {
			return fmt.Errorf("store: commit rejected: %w", err)
		}
	}
	s.publish(next)
	return nil
}

// publish records next in the history and makes it current.
func (s *ParameterStore) publish(next domain.DeliveryFeeParameters) {
	v := next.Versioned()

	s.historyMu.Lock()
	if _, ok := s.history[v.Version]; ok {
		for i, existing := range s.order {
			if existing == v.Version {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.history[v.Version] = next
	s.order = append(s.order, v.Version)
	for len(s.order) > s.historySize {
		delete(s.history, s.order[0])
		s.order = s.order[1:]
	}
	s.historyMu.Unlock()

	s.current.Store(&v)
}
