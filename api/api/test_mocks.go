/* test_mocks.go
 * Contains mock structures for testing the API package and its consumers
 */

package api

import (
	"context"
	"fmt"
	"sync"
	"valorant-bot/api/external"
	"valorant-bot/api/session"
	"valorant-bot/api/shared"
	"valorant-bot/api/store"

	"github.com/rs/zerolog"
)

// errPlayerNotFound mirrors the error the real client returns for a 404
var errPlayerNotFound = fmt.Errorf("%w: status 404", shared.ErrPlayerNotFound)

// MockFetcher implements MatchFetcher for testing
type MockFetcher struct {
	mu sync.Mutex

	// Batches maps "name#tag" (as typed) to the batch returned for that player
	Batches map[string][]external.MatchRecord
	// ErrorToReturn allows tests to simulate API failures
	ErrorToReturn error

	// Calls records every lookup made
	Calls []MockCall
}

// MockCall is one recorded FetchMatches call
type MockCall struct {
	Region string
	Name   string
	Tag    string
}

// NewMockFetcher creates a MockFetcher with no players
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{Batches: make(map[string][]external.MatchRecord)}
}

// FetchMatches mock implementation. Unknown players return ErrPlayerNotFound like a 404 would
func (m *MockFetcher) FetchMatches(ctx context.Context, region string, name string, tag string) ([]external.MatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Region: region, Name: name, Tag: tag})
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	batch, ok := m.Batches[name+"#"+tag]
	if !ok {
		return nil, errPlayerNotFound
	}
	return batch, nil
}

// CallCount returns the number of FetchMatches calls made
func (m *MockFetcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockStore records audit entries in memory
type MockStore struct {
	mu      sync.Mutex
	Records []store.LookupRecord
	// ErrorToReturn allows tests to simulate database failures
	ErrorToReturn error
}

func (m *MockStore) RecordLookup(ctx context.Context, record store.LookupRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ErrorToReturn != nil {
		return m.ErrorToReturn
	}
	m.Records = append(m.Records, record)
	return nil
}

func (m *MockStore) Close(ctx context.Context) error {
	return nil
}

// Outcomes returns the recorded outcomes in order
func (m *MockStore) Outcomes() []store.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	var outcomes []store.Outcome
	for _, r := range m.Records {
		outcomes = append(outcomes, r.Outcome)
	}
	return outcomes
}

// NewMockAPI creates an API backed by the given mocks and a fresh session registry
func NewMockAPI(fetcher *MockFetcher, st *MockStore) *API {
	if st == nil {
		return NewAPI(fetcher, nil, session.NewRegistry(), zerolog.Nop())
	}
	return NewAPI(fetcher, st, session.NewRegistry(), zerolog.Nop())
}
