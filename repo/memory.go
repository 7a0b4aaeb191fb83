package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// defaultPageLimit is the page size used when ListOptions.Limit is
// zero or negative.
const defaultPageLimit = 50

// MemoryStore is an in-memory Store with deterministic ordering.
// Records list in lexicographic record-key order and cursors are
// stable across interleaved writes, so paginated walks behave the same
// on every run. Writes apply to the account given at construction;
// reads may target any account.
type MemoryStore struct {
	mu    sync.RWMutex
	owner string
	repos map[string]map[string]map[string]*Record
	seq   int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store whose writes apply to owner.
func NewMemoryStore(owner string) *MemoryStore {
	return &MemoryStore{
		owner: owner,
		repos: make(map[string]map[string]map[string]*Record),
	}
}

// Owner returns the account writes apply to.
func (s *MemoryStore) Owner() string {
	return s.owner
}

// GetRecord fetches a single record. It returns ErrRecordNotFound when
// the account, collection, or record key does not exist.
func (s *MemoryStore) GetRecord(ctx context.Context, did, collection, rkey string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.repos[did][collection][rkey]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", collection, rkey, ErrRecordNotFound)
	}

	return cloneRecord(rec), nil
}

// PutRecord writes value under collection and rkey in the owner's
// repository. The stored payload is a deep copy, so the caller's map
// stays independent of the store. Every write gets a fresh CID.
func (s *MemoryStore) PutRecord(ctx context.Context, collection, rkey string, value map[string]any) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	repo := s.repos[s.owner]
	if repo == nil {
		repo = make(map[string]map[string]*Record)
		s.repos[s.owner] = repo
	}
	coll := repo[collection]
	if coll == nil {
		coll = make(map[string]*Record)
		repo[collection] = coll
	}

	s.seq++
	rec := &Record{
		URI:        RecordURI(s.owner, collection, rkey),
		CID:        fmt.Sprintf("memcid-%06d", s.seq),
		Collection: collection,
		RKey:       rkey,
		Value:      CloneValue(value),
	}
	coll[rkey] = rec

	return cloneRecord(rec), nil
}

// DeleteRecord removes a record from the owner's repository. Deleting
// an absent record is a no-op.
func (s *MemoryStore) DeleteRecord(ctx context.Context, collection, rkey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if coll := s.repos[s.owner][collection]; coll != nil {
		delete(coll, rkey)
	}

	return nil
}

// ListRecords returns one page of records in lexicographic record-key
// order. The cursor names the last key returned; the next page resumes
// strictly after it, so a key deleted between pages does not derail
// the walk.
func (s *MemoryStore) ListRecords(ctx context.Context, did, collection string, opts ListOptions) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	coll := s.repos[did][collection]
	keys := make([]string, 0, len(coll))
	for k := range coll {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if opts.Cursor != "" {
		start = sort.SearchStrings(keys, opts.Cursor)
		if start < len(keys) && keys[start] == opts.Cursor {
			start++
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	end := min(start+limit, len(keys))

	page := &Page{Records: make([]*Record, 0, end-start)}
	for _, k := range keys[start:end] {
		page.Records = append(page.Records, cloneRecord(coll[k]))
	}
	if end < len(keys) {
		page.Cursor = keys[end-1]
	}

	return page, nil
}

// cloneRecord copies a record so callers never alias store internals.
func cloneRecord(r *Record) *Record {
	out := *r
	out.Value = CloneValue(r.Value)
	return &out
}
