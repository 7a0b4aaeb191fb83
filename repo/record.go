package repo

import (
	"context"
	"errors"
)

// ErrRecordNotFound indicates the requested record does not exist in
// the repository. Use errors.Is to test for it.
var ErrRecordNotFound = errors.New("record not found")

// Record is a single stored record with its addressing metadata.
type Record struct {
	// URI is the full at:// address of the record.
	URI string `json:"uri"`

	// CID identifies the stored content. It is opaque to this package;
	// callers must not parse it.
	CID string `json:"cid"`

	// Collection is the collection the record lives in.
	Collection string `json:"collection"`

	// RKey is the record key within the collection.
	RKey string `json:"rkey"`

	// Value is the record payload. The $type field, when present,
	// names the record's lexicon type.
	Value map[string]any `json:"value"`
}

// RecordURI assembles the canonical at:// address of a record.
func RecordURI(did, collection, rkey string) string {
	return "at://" + did + "/" + collection + "/" + rkey
}

// ListOptions controls a single ListRecords page.
type ListOptions struct {
	// Limit caps the number of records returned. Zero or negative
	// selects the store default.
	Limit int

	// Cursor resumes listing after a previous page. Empty starts from
	// the beginning.
	Cursor string
}

// Page is one page of listed records.
type Page struct {
	// Records holds the page contents in the store's stable order.
	Records []*Record

	// Cursor resumes the listing. It is empty on the final page.
	Cursor string
}

// Store is the repository collaborator the migration engine drives.
// Reads may target any account; writes and deletes always apply to the
// account the store is bound to.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// GetRecord fetches a single record from the given account's
	// repository. It returns ErrRecordNotFound when the record does
	// not exist.
	GetRecord(ctx context.Context, did, collection, rkey string) (*Record, error)

	// PutRecord writes value under the given collection and record
	// key in the bound account's repository, overwriting any existing
	// record, and returns the stored record with its address.
	PutRecord(ctx context.Context, collection, rkey string, value map[string]any) (*Record, error)

	// DeleteRecord removes a record from the bound account's
	// repository. Deleting an absent record is not an error.
	DeleteRecord(ctx context.Context, collection, rkey string) error

	// ListRecords returns one page of records from the given account's
	// collection. An empty page with no cursor means the collection is
	// exhausted or absent.
	ListRecords(ctx context.Context, did, collection string, opts ListOptions) (*Page, error)
}
