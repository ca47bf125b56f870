// Package memory provides in-memory implementations of the store ports backed
// by hashicorp/go-memdb. Each store owns one MemDB with a single table.
// go-memdb admits one write transaction at a time. Stores keep their ID
// counter under that lock, so assignment is race-free and O(1); readers work
// on immutable snapshots.
//
// Stored records are private copies. Callers receive copies too, so mutating
// a returned entity never changes the store.
package memory

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"
)

// indexID is the primary index go-memdb requires on every table.
const indexID = "id"

// newDB builds a single-table MemDB. The table must declare an "id" index.
func newDB(table string, indexes map[string]*memdb.IndexSchema) (*memdb.MemDB, error) {
	db, err := memdb.NewMemDB(&memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			table: {Name: table, Indexes: indexes},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s table: %w", table, err)
	}
	return db, nil
}

// collect drains a result iterator, converting each row with conv.
func collect[T any](it memdb.ResultIterator, conv func(any) T) []T {
	out := make([]T, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		out = append(out, conv(obj))
	}
	return out
}

// healthCheck opens and discards a read transaction on table, so a store
// reports unhealthy only if its database is unusable or ctx is done.
func healthCheck(ctx context.Context, db *memdb.MemDB, table string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	txn := db.Txn(false)
	defer txn.Abort()
	if _, err := txn.Get(table, indexID); err != nil {
		return fmt.Errorf("%s: %w", table, err)
	}
	return nil
}
