package m_cart

import (
	"time"

	"cloud.google.com/go/spanner"
)

// UpsertMutation builds an InsertOrUpdate mutation for the snapshot row.
// The snapshot is a whole-value replace: last writer wins, no merge.
func UpsertMutation(cartKey, payload string, updatedAt time.Time) *spanner.Mutation {
	return spanner.InsertOrUpdate(TableName,
		[]string{ColCartKey, ColPayload, ColUpdatedAt},
		[]interface{}{cartKey, payload, updatedAt},
	)
}
