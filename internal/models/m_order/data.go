package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the canonical fields for an order insert.
// The total is stored as numerator/denominator to keep it exact.
func BuildInsertMap(orderID, linesPayload string, itemCount int64,
	totalNum, totalDen int64, placedAt time.Time) map[string]interface{} {

	return map[string]interface{}{
		ColOrderID:          orderID,
		ColLinesPayload:     linesPayload,
		ColItemCount:        itemCount,
		ColTotalNumerator:   totalNum,
		ColTotalDenominator: totalDen,
		ColPlacedAt:         placedAt,
	}
}

// InsertMutation builds a spanner.Insert mutation for an order using a map
// of values keyed by the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}
