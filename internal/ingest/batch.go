package ingest

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RowError records a single failed row, 1-based.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// BatchResult summarizes one upload. It is ephemeral: built during the loop,
// returned once, then discarded. The categories/products/sales counters are
// reserved for created-entity counts; the row loop does not currently
// maintain them.
type BatchResult struct {
	TotalRows  int        `json:"totalRows"`
	Processed  int        `json:"processed"`
	Errors     []RowError `json:"errors"`
	Categories int        `json:"categories"`
	Products   int        `json:"products"`
	Sales      int        `json:"sales"`
}

// Coordinator drives the per-row loop over validated rows for one owner.
type Coordinator struct {
	processor *RowProcessor
	logger    *logrus.Entry
}

func NewCoordinator(processor *RowProcessor, logger *logrus.Entry) *Coordinator {
	return &Coordinator{processor: processor, logger: logger}
}

// Run attempts every row in file order and returns the aggregated result
// unconditionally, even if every row failed. A row failure is isolated: it is
// recorded with its 1-based row number and the loop moves on. Each row's
// persistence effects are already durable when the next row starts; there is
// no batch-wide transaction and no retry.
func (c *Coordinator) Run(ctx context.Context, ownerID uuid.UUID, rows []Row) *BatchResult {
	result := &BatchResult{
		TotalRows: len(rows),
		Errors:    make([]RowError, 0),
	}

	for _, row := range rows {
		_, _, _, err := c.processor.ProcessRow(ctx, ownerID, row)
		if err != nil {
			msg := err.Error()
			if msg == "" {
				msg = "Unknown error"
			}
			result.Errors = append(result.Errors, RowError{Row: row.Line, Error: msg})
			continue
		}
		result.Processed++
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"owner_id":   ownerID,
			"total_rows": result.TotalRows,
			"processed":  result.Processed,
			"failed":     len(result.Errors),
		}).Info("sales import batch completed")
	}
	return result
}
