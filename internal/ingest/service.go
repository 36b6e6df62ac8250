package ingest

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service is the entry point handlers use: validate a whole upload, then run
// the batch. Validation errors are batch-fatal and returned as the error;
// row-level failures are inside the returned BatchResult.
type Service struct {
	coordinator *Coordinator
}

func NewService(store Store, logger *logrus.Logger) *Service {
	var entry *logrus.Entry
	if logger != nil {
		entry = logger.WithField("component", "ingest")
	}
	return &Service{
		coordinator: NewCoordinator(NewRowProcessor(store), entry),
	}
}

// ImportCSV ingests raw CSV text for one owner.
func (s *Service) ImportCSV(ctx context.Context, ownerID uuid.UUID, text string) (*BatchResult, error) {
	rows, err := Validate(text)
	if err != nil {
		return nil, err
	}
	return s.coordinator.Run(ctx, ownerID, rows), nil
}

// ImportRecords ingests a pre-tokenized header and data records. Used by the
// XLSX upload path, which has no CSV text to parse.
func (s *Service) ImportRecords(ctx context.Context, ownerID uuid.UUID, header []string, records [][]string) (*BatchResult, error) {
	rows, err := ValidateRecords(header, records)
	if err != nil {
		return nil, err
	}
	return s.coordinator.Run(ctx, ownerID, rows), nil
}
