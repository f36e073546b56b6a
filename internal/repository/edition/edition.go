// Package edition keeps a ledger of report editions the scraper has already
// fetched, so reruns do not download them again.
package edition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/mskmysht/covid-treatment-sickbed/internal/entity"
	"github.com/mskmysht/covid-treatment-sickbed/internal/util"
)

const (
	// HASH. report id -> "<timestamp> <relative path>"
	keyEditions = "sickbed:editions"

	timestampLayout = "2006-01-02 15:04 MST"
)

type editionRepository struct {
	cl  *redis.Client
	log *slog.Logger
}

func NewEditionRepository(cl *redis.Client, log *slog.Logger) *editionRepository {
	return &editionRepository{
		cl:  cl,
		log: log.With(slog.String("item", "EditionRepository")),
	}
}

func (r *editionRepository) Seen(ctx context.Context, report *entity.Report) (bool, error) {
	seen, err := r.cl.HExists(ctx, keyEditions, util.ReportID(report.Path)).Result()
	if err != nil {
		return false, fmt.Errorf("cannot check edition: %w", err)
	}

	return seen, nil
}

func (r *editionRepository) Mark(ctx context.Context, report *entity.Report) error {
	value := fmt.Sprintf("%s %s", report.Timestamp.Format(timestampLayout), report.Path)
	if err := r.cl.HSet(ctx, keyEditions, util.ReportID(report.Path), value).Err(); err != nil {
		return fmt.Errorf("cannot mark edition: %w", err)
	}

	return nil
}
