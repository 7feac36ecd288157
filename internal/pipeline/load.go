package pipeline

import (
	"context"

	"github.com/couchcryptid/mrms-cf-etl/internal/domain"
)

// FanoutLoader loads each batch into every loader in order and stops at the
// first failure. Later sinks never see a batch an earlier sink rejected.
type FanoutLoader []BatchLoader

func (f FanoutLoader) LoadBatch(ctx context.Context, grids []domain.ConvertedGrid) error {
	for _, l := range f {
		if err := l.LoadBatch(ctx, grids); err != nil {
			return err
		}
	}
	return nil
}
