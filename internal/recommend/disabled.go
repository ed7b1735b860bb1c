package recommend

import (
	"context"

	"github.com/sgn7/packmate/pkg/entity"
)

// Disabled is a Recommender that never suggests anything. It is used when
// no API key is configured and in tests.
type Disabled struct{}

func (Disabled) Recommend(_ context.Context, _ entity.CalendarEvent, _ []entity.Item) []int64 {
	return nil
}
