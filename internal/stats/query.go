package stats

import (
	"time"

	"github.com/jakekohl/portfolio/internal/model"
	"github.com/jakekohl/portfolio/pkg/log"
)

// View is the read model served to consumers: one year of contributions plus
// the catalogue of available years and the freshness timestamp.
type View struct {
	Username           string
	Year               int
	Years              []int
	Contributions      []model.ContributionDay
	TotalContributions int
	LastUpdated        time.Time
}

// QueryService is the read-only surface over the contribution store. Safe
// for unlimited concurrent use.
type QueryService struct {
	Logger log.Logger
	Store  Store
}

func NewQueryService(logger log.Logger, store Store) (*QueryService, error) {
	return &QueryService{
		Logger: logger,
		Store:  store,
	}, nil
}

// Query returns the view for a year. A nil year selects the latest available
// year. ErrNotFound when the store is empty or the year was never ingested.
func (q *QueryService) Query(year *int) (*View, error) {
	years, err := q.Store.Years()
	if err != nil {
		return nil, err
	}
	if len(years) == 0 {
		return nil, ErrNotFound
	}

	selected := years[len(years)-1]
	if year != nil {
		selected = *year
	}

	rec, err := q.Store.GetYear(selected)
	if err != nil {
		return nil, err
	}

	return &View{
		Username:           rec.Username,
		Year:               rec.Year,
		Years:              years,
		Contributions:      rec.Contributions,
		TotalContributions: rec.TotalContributions,
		LastUpdated:        rec.LastUpdated,
	}, nil
}
