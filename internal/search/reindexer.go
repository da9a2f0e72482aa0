package search

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/yamdb-team/yamdb-api/internal/repository"
)

// Reindexer rebuilds the titles index on a cron schedule so the engine
// converges with the database even when a live indexing call was missed.
type Reindexer struct {
	cron   *cron.Cron
	index  TitleIndex
	titles repository.TitleRepository
	spec   string
}

func NewReindexer(index TitleIndex, titles repository.TitleRepository, spec string) *Reindexer {
	return &Reindexer{
		cron:   cron.New(),
		index:  index,
		titles: titles,
		spec:   spec,
	}
}

func (r *Reindexer) Start() {
	if r.spec == "" {
		log.Println("Title reindexer disabled (no schedule configured)")
		return
	}

	if _, err := r.cron.AddFunc(r.spec, func() {
		if err := r.Run(context.Background()); err != nil {
			log.Printf("Title reindex failed: %v", err)
		}
	}); err != nil {
		log.Printf("Failed to schedule title reindex: %v", err)
		return
	}

	r.cron.Start()
	log.Printf("Title reindexer scheduled with cron: %s", r.spec)
}

func (r *Reindexer) Stop() {
	r.cron.Stop()
}

// Run pushes every title into the index in one batch.
func (r *Reindexer) Run(ctx context.Context) error {
	titles, err := r.titles.FindAll(ctx, repository.TitleFilter{})
	if err != nil {
		return err
	}

	if err := r.index.IndexAll(titles); err != nil {
		return err
	}

	log.Printf("Reindexed %d titles", len(titles))
	return nil
}
