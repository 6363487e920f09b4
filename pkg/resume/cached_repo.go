package resume

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/artem13815/resumeparser/pkg/searchcache"
)

// CachedRepository serves repeated searches from a cache and invalidates it on writes.
// Cache failures are logged and never fail the request.
type CachedRepository struct {
	Repository
	cache searchcache.Cache
	ttl   time.Duration
}

func NewCachedRepository(repo Repository, cache searchcache.Cache, ttl time.Duration) *CachedRepository {
	if cache == nil {
		cache = searchcache.Noop{}
	}
	return &CachedRepository{Repository: repo, cache: cache, ttl: ttl}
}

func (r *CachedRepository) Search(ctx context.Context, q SearchQuery) ([]SearchResult, error) {
	key := searchKey(q)
	b, slot, err := r.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached []SearchResult
		if err := json.Unmarshal(b, &cached); err == nil {
			return cached, nil
		}
	case !errors.Is(err, searchcache.ErrMiss):
		log.Printf("searchcache: get %q: %v", key, err)
	}

	res, err := r.Repository.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	// slot was resolved before the query, so a write that invalidated the cache
	// in between leaves this result unreachable
	if slot == "" {
		return res, nil
	}
	if b, err := json.Marshal(res); err == nil {
		if err := r.cache.Set(ctx, slot, b, r.ttl); err != nil {
			log.Printf("searchcache: set %q: %v", key, err)
		}
	}
	return res, nil
}

func (r *CachedRepository) Store(ctx context.Context, p ParsedResume, sourceFile string) (int64, error) {
	id, err := r.Repository.Store(ctx, p, sourceFile)
	if err != nil {
		return 0, err
	}
	r.invalidate(ctx)
	return id, nil
}

func (r *CachedRepository) Delete(ctx context.Context, id int64) (Record, error) {
	rec, err := r.Repository.Delete(ctx, id)
	if err != nil {
		return Record{}, err
	}
	r.invalidate(ctx)
	return rec, nil
}

func (r *CachedRepository) invalidate(ctx context.Context) {
	if err := r.cache.Invalidate(ctx); err != nil {
		log.Printf("searchcache: invalidate: %v", err)
	}
}

// searchKey mirrors the precedence used by the store: skills first, then free text.
func searchKey(q SearchQuery) string {
	if len(q.Skills) > 0 {
		skills := make([]string, len(q.Skills))
		for i, s := range q.Skills {
			skills[i] = strings.ToLower(s)
		}
		return "skills:" + strings.Join(skills, ",")
	}
	if q.Query != "" {
		return "q:" + q.Query
	}
	return "all"
}
