package aggregate

import (
	"crypto/sha1"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Hadedyzz/Lager-Produktivitaet/internal/model"
)

// ResultCache memoizes aggregation results keyed by a structural hash of
// the input table content plus the request parameters. It is a pure
// performance optimization: a recomputation always yields identical
// numeric output for identical inputs, so hits and misses are
// indistinguishable to the caller. Unbounded per session.
type ResultCache struct {
	mu      sync.Mutex
	entries map[string]any
}

// NewResultCache creates an empty cache.
func NewResultCache() *ResultCache {
	return &ResultCache{entries: make(map[string]any)}
}

// WeeklyKey derives the cache key for a weekly request.
func WeeklyKey(tidy []model.TidyRow, target time.Time) string {
	h := sha1.New()
	hashTidy(h, tidy)
	fmt.Fprintf(h, "woche|%s", model.DateKey(target))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

// DailyKey derives the cache key for a daily request. The coefficient
// table is part of the key because the daily join recomputes hours from it.
func DailyKey(tidy []model.TidyRow, coeffs model.CoefficientTable, target time.Time) string {
	h := sha1.New()
	hashTidy(h, tidy)
	fmt.Fprintf(h, "col=%s\n", coeffs.Column)
	tasks := make([]string, 0, len(coeffs.Minutes))
	for task := range coeffs.Minutes {
		tasks = append(tasks, task)
	}
	sort.Strings(tasks)
	for _, task := range tasks {
		fmt.Fprintf(h, "%s=%g\n", task, coeffs.Minutes[task])
	}
	fmt.Fprintf(h, "tag|%s", model.DateKey(target))
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}

func hashTidy(h interface{ Write([]byte) (int, error) }, tidy []model.TidyRow) {
	for _, r := range tidy {
		fmt.Fprintf(h, "%d|%s|%s|%s|%g\n", r.Date.Unix(), r.Shift, r.Team, r.Metric, r.Value)
	}
}

// Weekly returns the memoized weekly aggregation for (tidy, target),
// computing and storing it on a miss. Empty results are cached too.
func (c *ResultCache) Weekly(tidy []model.TidyRow, target time.Time) *model.WeeklyResult {
	key := WeeklyKey(tidy, target)
	if v, ok := c.get(key); ok {
		return v.(*model.WeeklyResult)
	}
	res := AggregateWeekly(tidy, target)
	c.put(key, res)
	return res
}

// Daily returns the memoized daily aggregation for (tidy, coeffs, target).
func (c *ResultCache) Daily(tidy []model.TidyRow, coeffs model.CoefficientTable, target time.Time) *model.DailyResult {
	key := DailyKey(tidy, coeffs, target)
	if v, ok := c.get(key); ok {
		return v.(*model.DailyResult)
	}
	res := AggregateDaily(tidy, coeffs, target)
	c.put(key, res)
	return res
}

// Len reports the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *ResultCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *ResultCache) put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}
