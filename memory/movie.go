package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"movielobby/movie"
)

// MovieRepository implements movie.Repository over a map guarded by a
// single lock. Records live only as long as the process.
type MovieRepository struct {
	sync.RWMutex
	data   map[int64]movie.Movie
	lastID int64
}

// NewMovieRepository creates an empty repository. The first id handed out is 1.
func NewMovieRepository() *MovieRepository {
	return &MovieRepository{data: map[int64]movie.Movie{}}
}

// List returns every movie ordered by id.
func (r *MovieRepository) List(_ context.Context) ([]movie.Movie, error) {
	r.RLock()
	defer r.RUnlock()
	return r.sorted(func(movie.Movie) bool { return true }), nil
}

// Search returns the movies whose title or genre contains query, ignoring case.
func (r *MovieRepository) Search(_ context.Context, query string) ([]movie.Movie, error) {
	q := strings.ToLower(query)

	r.RLock()
	defer r.RUnlock()
	return r.sorted(func(m movie.Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Genre), q)
	}), nil
}

// Create stores m under the next id. Any id already set on m is ignored.
func (r *MovieRepository) Create(_ context.Context, m movie.Movie) (movie.Movie, error) {
	r.Lock()
	defer r.Unlock()
	r.lastID++
	m.ID = r.lastID
	r.data[m.ID] = m
	return m, nil
}

func (r *MovieRepository) Update(_ context.Context, id int64, p movie.Patch) (movie.Movie, error) {
	r.Lock()
	defer r.Unlock()
	existing, ok := r.data[id]
	if !ok {
		return movie.Movie{}, movie.ErrMovieNotFound
	}
	updated := p.Apply(existing)
	updated.ID = id
	r.data[id] = updated
	return updated, nil
}

func (r *MovieRepository) Delete(_ context.Context, id int64) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[id]; !ok {
		return movie.ErrMovieNotFound
	}
	delete(r.data, id)
	return nil
}

// sorted must be called with the lock held.
func (r *MovieRepository) sorted(keep func(movie.Movie) bool) []movie.Movie {
	res := make([]movie.Movie, 0, len(r.data))
	for _, m := range r.data {
		if keep(m) {
			res = append(res, m)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
