package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	SearchMovies(ctx context.Context, query string) ([]Movie, error)
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, id int64, p Patch) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type Repository interface {
	List(ctx context.Context) ([]Movie, error)
	Search(ctx context.Context, query string) ([]Movie, error)
	Create(ctx context.Context, m Movie) (Movie, error)
	Update(ctx context.Context, id int64, p Patch) (Movie, error)
	Delete(ctx context.Context, id int64) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.List(ctx)
}

// SearchMovies matches query against title and genre, ignoring case.
// An empty query matches every movie.
func (uc *Usecase) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	return uc.r.Search(ctx, query)
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	m.ID = 0
	return uc.r.Create(ctx, m)
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id int64, p Patch) (Movie, error) {
	if id <= 0 {
		return Movie{}, ErrMovieNotFound
	}
	return uc.r.Update(ctx, id, p)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrMovieNotFound
	}
	return uc.r.Delete(ctx, id)
}
