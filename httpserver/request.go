package httpserver

import (
	"strconv"

	"movielobby/movie"
)

type CreateMovieRequest struct {
	Title         string  `json:"title"`
	Genre         string  `json:"genre"`
	Rating        float64 `json:"rating"`
	StreamingLink string  `json:"streamingLink"`
}

func (r CreateMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title:         r.Title,
		Genre:         r.Genre,
		Rating:        r.Rating,
		StreamingLink: r.StreamingLink,
	}
}

// UpdateMovieRequest carries only the fields the client sent.
type UpdateMovieRequest struct {
	Title         *string  `json:"title"`
	Genre         *string  `json:"genre"`
	Rating        *float64 `json:"rating"`
	StreamingLink *string  `json:"streamingLink"`
}

func (r UpdateMovieRequest) ToPatch() movie.Patch {
	return movie.Patch{
		Title:         r.Title,
		Genre:         r.Genre,
		Rating:        r.Rating,
		StreamingLink: r.StreamingLink,
	}
}

type MovieIDParam struct {
	ID string `param:"id" validate:"required,number,max=18"`
}

func (p MovieIDParam) Int64() (int64, error) {
	return strconv.ParseInt(p.ID, 10, 64)
}
