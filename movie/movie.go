package movie

import "movielobby/errs"

var (
	ErrMovieNotFound  = errs.Errorf(errs.ENOTFOUND, "Movie does not exist")
	ErrInvalidMovieID = errs.Errorf(errs.EINVALID, "Invalid movie id")
)

// Movie is a streamable title in the catalog. ID is assigned by the
// repository and never changes afterwards.
type Movie struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Genre         string  `json:"genre"`
	Rating        float64 `json:"rating"`
	StreamingLink string  `json:"streamingLink"`
}

// Patch is a partial movie update. Nil fields are left untouched.
type Patch struct {
	Title         *string
	Genre         *string
	Rating        *float64
	StreamingLink *string
}

// Apply returns m with every non-nil field of p copied over it.
func (p Patch) Apply(m Movie) Movie {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Genre != nil {
		m.Genre = *p.Genre
	}
	if p.Rating != nil {
		m.Rating = *p.Rating
	}
	if p.StreamingLink != nil {
		m.StreamingLink = *p.StreamingLink
	}
	return m
}
