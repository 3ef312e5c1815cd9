package httpserver

import (
	"net/http"

	"movielobby/errs"
	"movielobby/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes() {
	s.Router.GET("/movies", s.handleListMovies)
	s.Router.GET("/search", s.handleSearchMovies)
	s.Router.POST("/movies", s.handleAddMovie, s.requireAdmin)
	s.Router.PUT("/movies/:id", s.handleUpdateMovie, s.requireAdmin)
	s.Router.DELETE("/movies/:id", s.handleDeleteMovie, s.requireAdmin)
}

// handleListMovies godoc
// @Summary List Movies
// @Description List every movie in the lobby
// @Tags movies
// @Produce json
// @Success 200 {array} movie.Movie
// @Failure 500 {object} ErrorResponse
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	movies, err := s.MovieService.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movies)
}

// handleSearchMovies godoc
// @Summary Search Movies
// @Description Case-insensitive substring search over title and genre. An empty query returns every movie.
// @Tags movies
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} movie.Movie
// @Failure 500 {object} ErrorResponse
// @Router /search [get]
func (s *Server) handleSearchMovies(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	results, err := s.MovieService.SearchMovies(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, results)
}

// handleAddMovie godoc
// @Summary Add Movie
// @Description Add a movie; the id is assigned by the server
// @Tags movies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body CreateMovieRequest true "Movie"
// @Success 201 {object} movie.Movie
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies [post]
func (s *Server) handleAddMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	var req CreateMovieRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody
	}

	created, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
	if err != nil {
		return err
	}

	claims, _ := claimsFrom(c)
	s.Logger.Infow("movie added", "movie_id", created.ID, "user_id", claims.UserID)
	return c.JSON(http.StatusCreated, created)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Replace only the fields present in the body
// @Tags movies
// @Accept json
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Param payload body UpdateMovieRequest true "Fields to change"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	id, err := movieID(c)
	if err != nil {
		return err
	}

	var req UpdateMovieRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return errInvalidBody
	}

	if _, err := s.MovieService.UpdateMovie(c.Request().Context(), id, req.ToPatch()); err != nil {
		return err
	}

	claims, _ := claimsFrom(c)
	s.Logger.Infow("movie updated", "movie_id", id, "user_id", claims.UserID)
	return c.NoContent(http.StatusNoContent)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Tags movies
// @Security BearerAuth
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	if s.MovieService == nil {
		return errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
	}

	id, err := movieID(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}

	claims, _ := claimsFrom(c)
	s.Logger.Infow("movie deleted", "movie_id", id, "user_id", claims.UserID)
	return c.NoContent(http.StatusNoContent)
}

func movieID(c echo.Context) (int64, error) {
	var p MovieIDParam
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return 0, movie.ErrInvalidMovieID
	}
	if err := c.Validate(&p); err != nil {
		return 0, movie.ErrInvalidMovieID
	}
	id, err := p.Int64()
	if err != nil {
		return 0, movie.ErrInvalidMovieID
	}
	return id, nil
}
