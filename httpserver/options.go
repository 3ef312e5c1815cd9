package httpserver

import (
	"errors"

	"movielobby/auth"
	"movielobby/movie"

	"go.uber.org/zap"
)

type Options func(s *Server) error

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if l == nil {
			return errors.New("httpserver: nil logger")
		}
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}

func WithAuthService(svc auth.Service) Options {
	return func(s *Server) error {
		s.AuthService = svc
		return nil
	}
}
