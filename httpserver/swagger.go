package httpserver

import (
	_ "movielobby/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// @title Movie Lobby API
// @version 1.0
// @description Catalog of streamable movies. Write operations need an ADMIN bearer token.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/swagger/*", echoSwagger.WrapHandler)
}
