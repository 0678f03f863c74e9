package httpserver

import (
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Option mutates server settings before the listener starts.
type Option func(*Server)

// App injects a pre-configured fiber app instead of the default one.
func App(app *fiber.App) Option {
	return func(s *Server) {
		s.App = app
	}
}

// Port sets the listen port on all interfaces.
func Port(port string) Option {
	return func(s *Server) {
		s.address = net.JoinHostPort("", port)
	}
}

func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = timeout
	}
}

func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = timeout
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}
