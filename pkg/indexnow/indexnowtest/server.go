// Package indexnowtest provides an in-process IndexNow endpoint for tests.
package indexnowtest

import (
	"encoding/json"
	"errors"
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Request is a submission received by the fake endpoint.
type Request struct {
	ContentType string   `json:"-"`
	Host        string   `json:"host"`
	Key         string   `json:"key"`
	KeyLocation string   `json:"keyLocation"`
	URLList     []string `json:"urlList"`
}

// Server answers every POST with a fixed status and body.
type Server struct {
	URL string

	app      *fiber.App
	ln       net.Listener
	mu       sync.Mutex
	status   int
	body     string
	requests []Request
}

// NewServer starts a fake endpoint on a loopback port. URL points at /indexnow.
func NewServer(status int, body string) (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	s := &Server{
		URL:    "http://" + ln.Addr().String() + "/indexnow",
		status: status,
		body:   body,
		ln:     ln,
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
	}
	s.app.Post("/indexnow", s.handle)

	go func() {
		_ = s.app.Listener(ln)
	}()

	return s, nil
}

func (s *Server) handle(c *fiber.Ctx) error {
	var req Request
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid JSON: " + err.Error())
	}
	req.ContentType = string(c.Request().Header.ContentType())

	s.mu.Lock()
	s.requests = append(s.requests, req)
	status, body := s.status, s.body
	s.mu.Unlock()

	return c.Status(status).SendString(body)
}

// SetResponse changes the reply for subsequent requests.
func (s *Server) SetResponse(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

// Requests returns the submissions received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Close stops the server. Closing the listener as well ends the serve
// goroutine even when it has not started accepting yet.
func (s *Server) Close() error {
	err := s.app.Shutdown()
	if cerr := s.ln.Close(); err == nil && cerr != nil && !errors.Is(cerr, net.ErrClosed) {
		err = cerr
	}
	return err
}
