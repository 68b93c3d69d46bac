package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/bastiangx/randomname/internal/logger"
	"github.com/bastiangx/randomname/internal/utils"
	"github.com/bastiangx/randomname/pkg/config"
	"github.com/bastiangx/randomname/pkg/phrase"
	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for phrase generation
type Server struct {
	gen    phrase.IGenerator
	limits config.ServerConfig
	log    *log.Logger

	dec *msgpack.Decoder

	mu  sync.Mutex
	out *bufio.Writer
	enc *msgpack.Encoder

	requests int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(gen phrase.IGenerator, limits config.ServerConfig) *Server {
	return NewServerIO(gen, limits, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over arbitrary streams.
func NewServerIO(gen phrase.IGenerator, limits config.ServerConfig, r io.Reader, w io.Writer) *Server {
	if limits.MaxCount <= 0 {
		limits.MaxCount = config.DefaultConfig().Server.MaxCount
	}
	if limits.MaxTokens <= 0 {
		limits.MaxTokens = config.DefaultConfig().Server.MaxTokens
	}
	out := bufio.NewWriter(w)
	return &Server{
		gen:    gen,
		limits: limits,
		log:    logger.New("server"),
		dec:    msgpack.NewDecoder(bufio.NewReader(r)),
		out:    out,
		enc:    msgpack.NewEncoder(out),
	}
}

// Start signals readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		err := s.dec.Decode(&req)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", fmt.Sprintf("Invalid msgpack request: %v", err), CodeBadRequest, nil)
			return err
		}
		s.requests++
		s.handle(req)
	}
}

// handle dispatches one request and writes exactly one response.
func (s *Server) handle(req Request) {
	start := time.Now()
	if err := s.validate(req); err != nil {
		s.sendError(req.ID, err.Error(), CodeBadRequest, nil)
		return
	}

	var (
		results []string
		err     error
	)
	switch req.Action {
	case "generate", "":
		opts := []phrase.Option{phrase.WithLiterals(req.Literals)}
		if req.Sep != "" {
			opts = append(opts, phrase.WithSeparator(req.Sep))
		}
		if req.Case != "" {
			opts = append(opts, phrase.WithCase(phrase.ParseCase(req.Case)))
		}
		results, err = s.gen.GenerateN(max(req.Count, 1), req.Tokens, opts...)
	case "sample":
		results, err = s.gen.Sample(req.Count, req.Tokens...)
	case "available":
		results, err = s.gen.Available(req.Tokens...)
	case "search":
		if req.Pattern == "" {
			s.sendError(req.ID, "Missing 'p' parameter", CodeBadRequest, nil)
			return
		}
		results, err = s.gen.Search(req.Pattern, req.Tokens...)
	case "reload":
		if err := s.gen.Reload(); err != nil {
			s.fail(req.ID, err)
			return
		}
		s.send(StatusResponse{ID: req.ID, Status: "reloaded"})
		return
	case "stats":
		s.send(Response{ID: req.ID, Stats: s.gen.Stats(), TimeTaken: time.Since(start).Microseconds()})
		return
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
		return
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), CodeBadRequest, nil)
		return
	}
	if err != nil {
		s.fail(req.ID, err)
		return
	}
	elapsed := time.Since(start)
	s.log.Debugf("Took [ %v ] for %s %v", elapsed, req.Action, req.Tokens)
	s.send(Response{
		ID:        req.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) validate(req Request) error {
	if req.Count < 0 || req.Count > s.limits.MaxCount {
		return fmt.Errorf("count must be between 0 and %d", s.limits.MaxCount)
	}
	if len(req.Tokens) > s.limits.MaxTokens {
		return fmt.Errorf("too many tokens: %d (max %d)", len(req.Tokens), s.limits.MaxTokens)
	}
	for _, tok := range req.Tokens {
		if !utils.IsValidToken(tok) {
			return fmt.Errorf("invalid token: %q", tok)
		}
	}
	if req.Pattern != "" && !utils.IsValidToken(req.Pattern) {
		return fmt.Errorf("invalid pattern: %q", req.Pattern)
	}
	return nil
}

// fail maps a generator error onto an error response.
func (s *Server) fail(id string, err error) {
	var unresolved *wordlist.UnresolvedError
	switch {
	case errors.As(err, &unresolved):
		s.sendError(id, err.Error(), CodeNotFound, unresolved.Suggestions)
	case errors.Is(err, wordlist.ErrNotFound), errors.Is(err, wordlist.ErrEmpty):
		s.sendError(id, err.Error(), CodeNotFound, nil)
	case errors.Is(err, wordlist.ErrInvalidValue):
		s.sendError(id, err.Error(), CodeBadRequest, nil)
	default:
		s.log.Errorf("Request %s failed: %v", id, err)
		s.sendError(id, err.Error(), CodeInternal, nil)
	}
}

// send encodes the response and flushes it to the client.
func (s *Server) send(response any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.log.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int, suggestions []string) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code, Suggestions: suggestions})
}
