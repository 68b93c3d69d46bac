/*
Package server implements msgpack IPC for phrase generation.

The server reads a stream of msgpack encoded requests from stdin and writes
one msgpack response per request to stdout. Logs go to stderr.

# IPC

Clients send a map with an id, an action and the action's fields. On start
the server writes a status message:

	{"status": "ready"}

Generating phrases uses the tokens and count fields:

	{"id": "req_001", "action": "generate", "t": ["a/colors", "n/cats"], "n": 3}

The server responds with the phrases and the time taken in microseconds:

	{"id": "req_001", "r": ["red-tabby", "blue-persian", "red-siamese"], "c": 3, "t": 41}

Failed requests get an error response. Unknown categories carry the closest
known names:

	{"id": "req_002", "e": "No matching wordlist 'n/catz'. Did you mean 'nouns/cats'?", "c": 404, "s": ["nouns/cats"]}

# Actions

	generate   phrases from tokens; fields t, n, sep, case, lit
	sample     words from the union of categories; fields t, n
	available  category names, optionally filtered by t
	search     words matching glob p, optionally within categories t
	reload     re-read file-backed lists
	stats      tree and cache counters
	health     liveness check
*/
package server

// Request is a single client message.
type Request struct {
	ID       string   `msgpack:"id"`
	Action   string   `msgpack:"action"`
	Tokens   []string `msgpack:"t,omitempty"`
	Count    int      `msgpack:"n,omitempty"`
	Sep      string   `msgpack:"sep,omitempty"`
	Case     string   `msgpack:"case,omitempty"`
	Literals bool     `msgpack:"lit,omitempty"`
	Pattern  string   `msgpack:"p,omitempty"`
}

// Response carries the result of a successful request.
type Response struct {
	ID        string         `msgpack:"id"`
	Results   []string       `msgpack:"r"`
	Count     int            `msgpack:"c"`
	TimeTaken int64          `msgpack:"t"`
	Stats     map[string]int `msgpack:"stats,omitempty"`
}

// StatusResponse answers health, ready and reload messages.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds error information for a failed request.
type ErrorResponse struct {
	ID          string   `msgpack:"id"`
	Error       string   `msgpack:"e"`
	Code        int      `msgpack:"c"`
	Suggestions []string `msgpack:"s,omitempty"`
}

// Error codes, modelled on HTTP status codes.
const (
	CodeBadRequest = 400
	CodeNotFound   = 404
	CodeInternal   = 500
)
