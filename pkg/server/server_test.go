package server

import (
	"bytes"
	"testing"

	"github.com/bastiangx/randomname/pkg/alias"
	"github.com/bastiangx/randomname/pkg/config"
	"github.com/bastiangx/randomname/pkg/phrase"
	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func testGenerator(t *testing.T) *phrase.Generator {
	t.Helper()
	wl, err := wordlist.Coerce(map[string]any{
		"adjectives": map[string][]string{"colors": {"red", "blue"}},
		"nouns":      map[string][]string{"cats": {"siamese", "persian"}},
	}, "", wordlist.WithAliases(alias.New(alias.Builtin)))
	require.NoError(t, err)
	g, err := phrase.New(wl.(*wordlist.Composite), phrase.Options{})
	require.NoError(t, err)
	return g
}

// serve runs the server over the encoded requests and returns a decoder
// positioned after the ready message.
func serve(t *testing.T, limits config.ServerConfig, requests ...any) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range requests {
		require.NoError(t, enc.Encode(r))
	}
	s := NewServerIO(testGenerator(t), limits, &in, &out)
	require.NoError(t, s.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	return dec
}

func TestServerGenerate(t *testing.T) {
	dec := serve(t, config.ServerConfig{},
		Request{ID: "req_001", Action: "generate", Tokens: []string{"a/colors", "n/cats"}, Count: 3, Sep: "_"},
	)
	var resp Response
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "req_001", resp.ID)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Results, 3)
	for _, p := range resp.Results {
		assert.Regexp(t, `^(red|blue)_(siamese|persian)$`, p)
	}
}

func TestServerUnresolvedCarriesSuggestions(t *testing.T) {
	dec := serve(t, config.ServerConfig{},
		Request{ID: "req_002", Action: "generate", Tokens: []string{"n/catz"}},
	)
	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "req_002", resp.ID)
	assert.Equal(t, CodeNotFound, resp.Code)
	assert.Equal(t, []string{"nouns/cats"}, resp.Suggestions)
	assert.Contains(t, resp.Error, "Did you mean 'nouns/cats'?")
}

func TestServerActions(t *testing.T) {
	dec := serve(t, config.ServerConfig{},
		Request{ID: "1", Action: "available", Tokens: []string{"n"}},
		Request{ID: "2", Action: "search", Pattern: "p*"},
		Request{ID: "3", Action: "sample", Tokens: []string{"a/colors"}, Count: 5},
		Request{ID: "4", Action: "health"},
		Request{ID: "5", Action: "stats"},
		Request{ID: "6", Action: "reload"},
	)

	var available Response
	require.NoError(t, dec.Decode(&available))
	assert.Equal(t, []string{"nouns/cats"}, available.Results)

	var search Response
	require.NoError(t, dec.Decode(&search))
	assert.Equal(t, []string{"persian"}, search.Results)

	var sample Response
	require.NoError(t, dec.Decode(&sample))
	assert.ElementsMatch(t, []string{"red", "blue"}, sample.Results)

	var health StatusResponse
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, StatusResponse{ID: "4", Status: "ok"}, health)

	var stats Response
	require.NoError(t, dec.Decode(&stats))
	assert.Equal(t, 2, stats.Stats["categories"])

	var reload StatusResponse
	require.NoError(t, dec.Decode(&reload))
	assert.Equal(t, "reloaded", reload.Status)
}

func TestServerRejectsBadRequests(t *testing.T) {
	dec := serve(t, config.ServerConfig{MaxCount: 5, MaxTokens: 2},
		Request{ID: "1", Action: "generate", Count: 6},
		Request{ID: "2", Action: "generate", Tokens: []string{"a", "n", "v"}},
		Request{ID: "3", Action: "generate", Tokens: []string{"a\x00"}},
		Request{ID: "4", Action: "search"},
		Request{ID: "5", Action: "explode"},
	)
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		var resp ErrorResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, CodeBadRequest, resp.Code, resp.Error)
	}
}

func TestServerStopsOnGarbage(t *testing.T) {
	var out bytes.Buffer
	s := NewServerIO(testGenerator(t), config.ServerConfig{}, bytes.NewReader([]byte{0xc1}), &out)
	require.Error(t, s.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, CodeBadRequest, resp.Code)
}
