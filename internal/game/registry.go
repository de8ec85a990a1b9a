package game

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const codeLength = 6

// Registry maps match codes to live matches, plus a participant index so
// inbound events that carry only a sender id can find their match. It is not
// safe for concurrent use on its own; the owning Core serializes access.
type Registry struct {
	matches  map[string]*Match
	byPlayer map[string]string
	genCode  func() string
}

func NewRegistry() *Registry {
	return &Registry{
		matches:  make(map[string]*Match),
		byPlayer: make(map[string]string),
		genCode:  randomCode,
	}
}

// NewCode returns a fresh code not held by any live match.
func (r *Registry) NewCode() string {
	for {
		code := r.genCode()
		if _, taken := r.matches[code]; !taken {
			return code
		}
	}
}

func (r *Registry) Put(m *Match) {
	r.matches[m.Code] = m
}

// Get looks up a match by code, case-normalized to uppercase.
func (r *Registry) Get(code string) (*Match, bool) {
	m, ok := r.matches[strings.ToUpper(code)]
	return m, ok
}

// Delete removes the match and every participant binding pointing at it.
func (r *Registry) Delete(code string) {
	m, ok := r.matches[code]
	if !ok {
		return
	}
	for _, p := range m.Players {
		if r.byPlayer[p.ID] == code {
			delete(r.byPlayer, p.ID)
		}
	}
	delete(r.matches, code)
}

func (r *Registry) Bind(playerID, code string) {
	r.byPlayer[playerID] = code
}

// MatchOf resolves the live match a participant belongs to, if any.
func (r *Registry) MatchOf(playerID string) (*Match, bool) {
	code, ok := r.byPlayer[playerID]
	if !ok {
		return nil, false
	}
	m, ok := r.matches[code]
	return m, ok
}

func (r *Registry) Len() int {
	return len(r.matches)
}

func randomCode() string {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String()
}
