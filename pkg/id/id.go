// Package id issues ULIDs tagging each calculation in the logs.
package id

import (
	cryptoRand "crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces lexicographically increasing ULIDs.
type Generator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
}

// NewGenerator returns a generator reading entropy from r using now as the
// clock. Nil arguments select crypto/rand and time.Now.
func NewGenerator(r io.Reader, now func() time.Time) *Generator {
	if r == nil {
		r = cryptoRand.Reader
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now, entropy: ulid.Monotonic(r, 0)}
}

// Next returns a new ULID string.
func (g *Generator) Next() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.now().UTC()), g.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

var std = NewGenerator(nil, nil)

// New returns a ULID from the package generator. It panics only if the
// entropy source fails.
func New() string {
	s, err := std.Next()
	if err != nil {
		panic(err)
	}
	return s
}
