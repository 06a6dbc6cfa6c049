package editor

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator hands out section ids of the form prefix-<seq>-<random>.
//
// seq is strictly increasing for the lifetime of the generator, so two ids from the
// same generator can never be equal regardless of what the random part produces.
type IDGenerator struct {
	mu     sync.Mutex
	prefix string
	seq    uint64
	random func() string
}

func NewIDGenerator(prefix string) *IDGenerator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "sec"
	}
	return &IDGenerator{prefix: prefix, random: randomSuffix}
}

func (g *IDGenerator) Next() string {
	g.mu.Lock()
	g.seq++
	seq := g.seq
	g.mu.Unlock()
	return g.prefix + "-" + strconv.FormatUint(seq, 36) + "-" + g.random()
}

// randomSuffix returns 8 lowercase hex chars taken from a v4 UUID.
func randomSuffix() string {
	u := uuid.New()
	return strings.ReplaceAll(u.String(), "-", "")[:8]
}
