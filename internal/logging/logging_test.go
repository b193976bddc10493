package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingWrapsAtCapacity(t *testing.T) {
	r := NewRing(3)
	r.Append("a")
	r.Append("b")
	assert.Equal(t, []string{"a", "b"}, r.Lines())

	r.Append("c")
	r.Append("d") // evicts "a"
	assert.Equal(t, []string{"b", "c", "d"}, r.Lines())
}

func TestNewProducesUsableLogger(t *testing.T) {
	log, ring := New(Options{Debug: true})
	log.Info("hello", "k", "v")
	assert.NotEmpty(t, ring.Lines())
}
