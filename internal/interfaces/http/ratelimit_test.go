package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PorCliente(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)

	assert.True(t, rl.get("10.0.0.1").Allow())
	assert.False(t, rl.get("10.0.0.1").Allow(), "ráfaga agotada")
	assert.True(t, rl.get("10.0.0.2").Allow(), "otra IP tiene su propio bucket")
}

func TestRateLimiter_SweepEliminaInactivos(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.get("10.0.0.1")
	rl.get("10.0.0.2")
	rl.clients["10.0.0.1"].seen = time.Now().Add(-10 * time.Minute)

	rl.sweep(time.Now())

	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "10.0.0.2")
}
