package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"log"
	"math/rand"
	"sync"
	"time"
)

// RandomSource - источник равномерного случайного числа в [0, 1).
// В тестах подменяется детерминированным источником
type RandomSource interface {
	Draw() float64
}

// secureSource - криптографический источник на crypto/rand.
// При недоступности crypto/rand откатывается на math/rand
type secureSource struct {
	mtx      sync.Mutex
	fallback *rand.Rand
}

func NewSecureSource() RandomSource {
	return &secureSource{
		fallback: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *secureSource) Draw() float64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		log.Printf("crypto/rand unavailable, falling back to math/rand: %v", err)
		s.mtx.Lock()
		defer s.mtx.Unlock()
		return s.fallback.Float64()
	}

	// Старшие 53 бита в мантиссу
	v := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(v) / (1 << 53)
}
