package effects

import "time"

// RainbowDuration is how long the easter egg stays active.
const RainbowDuration = 5 * time.Second

// Konami is the key sequence unlocking the easter egg.
var Konami = []string{
	"ArrowUp", "ArrowUp", "ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight", "ArrowLeft", "ArrowRight",
	"b", "a",
}

// Sequence detects a fixed key sequence in a stream of key presses.
type Sequence struct {
	pattern []string
	keys    []string
}

// NewSequence returns a detector for pattern.
func NewSequence(pattern []string) *Sequence {
	return &Sequence{
		pattern: pattern,
		keys:    make([]string, 0, len(pattern)),
	}
}

// Push records a key and reports whether the last keys match the pattern.
func (s *Sequence) Push(key string) bool {
	if len(s.pattern) == 0 {
		return false
	}
	if len(s.keys) == len(s.pattern) {
		copy(s.keys, s.keys[1:])
		s.keys = s.keys[:len(s.keys)-1]
	}
	s.keys = append(s.keys, key)
	if len(s.keys) != len(s.pattern) {
		return false
	}
	for i, k := range s.keys {
		if k != s.pattern[i] {
			return false
		}
	}
	return true
}
