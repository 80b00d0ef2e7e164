package models

import "time"

// Speaker identifies who produced a transcript message
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Message is one transcript entry
type Message struct {
	Speaker Speaker   `json:"speaker"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

// Record is an append-only string map that remembers insertion order
type Record struct {
	keys   []string
	values map[string]string
}

// Set stores value under key. A new key is appended to the order; an
// existing key keeps its position.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key has been collected
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns keys in collection order
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of collected keys
func (r *Record) Len() int {
	return len(r.keys)
}
