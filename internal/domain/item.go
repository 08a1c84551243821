package domain

// Item is one line of a manual brain dump handled by the deterministic
// slice compressor.
type Item struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Emotional bool   `json:"emotional,omitempty"`
}
