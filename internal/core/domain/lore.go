package domain

import "time"

// LoreKind is the family a lore entry belongs to.
type LoreKind string

const (
	LoreCreature  LoreKind = "creatures"
	LoreRace      LoreKind = "races"
	LoreRegion    LoreKind = "regions"
	LoreCharacter LoreKind = "characters"
	LoreBook      LoreKind = "books"
)

// ParseLoreKind returns the kind for s, or false for anything outside the
// closed set.
func ParseLoreKind(s string) (LoreKind, bool) {
	switch k := LoreKind(s); k {
	case LoreCreature, LoreRace, LoreRegion, LoreCharacter, LoreBook:
		return k, true
	}
	return "", false
}

// LoreEntry is an in-universe encyclopedia article.
type LoreEntry struct {
	ID        string    `json:"id"`
	Kind      LoreKind  `json:"kind"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Summary   string    `json:"summary,omitempty"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
