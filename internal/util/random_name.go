package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Wild", "Quiet", "Rowdy", "Friday", "Monday", "Late", "Early", "Loose", "Tight", "Royal",
	"Crooked", "Smoky", "Velvet", "Golden", "Rusty", "Midnight", "Lazy", "Sunday", "Basement", "Kitchen",
	"Garage", "Porch", "Backroom",
}

var nouns = []string{
	"Aces", "Kings", "Queens", "Jacks", "Deuces", "Chips", "Felt", "River", "Flop", "Blinds", "Button",
	"Sharks", "Fish", "Whales", "Bluffers", "Dealers", "Hustlers", "Regulars", "Rounders", "Stacks",
}

// GetRandomName returns a random table name by combining an adjective with a noun
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], nouns[random.Intn(len(nouns))])
}
