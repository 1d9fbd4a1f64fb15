package gamefactory

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"homegame-server/pkg/playable"
)

var factories = map[string]GameFactory{
	"poker":     pokerFactory{},
	"blackjack": blackjackFactory{},
}

// GameFactory is a factory for creating games that implement the Playable interface
// House defaults come from the config, additionalData overrides them per session
type GameFactory interface {
	CreateGame(logger logrus.FieldLogger, additionalData playable.AdditionalData) (playable.Playable, error)
	Details(additionalData playable.AdditionalData) (name string, err error)
}

// Get returns a factory by the given name
func Get(name string) (GameFactory, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("no factory with name: %s", name)
	}

	return factory, nil
}

// Names returns the name of every factory in alphabetical order
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
