package blinds

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoLevels is returned when a schedule is created without any levels
var ErrNoLevels = errors.New("a blind schedule needs at least one level")

// Level is a small/big blind pair
type Level struct {
	Small int `json:"small" yaml:"small"`
	Big   int `json:"big" yaml:"big"`
}

func (l Level) String() string {
	return fmt.Sprintf("%d/%d", l.Small, l.Big)
}

// Validate ensures the level makes sense
func (l Level) Validate() error {
	if l.Small < 0 {
		return fmt.Errorf("small blind must be non-negative, got %d", l.Small)
	}

	if l.Big < l.Small {
		return fmt.Errorf("big blind (%d) cannot be less than the small blind (%d)", l.Big, l.Small)
	}

	return nil
}

// DefaultLevels returns the default blind structure
func DefaultLevels() []Level {
	return []Level{
		{Small: 5, Big: 10},
		{Small: 10, Big: 20},
		{Small: 20, Big: 40},
		{Small: 40, Big: 80},
		{Small: 80, Big: 160},
	}
}

// ParseLevel parses a level in the form "small/big"
func ParseLevel(s string) (Level, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Level{}, fmt.Errorf("invalid blind level %q, expected small/big", s)
	}

	small, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Level{}, fmt.Errorf("invalid small blind in %q: %w", s, err)
	}

	big, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Level{}, fmt.Errorf("invalid big blind in %q: %w", s, err)
	}

	level := Level{Small: small, Big: big}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}

	return level, nil
}

// ParseLevels parses each string with ParseLevel
func ParseLevels(levels []string) ([]Level, error) {
	parsed := make([]Level, 0, len(levels))
	for _, s := range levels {
		if strings.TrimSpace(s) == "" {
			continue
		}

		level, err := ParseLevel(s)
		if err != nil {
			return nil, err
		}

		parsed = append(parsed, level)
	}

	return parsed, nil
}

// Schedule is an ordered set of blind levels
// The current level advances at most once per completed round and never wraps around
type Schedule struct {
	levels []Level
	index  int
}

// NewSchedule returns a schedule starting at the first level
func NewSchedule(levels ...Level) (*Schedule, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	for _, level := range levels {
		if err := level.Validate(); err != nil {
			return nil, err
		}
	}

	l := make([]Level, len(levels))
	copy(l, levels)

	return &Schedule{levels: l}, nil
}

// Current returns the active level
func (s *Schedule) Current() Level {
	return s.levels[s.index]
}

// Index returns the index of the active level
func (s *Schedule) Index() int {
	return s.index
}

// Levels returns a copy of all levels
func (s *Schedule) Levels() []Level {
	l := make([]Level, len(s.levels))
	copy(l, s.levels)
	return l
}

// IsLast returns true if the active level is the final level
func (s *Schedule) IsLast() bool {
	return s.index == len(s.levels)-1
}

// Advance moves to the next level
// Returns false if the schedule is already at its last level
func (s *Schedule) Advance() bool {
	if s.IsLast() {
		return false
	}

	s.index++
	return true
}

// AddLevel appends a level that doubles the final level
func (s *Schedule) AddLevel() Level {
	last := s.levels[len(s.levels)-1]
	next := Level{Small: last.Small * 2, Big: last.Big * 2}
	s.levels = append(s.levels, next)
	return next
}
