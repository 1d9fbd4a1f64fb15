package gamefactory

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"homegame-server/internal/config"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/playable/poker/blinds"
	"homegame-server/pkg/playable/poker/holdem"
)

type pokerFactory struct{}

func (p pokerFactory) CreateGame(logger logrus.FieldLogger, additionalData playable.AdditionalData) (playable.Playable, error) {
	opts, err := p.options(additionalData)
	if err != nil {
		return nil, err
	}

	game, err := holdem.NewGame(logger, opts)
	if err != nil {
		return nil, err
	}

	return game, nil
}

func (p pokerFactory) Details(additionalData playable.AdditionalData) (string, error) {
	opts, err := p.options(additionalData)
	if err != nil {
		return "", err
	}

	level := opts.BlindLevels[0]
	return fmt.Sprintf("Texas Hold'em (${%d}/${%d})", level.Small, level.Big), nil
}

func (p pokerFactory) options(additionalData playable.AdditionalData) (holdem.Options, error) {
	cfg := config.Instance().Poker
	opts := holdem.DefaultOptions()

	if cfg.StartingChips > 0 {
		opts.StartingChips = cfg.StartingChips
	}

	if len(cfg.BlindLevels) > 0 {
		levels, err := blinds.ParseLevels(cfg.BlindLevels)
		if err != nil {
			return holdem.Options{}, fmt.Errorf("invalid blind levels in config: %w", err)
		}

		opts.BlindLevels = levels
	}

	if cfg.BlindPosting != "" {
		opts.BlindPosting = holdem.BlindPosting(cfg.BlindPosting)
	}

	if chips, ok := additionalData.GetInt("startingChips"); ok {
		opts.StartingChips = chips
	}

	if raw, ok := additionalData["blindLevels"]; ok {
		levels, ok := additionalData.GetStringSlice("blindLevels")
		if !ok {
			return holdem.Options{}, fmt.Errorf("blindLevels must be a list of strings, got %T", raw)
		}

		parsed, err := blinds.ParseLevels(levels)
		if err != nil {
			return holdem.Options{}, err
		}

		opts.BlindLevels = parsed
	}

	if posting, ok := additionalData.GetString("blindPosting"); ok {
		mode, err := holdem.BlindPostingFromString(posting)
		if err != nil {
			return holdem.Options{}, err
		}

		opts.BlindPosting = mode
	}

	if len(opts.BlindLevels) == 0 {
		return holdem.Options{}, blinds.ErrNoLevels
	}

	return opts, nil
}
