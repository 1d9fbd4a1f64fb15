package gamefactory

import (
	"github.com/sirupsen/logrus"
	"homegame-server/internal/config"
	"homegame-server/internal/rng"
	"homegame-server/pkg/playable"
	"homegame-server/pkg/playable/blackjack"
)

type blackjackFactory struct{}

func (b blackjackFactory) CreateGame(logger logrus.FieldLogger, additionalData playable.AdditionalData) (playable.Playable, error) {
	var generator rng.Generator = rng.Crypto{}
	if seed, ok := additionalData.GetInt("seed"); ok {
		generator = rng.NewSeeded(int64(seed))
	}

	game, err := blackjack.NewGame(logger, generator, b.options(additionalData))
	if err != nil {
		return nil, err
	}

	return game, nil
}

func (b blackjackFactory) Details(additionalData playable.AdditionalData) (string, error) {
	if b.options(additionalData).PushOnTie {
		return "Blackjack (push on ties)", nil
	}

	return "Blackjack", nil
}

func (b blackjackFactory) options(additionalData playable.AdditionalData) blackjack.Options {
	cfg := config.Instance().Blackjack
	opts := blackjack.DefaultOptions()

	if cfg.StartingChips > 0 {
		opts.StartingChips = cfg.StartingChips
	}

	if cfg.DealerHandValue > 0 {
		opts.DealerHandValue = cfg.DealerHandValue
	}

	opts.PushOnTie = cfg.PushOnTie
	opts.RotateDealer = cfg.RotateDealer

	if chips, ok := additionalData.GetInt("startingChips"); ok {
		opts.StartingChips = chips
	}

	if value, ok := additionalData.GetInt("dealerHandValue"); ok {
		opts.DealerHandValue = value
	}

	if push, ok := additionalData.GetBool("pushOnTie"); ok {
		opts.PushOnTie = push
	}

	if rotate, ok := additionalData.GetBool("rotateDealer"); ok {
		opts.RotateDealer = rotate
	}

	return opts
}
