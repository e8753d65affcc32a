package service

import "github.com/rocketscienceinc/noughts-and-crosses/internal/entity"

// BotFactory builds bots that share one random source.
type BotFactory struct {
	rnd Random
}

func NewBotFactory(rnd Random) *BotFactory {
	return &BotFactory{rnd: rnd}
}

func (that *BotFactory) NewBot(mode entity.AIMode) (BotService, error) {
	return NewBotService(mode, that.rnd)
}
