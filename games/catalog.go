package games

import (
	"game-backend/contract"
	"game-backend/domain"
)

// Catalog maps every playable game type to its constructor.
func Catalog(furuyoni, hearthstone Rules) map[domain.GameType]contract.GameFactory {
	return map[domain.GameType]contract.GameFactory{
		domain.GameTypeFuruyoni: func() contract.Game {
			return NewFuruyoni(furuyoni)
		},
		domain.GameTypeHearthstone: func() contract.Game {
			return NewHearthstone(hearthstone)
		},
	}
}

// DefaultCatalog uses the default rules of each game.
func DefaultCatalog() map[domain.GameType]contract.GameFactory {
	return Catalog(DefaultFuruyoniRules(), DefaultHearthstoneRules())
}
