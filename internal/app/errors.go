package app

import "errors"

var (
	// ErrInsufficientFunds - денег меньше стоимости юнита.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownArchetype - такого союзника нет в ростере.
	ErrUnknownArchetype = errors.New("unknown archetype")
	// ErrOnCooldown - архетип ещё перезаряжается после прошлого призыва.
	ErrOnCooldown = errors.New("archetype on cooldown")
	// ErrGameOver - сессия уже закончилась.
	ErrGameOver = errors.New("game is over")
)
