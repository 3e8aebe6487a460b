// internal/system/economy.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
)

// EconomySystem начисляет доход игрока по таймеру.
type EconomySystem struct {
	cfg config.Config
}

func NewEconomySystem(cfg config.Config) *EconomySystem {
	return &EconomySystem{cfg: cfg}
}

// Update копит deltaTime и за каждый полный интервал добавляет MoneyRate,
// удерживая деньги в [0, MaxMoney]. Остаток таймера переносится.
func (s *EconomySystem) Update(deltaTime float64, economy *component.Economy) {
	if deltaTime <= 0 || s.cfg.MoneyInterval <= 0 {
		return
	}
	economy.Timer += deltaTime
	for economy.Timer >= s.cfg.MoneyInterval {
		economy.Timer -= s.cfg.MoneyInterval
		economy.Money = min(max(economy.Money+s.cfg.MoneyRate, 0), s.cfg.MaxMoney)
	}
}

// Spend списывает cost, если денег хватает.
func (s *EconomySystem) Spend(economy *component.Economy, cost int) bool {
	if cost < 0 || economy.Money < cost {
		return false
	}
	economy.Money -= cost
	return true
}
