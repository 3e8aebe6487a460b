package types

// EntityID - идентификатор сущности в сессии. Не переиспользуется.
type EntityID uint64
