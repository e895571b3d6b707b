package types

// EntityID identifies an entity inside entity.ECS. Zero is never handed out.
type EntityID uint64
