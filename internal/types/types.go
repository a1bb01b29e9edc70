package types

// EntityID identifies an entity in the ECS. IDs are never reused within a
// run, so a stale ID held by a projectile or a scheduled effect simply fails
// its lookup once the entity is gone.
type EntityID uint64
