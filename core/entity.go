package core

// Entity is a unique identifier for an entity
// Zero is never allocated and means "no entity"
type Entity uint64
