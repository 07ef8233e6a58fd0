package engine

import (
	"sync"

	"github.com/lixenwraith/personform/core"
)

// Commands buffers structural world changes issued by systems
// Spawns and despawns become visible when the schedule flushes, right after the issuing system
type Commands struct {
	world   *World
	mu      sync.Mutex
	pending []func()
}

func newCommands(w *World) *Commands {
	return &Commands{world: w}
}

// EntityBuilder collects components for an entity whose ID is reserved upfront
// Components are inserted into their stores on flush
type EntityBuilder struct {
	cmds   *Commands
	entity core.Entity
	insert []func()
}

// Spawn reserves an entity and returns a builder for its components
func (c *Commands) Spawn() *EntityBuilder {
	eb := &EntityBuilder{
		cmds:   c,
		entity: c.world.CreateEntity(),
	}
	c.push(func() {
		for _, fn := range eb.insert {
			fn()
		}
	})
	return eb
}

// Despawn queues removal of every component of the entity
func (c *Commands) Despawn(e core.Entity) {
	c.push(func() {
		c.world.DestroyEntity(e)
	})
}

// Len returns the number of queued commands
func (c *Commands) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Flush applies queued commands in issue order
func (c *Commands) Flush() {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

func (c *Commands) push(fn func()) {
	c.mu.Lock()
	c.pending = append(c.pending, fn)
	c.mu.Unlock()
}

// With adds a component of type T to the entity being built
// Returns the builder for chaining
func With[T any](eb *EntityBuilder, component T) *EntityBuilder {
	store := GetStore[T](eb.cmds.world)
	e := eb.entity
	eb.insert = append(eb.insert, func() {
		store.SetComponent(e, component)
	})
	return eb
}

// Entity returns the reserved entity ID
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}
