package engine

import "github.com/shipyard/shipyard/internal/scene"

// LoadSample replaces the scene with a small formation: three ships grouped into a fleet
// across the top and two loose escorts below. The selection and any gesture are cleared.
func (e *Engine) LoadSample() {
	e.controller.Release()
	e.selection.Clear()
	e.store.Remove(e.store.Entities())

	lead := []scene.Entity{
		e.store.CreateShape(400, 150),
		e.store.CreateShape(500, 150),
		e.store.CreateShape(600, 150),
	}
	fleet, _ := e.store.Group(lead)

	e.store.CreateShape(450, 350)
	e.store.CreateShape(550, 350)

	e.log.Info("sample loaded", "fleet", fleet.ID(), "entities", e.store.Len())
}
