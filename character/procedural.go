package character

// ProceduralComponent is a component that layers turn-lag offsets over the
// animated pose of the member character.
type ProceduralComponent interface {
	// Update applies the lag offsets for the current turn rate. It runs
	// after the mixer so offsets stack on the animated pose.
	Update(dt float32)

	// ActiveTargets returns the number of bones the procedural component
	// writes to. Zero means the layer resolved no usable key bones.
	ActiveTargets() int
}

func (c *Character) SetProcedural(pc ProceduralComponent) {
	c.procedural = pc
}

func (c *Character) Procedural() ProceduralComponent {
	return c.procedural
}
