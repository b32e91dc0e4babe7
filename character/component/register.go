package component

import "github.com/animus-rig/animus/character"

// Register registers the components for the given character.
func Register(c *character.Character) {
	c.SetMovement(NewMovementComponent(c))
	c.SetLocomotion(NewLocomotionComponent(c))
	c.SetProcedural(NewProceduralComponent(c))
	c.SetSecondaryMotion(NewSecondaryMotionComponent(c))
}
