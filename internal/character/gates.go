package character

// Gates are the overridable ability checks. Embed DefaultGates to override
// a single one.
type Gates interface {
	CanAim(c *Controller) bool
	CanFire(c *Controller) bool
	CanSwitchWeapon(c *Controller) bool
}

// DefaultGates: aim on the ground, fire whenever the trigger guards pass,
// switch only on the ground and not aiming.
type DefaultGates struct{}

func (DefaultGates) CanAim(c *Controller) bool {
	return !c.movement().IsFalling()
}

func (DefaultGates) CanFire(*Controller) bool {
	return true
}

func (DefaultGates) CanSwitchWeapon(c *Controller) bool {
	return !c.movement().IsFalling() && !c.IsAiming()
}

// GroundedGates also refuses to fire while airborne.
type GroundedGates struct {
	DefaultGates
}

func (GroundedGates) CanFire(c *Controller) bool {
	return !c.movement().IsFalling()
}
