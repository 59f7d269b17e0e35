package physics

// Units are centimetres and seconds; X is forward, Y is right, Z is up.
const (
	DefaultCellSize            = 100.0
	DefaultGravity             = 980.0
	DefaultJumpZVelocity       = 600.0
	DefaultAirControl          = 0.2
	DefaultBrakingDeceleration = 2048.0
	DefaultMaxWalkSpeed        = 600.0
	DefaultMaxAcceleration     = 2048.0

	GroundProbeDistance = 0.5
	MinimumInputLength  = 1e-6
)
