package character

import "fmt"

// Action is a discrete press/release input.
type Action int

const (
	ActionFire Action = iota
	ActionAim
	ActionJump
	ActionWeapon1
	ActionWeapon2
	ActionWeapon3
	ActionWeapon4
	ActionNextWeapon
	ActionPrevWeapon
)

var actionNames = []string{
	ActionFire:       "fire",
	ActionAim:        "aim",
	ActionJump:       "jump",
	ActionWeapon1:    "weapon1",
	ActionWeapon2:    "weapon2",
	ActionWeapon3:    "weapon3",
	ActionWeapon4:    "weapon4",
	ActionNextWeapon: "next_weapon",
	ActionPrevWeapon: "prev_weapon",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", int(a))
}

func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Axis is a level input. The value holds until set again.
type Axis int

const (
	AxisMoveForward Axis = iota
	AxisMoveRight
	AxisTurn
	AxisLookUp
	AxisTurnRate
	AxisLookUpRate

	axisCount
)

var axisNames = [axisCount]string{
	AxisMoveForward: "move_forward",
	AxisMoveRight:   "move_right",
	AxisTurn:        "turn",
	AxisLookUp:      "look_up",
	AxisTurnRate:    "turn_rate",
	AxisLookUpRate:  "look_up_rate",
}

func (a Axis) String() string {
	if a >= 0 && a < axisCount {
		return axisNames[a]
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

func ParseAxis(s string) (Axis, error) {
	for i, name := range axisNames {
		if name == s {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}
