// Package console drives a simulated character from the keyboard in real
// time.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/Versifine/tps/internal/character"
	"github.com/Versifine/tps/internal/resource"
	"github.com/Versifine/tps/internal/sim"
)

const (
	defaultTickInterval = time.Second / 60
	defaultMovePulse    = 180 * time.Millisecond
	turnStep            = 5.0
	lookStep            = 5.0
)

type Console struct {
	world        *sim.World
	in           io.Reader
	out          io.Writer
	tickInterval time.Duration
	movePulse    time.Duration

	mu            sync.Mutex
	forwardUntil  time.Time
	backwardUntil time.Time
	leftUntil     time.Time
	rightUntil    time.Time
	forward       float64
	right         float64
	pendingTurn   float64
	pendingLook   float64
	jumping       bool
	firing        bool
	aiming        bool
	commandMode   bool
	commandBuf    []rune
	statusWidth   int
}

func NewConsole(world *sim.World, tickInterval time.Duration) *Console {
	if tickInterval <= 0 {
		tickInterval = defaultTickInterval
	}
	return &Console{
		world:        world,
		in:           os.Stdin,
		out:          os.Stdout,
		tickInterval: tickInterval,
		movePulse:    defaultMovePulse,
	}
}

// Start puts the terminal in raw mode and runs until ctx is done or Ctrl-C
// is read.
func (c *Console) Start(ctx context.Context) error {
	if c == nil {
		return errors.New("console is nil")
	}
	if c.world == nil || c.world.Controller == nil {
		return errors.New("console world is nil")
	}

	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("set terminal raw mode: %w", err)
		}
		defer func() {
			_ = term.Restore(fd, oldState)
			fmt.Fprint(c.out, "\r\n")
		}()
	}

	fmt.Fprint(c.out, "[play] console started (W/A/S/D move, arrows look, R aim, F fire, Space jump, 1-4/Q/E weapons, :)\r\n")
	c.renderStatusLine()

	go c.tickLoop(ctx)

	reader := bufio.NewReader(c.in)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		b, err := reader.ReadByte()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read console input: %w", err)
		}
		if b == 3 { // Ctrl-C
			return nil
		}
		c.handleKey(reader, b)
	}
}

func (c *Console) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(c.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.step(time.Now(), c.tickInterval)
			c.renderStatusLine()
		}
	}
}

// step feeds the held input to the controller and advances the world.
func (c *Console) step(now time.Time, dt time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.applyMovementPulseLocked(now)
	ctrl := c.world.Controller
	ctrl.Axis(character.AxisMoveForward, c.forward)
	ctrl.Axis(character.AxisMoveRight, c.right)
	ctrl.Axis(character.AxisTurn, c.pendingTurn)
	ctrl.Axis(character.AxisLookUp, c.pendingLook)
	c.pendingTurn, c.pendingLook = 0, 0

	c.world.Step(dt)

	if c.jumping {
		ctrl.Release(character.ActionJump)
		c.jumping = false
	}
}

func (c *Console) handleKey(reader *bufio.Reader, b byte) {
	if c.isCommandMode() {
		c.handleCommandByte(b)
		return
	}

	switch b {
	case ':':
		c.enterCommandMode()
		return
	case 'w', 'W':
		c.pulse(&c.forward, &c.forwardUntil, &c.backwardUntil, 1)
	case 's', 'S':
		c.pulse(&c.forward, &c.backwardUntil, &c.forwardUntil, -1)
	case 'a', 'A':
		c.pulse(&c.right, &c.leftUntil, &c.rightUntil, -1)
	case 'd', 'D':
		c.pulse(&c.right, &c.rightUntil, &c.leftUntil, 1)
	case ' ':
		c.withController(func(ctrl *character.Controller) {
			ctrl.Press(character.ActionJump)
			c.jumping = true
		})
	case 'r', 'R':
		c.toggleHeld(&c.aiming, character.ActionAim)
	case 'f', 'F':
		c.toggleHeld(&c.firing, character.ActionFire)
	case '1', '2', '3', '4':
		slot := character.ActionWeapon1 + character.Action(b-'1')
		c.withController(func(ctrl *character.Controller) { ctrl.Press(slot) })
	case 'q', 'Q':
		c.withController(func(ctrl *character.Controller) { ctrl.Press(character.ActionPrevWeapon) })
	case 'e', 'E':
		c.withController(func(ctrl *character.Controller) { ctrl.Press(character.ActionNextWeapon) })
	case 'x', 'X':
		c.clearInput()
	case 27: // ESC + arrow sequence
		next, err := reader.ReadByte()
		if err != nil || next != '[' {
			return
		}
		arrow, err := reader.ReadByte()
		if err != nil {
			return
		}
		c.mu.Lock()
		switch arrow {
		case 'D': // left
			c.pendingTurn -= turnStep
		case 'C': // right
			c.pendingTurn += turnStep
		case 'A': // up
			c.pendingLook += lookStep
		case 'B': // down
			c.pendingLook -= lookStep
		}
		c.mu.Unlock()
	}
	c.renderStatusLine()
}

func (c *Console) withController(fn func(*character.Controller)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.world.Controller)
}

// toggleHeld flips a held button. The console has no key-up events so aim
// and fire latch until pressed again.
func (c *Console) toggleHeld(held *bool, a character.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*held = !*held
	if *held {
		c.world.Controller.Press(a)
	} else {
		c.world.Controller.Release(a)
	}
	slog.Debug("Console button toggled", "action", a, "held", *held)
}

func (c *Console) pulse(axis *float64, until, opposite *time.Time, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	*axis = value
	*until = time.Now().Add(c.movePulse)
	*opposite = time.Time{}
}

func (c *Console) applyMovementPulseLocked(now time.Time) {
	expired := func(t *time.Time) bool {
		if !t.IsZero() && !now.Before(*t) {
			*t = time.Time{}
			return true
		}
		return false
	}
	if expired(&c.forwardUntil) && c.forward > 0 {
		c.forward = 0
	}
	if expired(&c.backwardUntil) && c.forward < 0 {
		c.forward = 0
	}
	if expired(&c.rightUntil) && c.right > 0 {
		c.right = 0
	}
	if expired(&c.leftUntil) && c.right < 0 {
		c.right = 0
	}
}

func (c *Console) clearInput() {
	c.mu.Lock()
	defer c.mu.Unlock()
	ctrl := c.world.Controller
	if c.firing {
		ctrl.Release(character.ActionFire)
	}
	if c.aiming {
		ctrl.Release(character.ActionAim)
	}
	c.firing, c.aiming = false, false
	c.forward, c.right = 0, 0
	c.pendingTurn, c.pendingLook = 0, 0
	c.forwardUntil = time.Time{}
	c.backwardUntil = time.Time{}
	c.leftUntil = time.Time{}
	c.rightUntil = time.Time{}
}

func (c *Console) enterCommandMode() {
	c.mu.Lock()
	c.commandMode = true
	c.commandBuf = c.commandBuf[:0]
	c.mu.Unlock()
	fmt.Fprint(c.out, "\r\n:")
}

func (c *Console) handleCommandByte(b byte) {
	switch b {
	case 13, 10: // Enter
		c.mu.Lock()
		cmd := strings.TrimSpace(string(c.commandBuf))
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()

		fmt.Fprint(c.out, "\r\n")
		if cmd != "" {
			c.executeCommand(cmd)
		}
		c.renderStatusLine()
		return
	case 27: // ESC cancel command mode
		c.mu.Lock()
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()
		fmt.Fprint(c.out, "\r\n[play] command cancelled\r\n")
		c.renderStatusLine()
		return
	case 8, 127: // Backspace
		c.mu.Lock()
		if len(c.commandBuf) > 0 {
			c.commandBuf = c.commandBuf[:len(c.commandBuf)-1]
		}
		buf := string(c.commandBuf)
		c.mu.Unlock()
		fmt.Fprintf(c.out, "\r:%s ", buf)
		fmt.Fprintf(c.out, "\r:%s", buf)
		return
	default:
		if b < 32 || b > 126 {
			return
		}
		c.mu.Lock()
		c.commandBuf = append(c.commandBuf, rune(b))
		buf := string(c.commandBuf)
		c.mu.Unlock()
		fmt.Fprintf(c.out, "\r:%s", buf)
	}
}

func (c *Console) executeCommand(cmd string) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	ctrl := c.world.Controller

	switch parts[0] {
	case "help":
		c.printHelp()
	case "state":
		st := ctrl.State()
		pos := c.world.Body.Position()
		fmt.Fprintf(c.out, "[play] weapon=%d(%s) last=%d aim=%s progress=%.2f trigger=%t cooldown=%t hp=%.1f mp=%.1f pos=(%.1f,%.1f,%.1f) falling=%t\r\n",
			st.WeaponIndex, ctrl.CurrentWeaponName(), st.LastWeaponIndex, ctrl.AimState(), st.AimProgress,
			st.TriggerPressed, st.CooldownPassed, st.HP, st.MP,
			pos.X(), pos.Y(), pos.Z(), c.world.Body.IsFalling(),
		)
	case "weapons":
		for i, name := range ctrl.Catalog().Names() {
			fmt.Fprintf(c.out, "[play] %d: %s\r\n", i+1, name)
		}
	case "ammo":
		if len(parts) != 3 {
			fmt.Fprint(c.out, "[play] usage: :ammo <kind> <amount>\r\n")
			return
		}
		kind, err := resource.ParseKind(parts[1])
		amount, err2 := strconv.ParseFloat(parts[2], 64)
		if err != nil || err2 != nil {
			fmt.Fprint(c.out, "[play] invalid ammo args\r\n")
			return
		}
		ctrl.AddAmmo(kind, amount)
		fmt.Fprintf(c.out, "[play] %s now %.0f\r\n", kind, ctrl.Pool().Amount(kind))
	case "profile":
		if len(parts) != 2 {
			fmt.Fprint(c.out, "[play] usage: :profile <name>\r\n")
			return
		}
		if err := ctrl.SelectAimProfile(parts[1]); err != nil {
			fmt.Fprintf(c.out, "[play] %v\r\n", err)
			return
		}
		fmt.Fprintf(c.out, "[play] aim profile %s\r\n", parts[1])
	case "hp", "mp":
		if len(parts) != 2 {
			fmt.Fprintf(c.out, "[play] usage: :%s <value>\r\n", parts[0])
			return
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			fmt.Fprintf(c.out, "[play] invalid %s value\r\n", parts[0])
			return
		}
		if parts[0] == "hp" {
			ctrl.SetHP(v)
		} else {
			ctrl.SetMP(v)
		}
	case "block":
		if len(parts) != 4 {
			fmt.Fprint(c.out, "[play] usage: :block <x> <y> <z>\r\n")
			return
		}
		x, err1 := strconv.Atoi(parts[1])
		y, err2 := strconv.Atoi(parts[2])
		z, err3 := strconv.Atoi(parts[3])
		if err1 != nil || err2 != nil || err3 != nil {
			fmt.Fprint(c.out, "[play] invalid block args\r\n")
			return
		}
		m, ok := c.world.Grid.Block(x, y, z)
		if !ok {
			fmt.Fprintf(c.out, "[play] block (%d,%d,%d): out of range\r\n", x, y, z)
			return
		}
		fmt.Fprintf(c.out, "[play] block (%d,%d,%d): %s\r\n", x, y, z, m)
	case "shots":
		fmt.Fprintf(c.out, "[play] spawned=%d live=%d impacts=%d expired=%d\r\n",
			len(c.world.Projectiles.Spawned()), c.world.Projectiles.Live(),
			len(c.world.Projectiles.Impacts()), c.world.Projectiles.Expired())
	default:
		fmt.Fprintf(c.out, "[play] unknown command: %s\r\n", parts[0])
	}
}

func (c *Console) printHelp() {
	fmt.Fprint(c.out, "[play] keys:\r\n")
	fmt.Fprint(c.out, "  W/S/A/D: pulse movement (~180ms)\r\n")
	fmt.Fprint(c.out, "  Arrow Left/Right: turn +/-5\r\n")
	fmt.Fprint(c.out, "  Arrow Up/Down: look +/-5\r\n")
	fmt.Fprint(c.out, "  R: toggle aim\r\n")
	fmt.Fprint(c.out, "  F: toggle trigger\r\n")
	fmt.Fprint(c.out, "  Space: jump\r\n")
	fmt.Fprint(c.out, "  1-4: weapon slot, Q/E: previous/next weapon\r\n")
	fmt.Fprint(c.out, "  X: clear all input\r\n")
	fmt.Fprint(c.out, "  : enter command mode\r\n")
	fmt.Fprint(c.out, "[play] commands:\r\n")
	fmt.Fprint(c.out, "  :state\r\n")
	fmt.Fprint(c.out, "  :weapons\r\n")
	fmt.Fprint(c.out, "  :ammo <kind> <amount>\r\n")
	fmt.Fprint(c.out, "  :profile <name>\r\n")
	fmt.Fprint(c.out, "  :hp <value>, :mp <value>\r\n")
	fmt.Fprint(c.out, "  :block <x> <y> <z>\r\n")
	fmt.Fprint(c.out, "  :shots\r\n")
	fmt.Fprint(c.out, "  :help\r\n")
}

func (c *Console) renderStatusLine() {
	c.mu.Lock()
	if c.commandMode {
		c.mu.Unlock()
		return
	}
	ctrl := c.world.Controller
	st := ctrl.State()
	weapon := ctrl.CurrentWeaponName()
	rot := c.world.Rig.ControlRotation()
	pos := c.world.Body.Position()
	falling := c.world.Body.IsFalling()
	width := c.statusWidth
	c.mu.Unlock()

	if weapon == "" {
		weapon = "-"
	}
	line := fmt.Sprintf(
		"[AIM:%s %.2f TRG:%s | %s | HP:%.0f MP:%.0f | YAW:%.1f PIT:%.1f | X:%.1f Y:%.1f Z:%.1f ground:%t]",
		boolLabel(st.Aiming),
		st.AimProgress,
		boolLabel(st.TriggerPressed),
		weapon,
		st.HP,
		st.MP,
		rot.Yaw,
		rot.Pitch,
		pos.X(),
		pos.Y(),
		pos.Z(),
		!falling,
	)

	padding := ""
	if width > len(line) {
		padding = strings.Repeat(" ", width-len(line))
	}
	fmt.Fprintf(c.out, "\r%s%s", line, padding)

	c.mu.Lock()
	if len(line) > c.statusWidth {
		c.statusWidth = len(line)
	}
	c.mu.Unlock()
}

func (c *Console) isCommandMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commandMode
}

func boolLabel(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
