package arena

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Versifine/tps/internal/physics"
	"github.com/Versifine/tps/internal/weapon"
)

// DefaultProjectileSpeed is used when a template leaves the speed unset.
const DefaultProjectileSpeed = 3000.0

type Projectile struct {
	ID           uuid.UUID
	Weapon       string
	Class        string
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	GravityScale float64
	MaxSpeed     float64
	Damage       float64
	Lifespan     time.Duration
	Age          time.Duration
	Spawn        physics.Transform
}

type Impact struct {
	ID     uuid.UUID
	Weapon string
	Point  mgl64.Vec3
	Damage float64
	Age    time.Duration
}

// ProjectileLog spawns projectiles and flies them through the grid.
type ProjectileLog struct {
	tracer  *Tracer
	gravity float64
	newID   func() uuid.UUID

	live    []*Projectile
	spawned []Projectile
	impacts []Impact
	expired int
}

func NewProjectileLog(tracer *Tracer, gravity float64) *ProjectileLog {
	return &ProjectileLog{tracer: tracer, gravity: gravity, newID: uuid.New}
}

// Spawn launches a projectile along the transform's forward axis.
func (l *ProjectileLog) Spawn(at physics.Transform, cfg weapon.Config) {
	speed := cfg.Projectile.InitialSpeed
	if speed <= 0 {
		speed = DefaultProjectileSpeed
	}
	p := &Projectile{
		ID:           l.newID(),
		Weapon:       cfg.Name,
		Class:        cfg.Projectile.Class,
		Position:     at.Location,
		Velocity:     at.Rotation.Forward().Mul(speed),
		GravityScale: cfg.Projectile.GravityScale,
		MaxSpeed:     cfg.Projectile.MaxSpeed,
		Damage:       cfg.Projectile.Damage,
		Lifespan:     cfg.Projectile.Lifespan,
		Spawn:        at,
	}
	l.live = append(l.live, p)
	l.spawned = append(l.spawned, *p)
	slog.Debug("Projectile spawned", "id", p.ID, "weapon", p.Weapon, "class", p.Class,
		"yaw", at.Rotation.Yaw, "pitch", at.Rotation.Pitch)
}

// Step moves every live projectile. A projectile ends when its path enters
// a solid cell or its lifespan runs out.
func (l *ProjectileLog) Step(dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 || len(l.live) == 0 {
		return
	}
	live := l.live[:0]
	for _, p := range l.live {
		p.Velocity = p.Velocity.Sub(mgl64.Vec3{0, 0, l.gravity * p.GravityScale * secs})
		if p.MaxSpeed > 0 {
			if speed := p.Velocity.Len(); speed > p.MaxSpeed {
				p.Velocity = p.Velocity.Mul(p.MaxSpeed / speed)
			}
		}
		next := p.Position.Add(p.Velocity.Mul(secs))
		p.Age += dt

		if l.tracer != nil {
			if hit, ok := l.tracer.LineTrace(p.Position, next); ok {
				l.impacts = append(l.impacts, Impact{ID: p.ID, Weapon: p.Weapon, Point: hit, Damage: p.Damage, Age: p.Age})
				slog.Debug("Projectile impact", "id", p.ID, "weapon", p.Weapon, "point", hit)
				continue
			}
		}
		p.Position = next
		if p.Lifespan > 0 && p.Age >= p.Lifespan {
			l.expired++
			continue
		}
		live = append(live, p)
	}
	for i := len(live); i < len(l.live); i++ {
		l.live[i] = nil
	}
	l.live = live
}

func (l *ProjectileLog) Live() int { return len(l.live) }

func (l *ProjectileLog) Expired() int { return l.expired }

// Spawned returns every projectile as it was launched.
func (l *ProjectileLog) Spawned() []Projectile {
	return append([]Projectile(nil), l.spawned...)
}

func (l *ProjectileLog) Impacts() []Impact {
	return append([]Impact(nil), l.impacts...)
}
