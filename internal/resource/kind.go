package resource

import "fmt"

// Kind identifies one counter in the Ledger.
type Kind int

const (
	KindNone Kind = iota
	StandardAmmo
	RifleAmmo
	ShotgunAmmo
	Rocket
	Arrow
	Grenade
	Mine
	Mana
	Battery
	Fuel
	Overheat
)

const ammoKinds = int(Mine-StandardAmmo) + 1

var kindNames = map[Kind]string{
	KindNone:     "none",
	StandardAmmo: "standard_ammo",
	RifleAmmo:    "rifle_ammo",
	ShotgunAmmo:  "shotgun_ammo",
	Rocket:       "rocket",
	Arrow:        "arrow",
	Grenade:      "grenade",
	Mine:         "mine",
	Mana:         "mana",
	Battery:      "battery",
	Fuel:         "fuel",
	Overheat:     "overheat",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) IsAmmo() bool {
	return k >= StandardAmmo && k <= Mine
}

func (k Kind) IsEnergy() bool {
	return k >= Mana && k <= Overheat
}

// ParseKind accepts the snake_case names used by the data tables.
// "mp" is accepted as an alias of mana.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindNone, nil
	}
	if s == "mp" {
		return Mana, nil
	}
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("unknown resource kind %q", s)
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// AmmoKinds lists the ammunition kinds in ledger order.
func AmmoKinds() []Kind {
	out := make([]Kind, 0, ammoKinds)
	for k := StandardAmmo; k <= Mine; k++ {
		out = append(out, k)
	}
	return out
}
