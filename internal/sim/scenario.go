package sim

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Versifine/tps/internal/character"
	"github.com/Versifine/tps/internal/resource"
)

var ErrBadScenario = errors.New("bad scenario")

type Pickup struct {
	Kind   resource.Kind `yaml:"kind"`
	Amount float64       `yaml:"amount"`
}

// Step is one scripted input. Exactly one of Press, Release, Axis, Pickup
// or Profile is set.
type Step struct {
	At      time.Duration `yaml:"at"`
	Press   string        `yaml:"press"`
	Release string        `yaml:"release"`
	Axis    string        `yaml:"axis"`
	Value   float64       `yaml:"value"`
	Pickup  *Pickup       `yaml:"pickup"`
	Profile string        `yaml:"profile"`
}

type Scenario struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
	TickRate int           `yaml:"tick_rate"`
	Steps    []Step        `yaml:"steps"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

// ParseScenario decodes and checks a scenario. Steps are ordered by time,
// keeping file order for equal times.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if sc.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrBadScenario)
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("%w: step %d: %w", ErrBadScenario, i, err)
		}
	}
	sort.SliceStable(sc.Steps, func(i, j int) bool { return sc.Steps[i].At < sc.Steps[j].At })
	return &sc, nil
}

func (st Step) validate() error {
	set := 0
	if st.Press != "" {
		set++
		if _, err := character.ParseAction(st.Press); err != nil {
			return err
		}
	}
	if st.Release != "" {
		set++
		if _, err := character.ParseAction(st.Release); err != nil {
			return err
		}
	}
	if st.Axis != "" {
		set++
		if _, err := character.ParseAxis(st.Axis); err != nil {
			return err
		}
	}
	if st.Pickup != nil {
		set++
	}
	if st.Profile != "" {
		set++
	}
	if set != 1 {
		return fmt.Errorf("want exactly one input, got %d", set)
	}
	if st.At < 0 {
		return errors.New("negative time")
	}
	return nil
}

// apply feeds the step to the controller. Names were checked at parse time.
func (st Step) apply(c *character.Controller) error {
	switch {
	case st.Press != "":
		a, _ := character.ParseAction(st.Press)
		c.Press(a)
	case st.Release != "":
		a, _ := character.ParseAction(st.Release)
		c.Release(a)
	case st.Axis != "":
		a, _ := character.ParseAxis(st.Axis)
		c.Axis(a, st.Value)
	case st.Pickup != nil:
		c.AddAmmo(st.Pickup.Kind, st.Pickup.Amount)
	case st.Profile != "":
		return c.SelectAimProfile(st.Profile)
	}
	return nil
}
