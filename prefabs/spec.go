package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	FixedDt float64     `yaml:"fixed_dt"`
	Gravity GravitySpec `yaml:"gravity"`
	Physics PhysicsSpec `yaml:"physics"`
	Score   ScoreSpec   `yaml:"score"`
	// ImpactSoundSpeed is the relative speed above which a player contact
	// fires the impact cue. It never gates the score penalty.
	ImpactSoundSpeed float64 `yaml:"impact_sound_speed"`
	CameraSmoothing  float64 `yaml:"camera_smoothing"`
}

type GravitySpec struct {
	G       float64 `yaml:"g"`
	Cutoff  float64 `yaml:"cutoff"`
	Epsilon float64 `yaml:"epsilon"`
}

type PhysicsSpec struct {
	Iterations  int `yaml:"iterations"`
	MaxSubsteps int `yaml:"max_substeps"`
}

type ScoreSpec struct {
	Start          int `yaml:"start"`
	GateBonus      int `yaml:"gate_bonus"`
	ContactPenalty int `yaml:"contact_penalty"`
}

type PlayerSpec struct {
	Radius       float64    `yaml:"radius"`
	HalfHeight   float64    `yaml:"half_height"`
	Density      float64    `yaml:"density"`
	Elasticity   float64    `yaml:"elasticity"`
	LinSpeed     float64    `yaml:"lin_speed"`
	ForwardBoost float64    `yaml:"forward_boost"`
	AngSpeed     float64    `yaml:"ang_speed"`
	Zoom         float64    `yaml:"zoom"`
	ZoomMin      float64    `yaml:"zoom_min"`
	ZoomMax      float64    `yaml:"zoom_max"`
	ZoomRate     float64    `yaml:"zoom_rate"`
	FuelPerGate  float64    `yaml:"fuel_per_gate"`
	FuelBurn     float64    `yaml:"fuel_burn"`
	Ships        []ShipSpec `yaml:"ships"`
}

// ShipSpec is a cosmetic hull choice offered by the level select menu.
type ShipSpec struct {
	Name string     `yaml:"name"`
	Tint *YAMLColor `yaml:"tint"`
}

type PlanetSpec struct {
	Density float64      `yaml:"density"`
	Palette []*YAMLColor `yaml:"palette"`
}

type GateSpec struct {
	ZoneWidth      float64    `yaml:"zone_width"`
	HalfHeight     float64    `yaml:"half_height"`
	PostRadius     float64    `yaml:"post_radius"`
	FutureTint     *YAMLColor `yaml:"future_tint"`
	CurrentTint    *YAMLColor `yaml:"current_tint"`
	PassedTint     *YAMLColor `yaml:"passed_tint"`
	MaxPerPlanet   int        `yaml:"max_per_planet"`
	MinPerPlanet   int        `yaml:"min_per_planet"`
	StepMin        float64    `yaml:"step_min"`
	StepMax        float64    `yaml:"step_max"`
	DistanceMin    float64    `yaml:"distance_min"`
	DistanceMax    float64    `yaml:"distance_max"`
	DistanceOffset float64    `yaml:"distance_offset"`
}

type AsteroidSpec struct {
	Radius          float64     `yaml:"radius"`
	HalfHeight      float64     `yaml:"half_height"`
	Density         float64     `yaml:"density"`
	Elasticity      float64     `yaml:"elasticity"`
	SplitThreshold  float64     `yaml:"split_threshold"`
	ChildrenMin     int         `yaml:"children_min"`
	ChildrenMax     int         `yaml:"children_max"`
	SpeedMin        float64     `yaml:"speed_min"`
	SpeedMax        float64     `yaml:"speed_max"`
	ScaleMin        float64     `yaml:"scale_min"`
	ScaleMax        float64     `yaml:"scale_max"`
	SpinMax         float64     `yaml:"spin_max"`
	BackOffset      float64     `yaml:"back_offset"`
	DespawnDistance float64     `yaml:"despawn_distance"`
	Variants        int         `yaml:"variants"`
	Ambient         AmbientSpec `yaml:"ambient"`
}

type AmbientSpec struct {
	Interval float64 `yaml:"interval"`
	MaxLive  int     `yaml:"max_live"`
	Margin   float64 `yaml:"margin"`
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	ScaleMin float64 `yaml:"scale_min"`
	ScaleMax float64 `yaml:"scale_max"`
	SpinMax  float64 `yaml:"spin_max"`
	Script   string  `yaml:"script"`
}

type LevelSpec struct {
	DefaultLength    int     `yaml:"default_length"`
	RadiusMin        float64 `yaml:"radius_min"`
	RadiusMax        float64 `yaml:"radius_max"`
	DistanceMin      float64 `yaml:"distance_min"`
	DistanceMax      float64 `yaml:"distance_max"`
	SeparationFactor float64 `yaml:"separation_factor"`
	GrowthFactor     float64 `yaml:"growth_factor"`
	GateClearance    float64 `yaml:"gate_clearance"`
	MaxAttempts      int     `yaml:"max_attempts"`
	MaxPlanets       int     `yaml:"max_planets"`
}

// Specs bundles every tuning file a run needs.
type Specs struct {
	Game     GameSpec
	Player   PlayerSpec
	Planet   PlanetSpec
	Gate     GateSpec
	Asteroid AsteroidSpec
	Level    LevelSpec
}

// LoadAll loads and validates every spec file.
func LoadAll() (*Specs, error) {
	var s Specs
	var err error
	if s.Game, err = LoadSpec[GameSpec]("game.yaml"); err != nil {
		return nil, err
	}
	if s.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if s.Planet, err = LoadSpec[PlanetSpec]("planet.yaml"); err != nil {
		return nil, err
	}
	if s.Gate, err = LoadSpec[GateSpec]("gate.yaml"); err != nil {
		return nil, err
	}
	if s.Asteroid, err = LoadSpec[AsteroidSpec]("asteroid.yaml"); err != nil {
		return nil, err
	}
	if s.Level, err = LoadSpec[LevelSpec]("level.yaml"); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects specs that would make the simulation or generator
// misbehave.
func (s *Specs) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{s.Game.FixedDt > 0, "game.fixed_dt must be positive"},
		{s.Game.Gravity.Epsilon > 0, "game.gravity.epsilon must be positive"},
		{s.Game.Gravity.Cutoff > 0, "game.gravity.cutoff must be positive"},
		{s.Player.Radius > 0 && s.Player.Density > 0, "player collider must have size and density"},
		{s.Player.ZoomMin > 0 && s.Player.ZoomMin <= s.Player.ZoomMax, "player zoom range"},
		{s.Planet.Density > 0, "planet.density must be positive"},
		{len(s.Planet.Palette) >= 2, "planet.palette needs two colours"},
		{s.Gate.ZoneWidth > 0 && s.Gate.HalfHeight > 0, "gate zone size"},
		{s.Gate.MinPerPlanet >= 1 && s.Gate.MinPerPlanet <= s.Gate.MaxPerPlanet, "gate per-planet range"},
		{s.Gate.StepMin <= s.Gate.StepMax, "gate step range"},
		{s.Asteroid.Radius > 0 && s.Asteroid.Density > 0, "asteroid collider must have size and density"},
		{s.Asteroid.ChildrenMin >= 1 && s.Asteroid.ChildrenMin <= s.Asteroid.ChildrenMax, "asteroid children range"},
		{s.Asteroid.Ambient.Interval > 0, "asteroid.ambient.interval must be positive"},
		{s.Level.RadiusMin > 0 && s.Level.RadiusMin <= s.Level.RadiusMax, "level radius range"},
		{s.Level.DistanceMin > 0 && s.Level.DistanceMin <= s.Level.DistanceMax, "level distance range"},
		{s.Level.GrowthFactor > 1, "level.growth_factor must exceed 1"},
		{s.Level.MaxAttempts > 0 && s.Level.MaxPlanets > 0, "level retry bounds"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidSpec, c.what)
		}
	}
	return nil
}

// Colors flattens the planet palette.
func (p PlanetSpec) Colors() []color.Color {
	out := make([]color.Color, 0, len(p.Palette))
	for _, c := range p.Palette {
		if c != nil {
			out = append(out, c.Color)
		}
	}
	return out
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %s: %w", value.Value, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	c.Color = color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

// Or returns the colour, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
