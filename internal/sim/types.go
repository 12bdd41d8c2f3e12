package sim

import "fmt"

// Column names shared across the pipeline stages.
const (
	ColMRacket    = "m_racket"
	ColKString    = "k_string"
	ColDamping    = "damping"
	ColXNorm      = "x_norm"
	ColCOR        = "e"
	ColEffMass    = "m_eff"
	ColExitSpeed  = "v_exit"
	ColVibScore   = "vib_score"
	ColShockProxy = "shock_proxy"
	ColSweetScore = "sweet_score"
)

// DesignColumns is the input schema the evaluator requires, in sampling
// order.
var DesignColumns = []string{ColMRacket, ColKString, ColDamping, ColXNorm}

// ResultColumns is the full output schema of a scored run.
var ResultColumns = []string{
	ColMRacket, ColKString, ColDamping, ColXNorm,
	ColCOR, ColEffMass, ColExitSpeed, ColVibScore, ColShockProxy,
	ColSweetScore,
}

// Range is an inclusive [Lo, Hi] sampling interval.
type Range struct {
	Lo float64 `yaml:"lo" json:"lo"`
	Hi float64 `yaml:"hi" json:"hi"`
}

func (r Range) valid() bool { return r.Lo <= r.Hi }

// Bounds describes the design space, one range per design variable.
type Bounds struct {
	MRacket Range `yaml:"m_racket" json:"m_racket"` // total racket mass, kg
	KString Range `yaml:"k_string" json:"k_string"` // string stiffness proxy, N/m
	Damping Range `yaml:"damping" json:"damping"`   // structural damping ratio
	XNorm   Range `yaml:"x_norm" json:"x_norm"`     // impact location, 0=handle 1=tip
}

func DefaultBounds() Bounds {
	return Bounds{
		MRacket: Range{0.285, 0.340},
		KString: Range{2200.0, 4200.0},
		Damping: Range{0.01, 0.08},
		XNorm:   Range{0.15, 0.95},
	}
}

func (b Bounds) Validate() error {
	checks := []struct {
		name string
		r    Range
	}{
		{ColMRacket, b.MRacket},
		{ColKString, b.KString},
		{ColDamping, b.Damping},
		{ColXNorm, b.XNorm},
	}
	for _, c := range checks {
		if !c.r.valid() {
			return fmt.Errorf("bounds %s: lo %v > hi %v", c.name, c.r.Lo, c.r.Hi)
		}
	}
	return nil
}

// Constants holds the physical constants of a run. Fields are read-only
// during a run; override them before calling the evaluator.
type Constants struct {
	MBall    float64 `yaml:"m_ball" json:"m_ball"`       // ITF-regulation ball mass, kg
	VIn      float64 `yaml:"v_in" json:"v_in"`           // incoming ball speed, m/s
	EBase    float64 `yaml:"e_base" json:"e_base"`       // baseline coefficient of restitution
	L        float64 `yaml:"length" json:"length"`       // racket length, m
	XHandle  float64 `yaml:"x_handle" json:"x_handle"`   // handle reference point, m
	NoiseStd float64 `yaml:"noise_std" json:"noise_std"` // shock noise standard deviation
}

func DefaultConstants() Constants {
	return Constants{
		MBall:    0.058,
		VIn:      30.0,
		EBase:    0.45,
		L:        0.685,
		XHandle:  0.10,
		NoiseStd: 0.04,
	}
}

func (c Constants) Validate() error {
	if c.MBall <= 0 {
		return fmt.Errorf("constants: m_ball must be positive, got %v", c.MBall)
	}
	if c.VIn <= 0 {
		return fmt.Errorf("constants: v_in must be positive, got %v", c.VIn)
	}
	if c.L <= 0 {
		return fmt.Errorf("constants: length must be positive, got %v", c.L)
	}
	if c.NoiseStd < 0 {
		return fmt.Errorf("constants: noise_std must be non-negative, got %v", c.NoiseStd)
	}
	return nil
}

// XHandleNorm is the handle reference point normalised by racket length.
func (c Constants) XHandleNorm() float64 {
	return c.XHandle / c.L
}
