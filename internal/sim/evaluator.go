package sim

import (
	"context"
	"math/rand"
	"sync"

	"github.com/san-kum/racketlab/internal/physics"
	"github.com/san-kum/racketlab/internal/table"
)

// Evaluate runs the physics proxies over every design row and returns the
// input table extended with e, m_eff, v_exit, vib_score and shock_proxy.
// The input table is never mutated. rng feeds the shock noise term and is
// mandatory; thread one generator per run for reproducibility.
func Evaluate(designs *table.Table, c Constants, rng *rand.Rand) (*table.Table, error) {
	if err := designs.Require(DesignColumns...); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	mRacket := designs.MustColumn(ColMRacket)
	kString := designs.MustColumn(ColKString)
	damping := designs.MustColumn(ColDamping)
	xNorm := designs.MustColumn(ColXNorm)

	e := physics.CORFromStringStiffness(kString, c.EBase)
	mEff := physics.EffectiveMass(mRacket, xNorm)
	vExit := physics.ExitSpeed(c.VIn, mEff, c.MBall, e)
	vib := physics.VibrationScore(xNorm, kString, damping, mRacket)
	shock := physics.ShockProxy(vib, xNorm, kString, c.XHandleNorm(), c.NoiseStd, rng)

	return appendDerived(designs, e, mEff, vExit, vib, shock)
}

// EvaluateParallel is Evaluate with the rows partitioned across workers.
// Each partition gets its own generator seeded seed+partition, so results
// are deterministic for a fixed (seed, workers) pair, though the noise
// stream differs from the single-generator Evaluate path.
func EvaluateParallel(ctx context.Context, designs *table.Table, c Constants, seed int64, workers int) (*table.Table, error) {
	if workers <= 1 || designs.Len() == 0 {
		return Evaluate(designs, c, rand.New(rand.NewSource(seed)))
	}
	if err := designs.Require(DesignColumns...); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := designs.Len()
	if workers > n {
		workers = n
	}

	mRacket := designs.MustColumn(ColMRacket)
	kString := designs.MustColumn(ColKString)
	damping := designs.MustColumn(ColDamping)
	xNorm := designs.MustColumn(ColXNorm)

	e := make([]float64, n)
	mEff := make([]float64, n)
	vExit := make([]float64, n)
	vib := make([]float64, n)
	shock := make([]float64, n)

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(part int, lo, hi int) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				return
			default:
			}

			rng := rand.New(rand.NewSource(seed + int64(part)))

			pe := physics.CORFromStringStiffness(kString[lo:hi], c.EBase)
			pm := physics.EffectiveMass(mRacket[lo:hi], xNorm[lo:hi])
			pv := physics.ExitSpeed(c.VIn, pm, c.MBall, pe)
			pvib := physics.VibrationScore(xNorm[lo:hi], kString[lo:hi], damping[lo:hi], mRacket[lo:hi])
			ps := physics.ShockProxy(pvib, xNorm[lo:hi], kString[lo:hi], c.XHandleNorm(), c.NoiseStd, rng)

			copy(e[lo:hi], pe)
			copy(mEff[lo:hi], pm)
			copy(vExit[lo:hi], pv)
			copy(vib[lo:hi], pvib)
			copy(shock[lo:hi], ps)
		}(w, lo, hi)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return appendDerived(designs, e, mEff, vExit, vib, shock)
}

func appendDerived(designs *table.Table, e, mEff, vExit, vib, shock []float64) (*table.Table, error) {
	out := designs
	var err error
	for _, col := range []struct {
		name string
		data []float64
	}{
		{ColCOR, e},
		{ColEffMass, mEff},
		{ColExitSpeed, vExit},
		{ColVibScore, vib},
		{ColShockProxy, shock},
	} {
		out, err = out.WithColumn(col.name, col.data)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
