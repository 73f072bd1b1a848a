package params_test

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvqnn/params"
	"github.com/katalvlaran/cvqnn/tensor"
)

var interactionRoles = map[params.Role]bool{
	params.Theta1: true, params.Phi1: true, params.Theta2: true, params.Phi2: true,
}

// TestLayerStack_Shapes checks count, rank, leading and trailing dimensions.
func TestLayerStack_Shapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		layers, modes, interactions int
	}{
		{1, 1, 0},
		{1, 2, 1},
		{3, 3, 3},
		{2, 4, 6},
		{5, 7, 21},
	}
	for _, tc := range cases {
		set, err := params.LayerStack(tc.layers, tc.modes, params.WithSeed(1))
		require.NoError(t, err)
		require.Len(t, set.Slice(), 11)
		for i, arr := range set.Slice() {
			require.NotNil(t, arr)
			require.Equal(t, 2, arr.Rank(), "role %d", i)
			want := tc.modes
			if interactionRoles[params.Role(i)] {
				want = tc.interactions
			}
			require.Equal(t, []int{tc.layers, want}, arr.Shape(), "layers=%d modes=%d role %s", tc.layers, tc.modes, params.Role(i))
		}
	}
}

func TestSingleLayer_Shapes(t *testing.T) {
	t.Parallel()

	for modes := 1; modes <= 6; modes++ {
		set, err := params.SingleLayer(modes, params.WithSeed(7))
		require.NoError(t, err)
		for _, r := range params.Roles() {
			arr := set.Get(r)
			require.Equal(t, 1, arr.Rank())
			require.Equal(t, []int{r.Width(modes)}, arr.Shape())
		}
	}
}

// TestSingleLayer_Example covers modes=2, seed=42: identical twice,
// theta_1 has shape (1) and r has shape (2).
func TestSingleLayer_Example(t *testing.T) {
	t.Parallel()

	a, err := params.SingleLayer(2, params.WithSeed(42))
	require.NoError(t, err)
	b, err := params.SingleLayer(2, params.WithSeed(42))
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	for i := range a {
		require.Equal(t, a[i].Values(), b[i].Values())
	}
	require.Equal(t, []int{1}, a[params.Theta1].Shape())
	require.Equal(t, []int{2}, a[params.R].Shape())
}

func TestLayerStack_Deterministic(t *testing.T) {
	t.Parallel()

	opts := []params.Option{
		params.WithSeed(2024),
		params.WithUniformRange(-1, 3),
		params.WithNormal(0.5, 2),
	}
	a, err := params.LayerStack(4, 5, opts...)
	require.NoError(t, err)
	// Reuse the very same option values: the seed must restart the stream.
	b, err := params.LayerStack(4, 5, opts...)
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := params.LayerStack(4, 5, params.WithSeed(2025), params.WithUniformRange(-1, 3), params.WithNormal(0.5, 2))
	require.NoError(t, err)
	require.False(t, a.Equal(c), "different seeds should differ")
}

// TestUnseeded_Differs is probabilistic: across many trials, unseeded calls
// must not always agree.
func TestUnseeded_Differs(t *testing.T) {
	t.Parallel()

	prev, err := params.SingleLayer(3)
	require.NoError(t, err)
	differed := false
	for i := 0; i < 20 && !differed; i++ {
		next, err := params.SingleLayer(3)
		require.NoError(t, err)
		differed = !prev.Equal(next)
		prev = next
	}
	require.True(t, differed)
}

func TestUniformRoles_Range(t *testing.T) {
	t.Parallel()

	cases := []struct{ min, max float64 }{
		{params.DefaultUniformMin, params.DefaultUniformMax},
		{-2, -1},
		{10, 10.5},
	}
	for _, tc := range cases {
		set, err := params.LayerStack(20, 6, params.WithSeed(3), params.WithUniformRange(tc.min, tc.max))
		require.NoError(t, err)
		for _, r := range []params.Role{params.R, params.A, params.K} {
			for _, v := range set[r].Values() {
				require.GreaterOrEqual(t, v, tc.min)
				require.Less(t, v, tc.max)
			}
		}
	}
}

func TestUniformRoles_DegenerateAndInverted(t *testing.T) {
	t.Parallel()

	set, err := params.SingleLayer(4, params.WithSeed(5), params.WithUniformRange(1.5, 1.5))
	require.NoError(t, err)
	for _, v := range set[params.K].Values() {
		require.Equal(t, 1.5, v)
	}

	// Inverted ranges are not validated: values land in [max, min].
	set, err = params.SingleLayer(4, params.WithSeed(5), params.WithUniformRange(2, 1))
	require.NoError(t, err)
	for _, v := range set[params.A].Values() {
		require.GreaterOrEqual(t, v, 1.0)
		require.LessOrEqual(t, v, 2.0)
	}
}

func TestNormalRoles_Distribution(t *testing.T) {
	t.Parallel()

	set, err := params.LayerStack(200, 10, params.WithSeed(11), params.WithNormal(3, 0.5))
	require.NoError(t, err)
	s, err := tensor.Summarize(set[params.Theta1]) // 200×45 draws
	require.NoError(t, err)
	require.InDelta(t, 3, s.Mean, 0.05)
	require.InDelta(t, 0.5, s.Std, 0.05)

	// std == 0 collapses to the mean; negative std is passed through.
	set, err = params.SingleLayer(3, params.WithSeed(11), params.WithNormal(-1, 0))
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, set[params.PhiA].Values())

	set, err = params.SingleLayer(3, params.WithSeed(11), params.WithNormal(0, -0.1))
	require.NoError(t, err)
	for _, v := range set[params.Varphi1].Values() {
		require.False(t, math.IsNaN(v))
	}
}

// TestNegativeStd_MirrorsPositive shows std<0 reuses the same standard
// normal draws with the sign flipped.
func TestNegativeStd_MirrorsPositive(t *testing.T) {
	t.Parallel()

	pos, err := params.SingleLayer(3, params.WithSeed(9), params.WithNormal(0, 0.2))
	require.NoError(t, err)
	neg, err := params.SingleLayer(3, params.WithSeed(9), params.WithNormal(0, -0.2))
	require.NoError(t, err)
	p, n := pos[params.Theta1].Values(), neg[params.Theta1].Values()
	for i := range p {
		require.Equal(t, -p[i], n[i])
	}
}

func TestSingleMode_EmptyInteractions(t *testing.T) {
	t.Parallel()

	set, err := params.SingleLayer(1, params.WithSeed(0))
	require.NoError(t, err)
	for _, r := range params.Roles() {
		if interactionRoles[r] {
			require.Equal(t, 0, set[r].Len(), r.String())
		} else {
			require.Equal(t, 1, set[r].Len(), r.String())
		}
	}

	stack, err := params.LayerStack(3, 1, params.WithSeed(0))
	require.NoError(t, err)
	require.Equal(t, []int{3, 0}, stack[params.Phi2].Shape())
	require.Equal(t, []int{3, 1}, stack[params.K].Shape())
}

func TestInvalidArguments(t *testing.T) {
	t.Parallel()

	_, err := params.SingleLayer(0)
	require.ErrorIs(t, err, params.ErrInvalidArgument)
	require.ErrorContains(t, err, params.MethodSingleLayer)

	_, err = params.SingleLayer(-3)
	require.ErrorIs(t, err, params.ErrInvalidArgument)

	_, err = params.LayerStack(0, 2)
	require.ErrorIs(t, err, params.ErrInvalidArgument)
	require.ErrorContains(t, err, "layers")

	_, err = params.LayerStack(2, 0)
	require.ErrorIs(t, err, params.ErrInvalidArgument)
	require.ErrorContains(t, err, "modes")
}

// TestOversizedCounts covers positive counts whose arrays cannot be allocated.
func TestOversizedCounts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		gen  func(opts ...params.Option) (params.Set, error)
	}{
		{"stack huge layers, interactions", func(o ...params.Option) (params.Set, error) { return params.LayerStack(1<<62, 8, o...) }},
		{"stack huge layers, overflowing product", func(o ...params.Option) (params.Set, error) { return params.LayerStack(1<<62, 4, o...) }},
		{"stack just over the limit", func(o ...params.Option) (params.Set, error) { return params.LayerStack(params.MaxElements/2+1, 2, o...) }},
		{"stack huge modes", func(o ...params.Option) (params.Set, error) { return params.LayerStack(1, math.MaxInt, o...) }},
		{"single huge modes", func(o ...params.Option) (params.Set, error) { return params.SingleLayer(1<<40, o...) }},
		{"single interactions over the limit", func(o ...params.Option) (params.Set, error) { return params.SingleLayer(70000, o...) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := &countingSource{src: rand.NewPCG(1, 1)}
			set, err := tc.gen(params.WithSource(src))
			require.ErrorIs(t, err, params.ErrInvalidArgument)
			require.ErrorContains(t, err, "elements per array")
			require.Nil(t, set.Get(params.Theta1))
			require.Zero(t, src.n)
		})
	}
}

// TestInvalidArguments_NoDraws verifies failure happens before sampling.
func TestInvalidArguments_NoDraws(t *testing.T) {
	t.Parallel()

	src := &countingSource{src: rand.NewPCG(1, 2)}
	_, err := params.LayerStack(-1, 3, params.WithSource(src))
	require.ErrorIs(t, err, params.ErrInvalidArgument)
	require.Zero(t, src.n)
}

// TestSharedSource_Continues checks WithSource keeps a caller-owned stream.
func TestSharedSource_Continues(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(4, 4))
	a, err := params.SingleLayer(3, params.WithRand(r))
	require.NoError(t, err)
	b, err := params.SingleLayer(3, params.WithRand(r))
	require.NoError(t, err)
	require.False(t, a.Equal(b))

	// Same draws as a fresh seeded call with equal PCG state.
	seeded, err := params.SingleLayer(3, params.WithSeed(4))
	require.NoError(t, err)
	require.True(t, a.Equal(seeded))
}

func TestConcurrentSeededCalls(t *testing.T) {
	t.Parallel()

	want, err := params.LayerStack(2, 4, params.WithSeed(99))
	require.NoError(t, err)

	const workers = 16
	results := make([]params.Set, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = params.LayerStack(2, 4, params.WithSeed(99))
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.True(t, want.Equal(results[i]), "worker %d", i)
	}
}

func TestParameterCount(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ layers, modes int }{{1, 1}, {2, 3}, {4, 6}} {
		set, err := params.LayerStack(tc.layers, tc.modes, params.WithSeed(1))
		require.NoError(t, err)
		total := 0
		for _, arr := range set {
			total += arr.Len()
		}
		require.Equal(t, total, params.ParameterCount(tc.layers, tc.modes))
	}
	require.Zero(t, params.ParameterCount(0, 3))
	require.Zero(t, params.ParameterCount(3, 0))
}

type countingSource struct {
	src rand.Source
	n   int
}

func (c *countingSource) Uint64() uint64 {
	c.n++
	return c.src.Uint64()
}
