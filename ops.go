package snailfish

import (
	"context"
	"fmt"
	"runtime"

	"github.com/npillmayer/snailfish/flat"
	"golang.org/x/sync/errgroup"
)

// Calculator performs additions of snailfish numbers.
//
// The zero value is ready to use: it reduces with DefaultMaxSteps and
// searches pairs with one worker per available CPU.
type Calculator struct {
	MaxSteps int // cap of rewrite steps for a single reduction
	Workers  int // concurrent units of MaxPairMagnitude
}

var defaultCalculator = &Calculator{}

// Add adds two numbers and reduces the result, using the default calculator.
func Add(a, b *Number) (*Number, error) {
	return defaultCalculator.Add(a, b)
}

// reduced returns n if it is reduced, otherwise a reduced copy of n.
func (c *Calculator) reduced(n *Number) (*Number, error) {
	if n.IsReduced() {
		return n, nil
	}
	T().Debugf("snailfish: operand %v is not reduced", n)
	n = n.Clone()
	if _, err := n.ReduceLimit(c.maxSteps()); err != nil {
		return nil, err
	}
	return n, nil
}

// Sum adds up a list of numbers from left to right, using the default
// calculator.
func Sum(nums []*Number) (*Number, error) {
	return defaultCalculator.Sum(nums)
}

// MaxPairMagnitude returns the largest magnitude of the sum of any two
// different numbers in nums. With workers < 1 one worker per CPU is used.
func MaxPairMagnitude(ctx context.Context, nums []*Number, workers int) (int, error) {
	calc := Calculator{Workers: workers}
	return calc.MaxPairMagnitude(ctx, nums)
}

func (c *Calculator) maxSteps() int {
	if c == nil || c.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return c.MaxSteps
}

func (c *Calculator) workers() int {
	if c == nil || c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// Add returns the reduced sum of a and b.
//
// The pair [a,b] is built by splicing the indices of a and b into fresh
// storage; a and b are left untouched. An operand which is not reduced is
// reduced on a private copy first, keeping every regular number of the sum
// at most ExplodeDepth deep. Plain "join, then reduce" is not defined for
// such operands, so this canonicalisation is an extension of snailfish
// addition. Reduction is capped at c.MaxSteps steps, exceeding the cap
// results in ErrNoConvergence.
func (c *Calculator) Add(a, b *Number) (*Number, error) {
	if a.IsVoid() || b.IsVoid() {
		return nil, fmt.Errorf("%w: cannot add a void number", ErrIllegalArguments)
	}
	a, err := c.reduced(a)
	if err != nil {
		return nil, err
	}
	if b, err = c.reduced(b); err != nil {
		return nil, err
	}
	sum := &Number{tree: flat.Join(a.Tree(), b.Tree())}
	if _, err := sum.ReduceLimit(c.maxSteps()); err != nil {
		return nil, err
	}
	return sum, nil
}

// Sum adds up nums from left to right: ((n0 + n1) + n2) + ...
// A single number is returned as a reduced copy. Numbers in nums are not
// modified.
func (c *Calculator) Sum(nums []*Number) (*Number, error) {
	if len(nums) == 0 {
		return nil, ErrNoNumbers
	}
	acc, err := c.reduced(nums[0])
	if err != nil {
		return nil, err
	}
	if acc == nums[0] {
		acc = acc.Clone()
	}
	for i, n := range nums[1:] {
		if acc, err = c.Add(acc, n); err != nil {
			return nil, fmt.Errorf("sum at number #%d: %w", i+2, err)
		}
	}
	T().Infof("snailfish: sum of %d numbers has magnitude %d", len(nums), acc.Magnitude())
	return acc, nil
}

// MaxPairMagnitude returns the largest magnitude of a+b over all ordered
// pairs of different entries a, b of nums.
//
// Every pair is a unit of work. Units run concurrently on at most c.Workers
// goroutines, each on private copies of its operands, so nums is never
// modified. Cancelling ctx stops scheduling of further units.
func (c *Calculator) MaxPairMagnitude(ctx context.Context, nums []*Number) (int, error) {
	if len(nums) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 numbers, have %d", ErrNoNumbers, len(nums))
	}
	l := len(nums)
	results := make([]int, l*l)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers())
schedule:
	for i := range l {
		for j := range l {
			if i == j {
				continue
			}
			if gctx.Err() != nil {
				break schedule
			}
			g.Go(func() error {
				sum, err := c.Add(nums[i].Clone(), nums[j].Clone())
				if err != nil {
					return fmt.Errorf("pair (#%d, #%d): %w", i+1, j+1, err)
				}
				results[i*l+j] = sum.Magnitude()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	best := 0
	for _, m := range results {
		best = max(best, m)
	}
	T().Infof("snailfish: max magnitude of pairwise sums over %d numbers is %d", l, best)
	return best, nil
}
