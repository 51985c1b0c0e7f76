// Package workload drives a segmented deque and the slice-backed reference
// model with the same randomized operation stream and reports any divergence.
package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/segdeque/deque"
	"github.com/arloliu/segdeque/endian"
	"github.com/arloliu/segdeque/internal/refmodel"
)

// OpKind identifies a mutating operation.
type OpKind uint8

// Operation kinds.
const (
	OpPushBack OpKind = iota
	OpPushFront
	OpPopBack
	OpPopFront
	OpInsert
	OpErase
	numOpKinds
)

var opNames = [numOpKinds]string{"push_back", "push_front", "pop_back", "pop_front", "insert", "erase"}

func (k OpKind) String() string {
	if k < numOpKinds {
		return opNames[k]
	}

	return fmt.Sprintf("op(%d)", uint8(k))
}

// Kinds lists every operation kind in declaration order.
func Kinds() []OpKind {
	out := make([]OpKind, 0, numOpKinds)
	for k := range numOpKinds {
		out = append(out, k)
	}

	return out
}

// Op is a single generated operation.
type Op struct {
	Kind  OpKind
	Value int // pushed or inserted value
	Pos   int // insert/erase position, resolved against the length at generation time
}

// Weights sets the relative frequency of each operation kind.
type Weights [numOpKinds]int

// DefaultWeights favors pushes over pops so the container keeps growing and
// repeatedly crosses directory reallocations.
var DefaultWeights = Weights{
	OpPushBack:  30,
	OpPushFront: 30,
	OpPopBack:   20,
	OpPopFront:  20,
}

// WithMiddle returns w with insert and erase enabled at the given weight.
func (w Weights) WithMiddle(weight int) Weights {
	w[OpInsert] = weight
	w[OpErase] = weight

	return w
}

func (w Weights) total() int {
	sum := 0
	for _, v := range w {
		sum += v
	}

	return sum
}

// Generator produces a deterministic operation stream for a seed.
type Generator struct {
	rng     *rand.Rand
	weights Weights
	total   int
	next    int
}

// NewGenerator creates a generator. Weights with no positive entry fall back to DefaultWeights.
func NewGenerator(seed uint64, weights Weights) *Generator {
	for i, v := range weights {
		if v < 0 {
			weights[i] = 0
		}
	}
	if weights.total() == 0 {
		weights = DefaultWeights
	}

	return &Generator{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		weights: weights,
		total:   weights.total(),
	}
}

// Next returns the next operation for a container currently holding size elements.
// Erase is only generated for a non-empty container.
func (g *Generator) Next(size int) Op {
	for {
		r := g.rng.IntN(g.total)
		kind := OpKind(0)
		for ; kind < numOpKinds; kind++ {
			if r < g.weights[kind] {
				break
			}
			r -= g.weights[kind]
		}
		if kind == OpErase && size == 0 {
			if g.weights.total() == g.weights[OpErase] {
				kind = OpPushBack
			} else {
				continue
			}
		}

		g.next++
		op := Op{Kind: kind, Value: g.next}
		switch kind {
		case OpInsert:
			op.Pos = g.rng.IntN(size + 1)
		case OpErase:
			op.Pos = g.rng.IntN(size)
		}

		return op
	}
}

// ErrDivergence is returned when the container and the reference model disagree.
var ErrDivergence = errors.New("container diverged from reference model")

// Config controls a Run.
type Config struct {
	Ops        int     // number of operations
	Seed       uint64  // generator seed
	Weights    Weights // operation mix; zero value means DefaultWeights
	CheckEvery int     // full content comparison interval in steps; values below 1 mean every step
	// OnStep, when set, is called after every successfully verified step.
	OnStep func(step int, op Op, stats deque.Stats)
}

// Report summarizes a Run.
type Report struct {
	Ops         int
	Counts      [numOpKinds]int
	EmptyPops   int
	MaxLen      int
	Final       deque.Stats
	Fingerprint uint64
}

// Count returns how many operations of kind k were applied.
func (r Report) Count(k OpKind) int {
	if k >= numOpKinds {
		return 0
	}

	return r.Counts[k]
}

// EncodeInt is the fingerprint encoder for int elements.
var EncodeInt deque.Encoder[int] = endian.IntEncoder[int](endian.GetLittleEndianEngine())

// Run applies cfg.Ops generated operations to d and to a fresh reference model
// in lock step. Lengths and end elements are compared after every step and the
// full contents every cfg.CheckEvery steps and at the end.
//
// Returns the report gathered so far together with an error wrapping
// ErrDivergence on the first mismatch, or the container's own error when an
// operation that the model accepts fails.
func Run(d *deque.Deque[int], cfg Config) (Report, error) {
	gen := NewGenerator(cfg.Seed, cfg.Weights)
	model := refmodel.New[int]()
	for v := range d.Values() {
		model.PushBack(v)
	}

	every := max(cfg.CheckEvery, 1)
	var rep Report
	for step := range cfg.Ops {
		op := gen.Next(model.Len())
		if err := apply(d, model, op, &rep); err != nil {
			return finish(d, rep), fmt.Errorf("step %d (%s): %w", step, op.Kind, err)
		}
		rep.Ops++
		rep.Counts[op.Kind]++
		rep.MaxLen = max(rep.MaxLen, model.Len())

		if err := compareEnds(d, model); err != nil {
			return finish(d, rep), fmt.Errorf("step %d (%s): %w", step, op.Kind, err)
		}
		if (step+1)%every == 0 {
			if err := compareAll(d, model); err != nil {
				return finish(d, rep), fmt.Errorf("step %d (%s): %w", step, op.Kind, err)
			}
		}
		if cfg.OnStep != nil {
			cfg.OnStep(step, op, d.Stats())
		}
	}

	if err := compareAll(d, model); err != nil {
		return finish(d, rep), fmt.Errorf("final check: %w", err)
	}

	return finish(d, rep), nil
}

func finish(d *deque.Deque[int], rep Report) Report {
	rep.Final = d.Stats()
	rep.Fingerprint = deque.Fingerprint(d, EncodeInt)

	return rep
}

func apply(d *deque.Deque[int], m *refmodel.Deque[int], op Op, rep *Report) error {
	switch op.Kind {
	case OpPushBack:
		m.PushBack(op.Value)
		return d.PushBack(op.Value)
	case OpPushFront:
		m.PushFront(op.Value)
		return d.PushFront(op.Value)
	case OpPopBack:
		return comparePop(d.PopBack, m.PopBack, rep)
	case OpPopFront:
		return comparePop(d.PopFront, m.PopFront, rep)
	case OpInsert:
		m.Insert(op.Pos, op.Value)
		return d.InsertAt(op.Pos, op.Value)
	case OpErase:
		m.Erase(op.Pos)
		return d.EraseAt(op.Pos)
	default:
		return fmt.Errorf("unknown operation %s", op.Kind)
	}
}

func comparePop(pop func() (int, error), ref func() (int, bool), rep *Report) error {
	want, ok := ref()
	got, err := pop()
	if !ok {
		rep.EmptyPops++
		if err == nil {
			return fmt.Errorf("%w: pop on empty container returned %d", ErrDivergence, got)
		}

		return nil
	}
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("%w: popped %d, want %d", ErrDivergence, got, want)
	}

	return nil
}

func compareEnds(d *deque.Deque[int], m *refmodel.Deque[int]) error {
	if d.Len() != m.Len() {
		return fmt.Errorf("%w: length %d, want %d", ErrDivergence, d.Len(), m.Len())
	}
	if m.Len() == 0 {
		return nil
	}

	front, err := d.Front()
	if err != nil {
		return err
	}
	back, err := d.Back()
	if err != nil {
		return err
	}
	if front != m.At(0) || back != m.At(m.Len()-1) {
		return fmt.Errorf("%w: ends (%d, %d), want (%d, %d)",
			ErrDivergence, front, back, m.At(0), m.At(m.Len()-1))
	}

	return nil
}

func compareAll(d *deque.Deque[int], m *refmodel.Deque[int]) error {
	if err := compareEnds(d, m); err != nil {
		return err
	}
	i := 0
	for v := range d.Values() {
		if want := m.At(i); v != want {
			return fmt.Errorf("%w: index %d holds %d, want %d", ErrDivergence, i, v, want)
		}
		i++
	}
	if deque.Fingerprint(d, EncodeInt) != deque.FingerprintSeq(m.Values(), EncodeInt) {
		return fmt.Errorf("%w: fingerprint mismatch", ErrDivergence)
	}

	return nil
}
