package main

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arloliu/segdeque/deque"
	"github.com/arloliu/segdeque/internal/workload"
)

// RunCommand runs a randomized workload in lock step with the reference model.
type RunCommand struct {
	Ops           int
	Seed          uint64
	ChunkSize     int
	Recycle       bool
	MaxRows       int
	Middle        int
	CheckEvery    int
	ProgressEvery int

	Stdout io.Writer
	Logger *zap.Logger
}

func newRunCommand(stdout io.Writer, logger func() *zap.Logger) *cobra.Command {
	rc := &RunCommand{
		Ops:           10_000,
		Seed:          1,
		ChunkSize:     deque.DefaultChunkSize,
		CheckEvery:    1,
		ProgressEvery: 10_000,
		Stdout:        stdout,
	}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an interleaved workload and verify it against the reference model.",
		Long: `
Applies a deterministic stream of push, pop, insert and erase operations to the
deque and to a slice-backed reference model, comparing them after every step.
Exits non-zero on the first divergence.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc.Logger = logger()
			defer rc.Logger.Sync() //nolint:errcheck

			return rc.Run()
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&rc.Ops, "ops", "n", rc.Ops, "Number of operations.")
	flags.Uint64VarP(&rc.Seed, "seed", "s", rc.Seed, "Workload seed.")
	flags.IntVarP(&rc.ChunkSize, "chunk-size", "c", rc.ChunkSize, "Elements per chunk.")
	flags.BoolVar(&rc.Recycle, "recycle", rc.Recycle, "Recycle freed chunks through a pool.")
	flags.IntVar(&rc.MaxRows, "max-rows", rc.MaxRows, "Directory row limit, 0 for unbounded.")
	flags.IntVar(&rc.Middle, "middle", rc.Middle, "Weight of insert/erase operations, 0 to disable.")
	flags.IntVar(&rc.CheckEvery, "check-every", rc.CheckEvery, "Steps between full content comparisons.")
	flags.IntVar(&rc.ProgressEvery, "progress-every", rc.ProgressEvery, "Steps between progress log lines, 0 to disable.")

	return cmd
}

// Run executes the workload and prints the report.
func (rc *RunCommand) Run() error {
	log := rc.Logger
	if log == nil {
		log = zap.NewNop()
	}

	opts := []deque.Option[int]{
		deque.WithChunkSize[int](rc.ChunkSize),
		deque.WithMaxRows[int](rc.MaxRows),
	}
	if rc.Recycle {
		opts = append(opts, deque.WithChunkRecycling[int]())
	}
	d, err := deque.New(opts...)
	if err != nil {
		return errors.Wrap(err, "creating deque")
	}
	defer d.Release()

	log.Info("starting workload",
		zap.Int("ops", rc.Ops),
		zap.Uint64("seed", rc.Seed),
		zap.Int("chunk_size", rc.ChunkSize),
		zap.Bool("recycle", rc.Recycle),
		zap.Int("max_rows", rc.MaxRows),
	)

	growths := 0
	start := time.Now()
	cfg := workload.Config{
		Ops:        rc.Ops,
		Seed:       rc.Seed,
		Weights:    workload.DefaultWeights.WithMiddle(rc.Middle),
		CheckEvery: rc.CheckEvery,
		OnStep: func(step int, op workload.Op, st deque.Stats) {
			if st.Growths != growths {
				growths = st.Growths
				log.Debug("directory grown",
					zap.Int("step", step),
					zap.Stringer("op", op.Kind),
					zap.Int("rows", st.Rows),
					zap.Int("rows_in_use", st.RowsInUse),
					zap.Int("front", st.Front),
				)
			}
			if rc.ProgressEvery > 0 && (step+1)%rc.ProgressEvery == 0 {
				log.Info("progress", zap.Int("step", step+1), zap.Int("len", st.Len), zap.Int("rows", st.Rows))
			}
		},
	}

	rep, err := workload.Run(d, cfg)
	elapsed := time.Since(start)
	if rerr := writeRunReport(rc.Stdout, rep, elapsed); rerr != nil {
		return errors.Wrap(rerr, "writing report")
	}
	if err != nil {
		log.Error("workload failed", zap.Error(err), zap.Int("completed_ops", rep.Ops))
		return errors.Wrapf(err, "seed %d", rc.Seed)
	}

	log.Info("workload passed",
		zap.Int("ops", rep.Ops),
		zap.Duration("elapsed", elapsed),
		zap.String("fingerprint", formatFingerprint(rep.Fingerprint)),
	)

	return nil
}
