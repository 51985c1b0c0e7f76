package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arloliu/segdeque/deque"
)

// GrowthCommand pushes elements at one end and records every directory reallocation.
type GrowthCommand struct {
	ChunkSize int
	Pushes    int
	Front     bool

	Stdout io.Writer
}

// growthStep is one directory reallocation observed by GrowthCommand.
type growthStep struct {
	Push     int
	OldRows  int
	NewRows  int
	FirstRow int
	InUse    int
	Len      int
}

func newGrowthCommand(stdout io.Writer) *cobra.Command {
	gc := &GrowthCommand{ChunkSize: 4, Pushes: 1000, Stdout: stdout}
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Print the directory growth sequence for a run of pushes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gc.Run()
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&gc.ChunkSize, "chunk-size", "c", gc.ChunkSize, "Elements per chunk.")
	flags.IntVarP(&gc.Pushes, "pushes", "n", gc.Pushes, "Number of pushes.")
	flags.BoolVar(&gc.Front, "front", gc.Front, "Push at the front instead of the back.")

	return cmd
}

// Run performs the pushes and prints the growth table.
func (gc *GrowthCommand) Run() error {
	steps, err := gc.collect()
	if err != nil {
		return err
	}

	return writeGrowthTable(gc.Stdout, steps)
}

func (gc *GrowthCommand) collect() ([]growthStep, error) {
	d, err := deque.New(deque.WithChunkSize[int](gc.ChunkSize))
	if err != nil {
		return nil, errors.Wrap(err, "creating deque")
	}
	defer d.Release()

	var steps []growthStep
	prev := d.Stats()
	for i := range gc.Pushes {
		if gc.Front {
			err = d.PushFront(i)
		} else {
			err = d.PushBack(i)
		}
		if err != nil {
			return steps, errors.Wrapf(err, "push %d", i+1)
		}

		st := d.Stats()
		if st.Growths != prev.Growths {
			steps = append(steps, growthStep{
				Push:     i + 1,
				OldRows:  prev.Rows,
				NewRows:  st.Rows,
				FirstRow: st.Front / st.ChunkSize,
				InUse:    st.RowsInUse,
				Len:      st.Len,
			})
		}
		prev = st
	}

	return steps, nil
}
