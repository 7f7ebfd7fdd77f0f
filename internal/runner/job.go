package runner

import (
	"context"
	"fmt"
)

// Job kinds.
const (
	KindDeck     = "deck"
	KindHandouts = "handouts"
	KindPack     = "pack"
	KindTrainer  = "trainer"
)

// Job is one step of a build. Run writes its files and returns their paths.
type Job struct {
	Name    string
	Kind    string
	Target  string // output directory, shown in dry runs
	Outputs []string
	Run     func(ctx context.Context) ([]string, error)
}

// Dispatcher runs a single job. Tests can substitute a mock.
type Dispatcher interface {
	Dispatch(ctx context.Context, job Job) ([]string, error)
}

// DefaultDispatcher calls the job's Run function.
type DefaultDispatcher struct{}

func (DefaultDispatcher) Dispatch(ctx context.Context, job Job) ([]string, error) {
	if job.Run == nil {
		return nil, fmt.Errorf("job %q has nothing to run", job.Name)
	}
	return job.Run(ctx)
}
