package builder

import "fmt"

// Step is one unit of the build pipeline. Steps are constructed bound to the
// owning Builder and live for a single Build invocation.
//
// Init receives the resolved options and may record step-local state; it must
// not mutate the shared build state. CanProcess decides participation for this
// run and is consulted before any step processes, so the applicable subset and
// its exact count are known up front. Process performs the work and is the
// only place the shared build state is mutated.
type Step interface {
	Name() string
	Init(opts Options) error
	CanProcess() bool
	Process() error
}

// StepFactory constructs a step bound to the Builder. The ordered factory
// catalogue is the pipeline definition: catalogue order encodes the real data
// dependencies between steps and is never reordered at run time.
type StepFactory func(*Builder) Step

// StepError is a build-level failure carrying the failing step's name.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("step %s: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }
