package scenario

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/segmentio/forwardlist/list"
)

// ErrExpectation is wrapped by the errors of steps whose outcome differs from
// the expectations declared in the script.
var ErrExpectation = errors.New("expectation not met")

// StepError is returned by Run when a step fails.
type StepError struct {
	Step int // one-based position of the step in the script
	Op   string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Cause makes StepError values compatible with errors.Cause.
func (e *StepError) Cause() error { return e.Err }

// Options configures the execution of scripts.
type Options struct {
	// Log receives a debug entry for each step. Nothing is logged when nil.
	Log logrus.FieldLogger
}

// Report is the outcome of a script run.
type Report struct {
	Name  string
	Trace []string
	Final []int
}

// Run applies the steps of the script in order to a list initialized with the
// script's initial values. The report holds a trace line for each step that
// ran, including the step that failed if any.
func Run(s *Script, opts Options) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log := opts.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	log = log.WithField("script", s.Name)

	l := list.New(s.Initial...)
	r := &Report{Name: s.Name}
	r.Trace = append(r.Trace, "initial: "+l.String())

	for i, step := range s.Steps {
		result, err := operations[step.Op].apply(l, step)

		line := step.String()
		switch {
		case err != nil:
			line += " ! " + err.Error()
		case result != "":
			line += " = " + result
		}
		r.Trace = append(r.Trace, line+" | "+l.String())

		log.WithFields(logrus.Fields{
			"step":   i + 1,
			"op":     step.Op,
			"result": result,
			"len":    l.Len(),
		}).Debug(l.String())

		if err := check(l, step, result, err); err != nil {
			r.Final = l.Values()
			return r, &StepError{Step: i + 1, Op: step.Op, Err: err}
		}
	}

	r.Final = l.Values()
	log.WithField("steps", len(s.Steps)).Info("script completed")
	return r, nil
}

func check(l *list.List[int], step Step, result string, err error) error {
	if step.ExpectErr != "" {
		want := list.ErrEmpty
		if step.ExpectErr == errIndex {
			want = list.ErrIndexOutOfRange
		}
		if !errors.Is(err, want) {
			return errors.Wrapf(ErrExpectation, "got error %v, want %q", err, want)
		}
	} else if err != nil {
		return err
	}

	if step.Expect != nil {
		if want := fmt.Sprint(step.Expect); result != want {
			return errors.Wrapf(ErrExpectation, "got %q, want %q", result, want)
		}
	}

	if step.ExpectList != nil {
		if got, want := l.Values(), *step.ExpectList; !slices.Equal(got, want) {
			return errors.Wrapf(ErrExpectation, "list is %v, want %v", got, want)
		}
	}

	return nil
}
