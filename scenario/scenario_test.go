package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"github.com/segmentio/forwardlist/list"
)

const script = `
name = "basics"
initial = [10, 5]

[[steps]]
op = "push_front"
value = 20

[[steps]]
op = "front"
expect = 20

[[steps]]
op = "sort"
expect_list = [5, 10, 20]

[[steps]]
op = "sort_desc"
expect_list = [20, 10, 5]

[[steps]]
op = "at"
index = 3
expect_err = "index"

[[steps]]
op = "clear"
expect_list = []

[[steps]]
op = "empty"
expect = true

[[steps]]
op = "pop_back"
expect_err = "empty"
`

func TestDemo(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	r, err := Run(Demo(), Options{Log: logger})
	assert.NilError(t, err)
	assert.Equal(t, "demo", r.Name)
	assert.Check(t, is.Len(r.Final, 0))
	assert.Check(t, is.Len(r.Trace, len(Demo().Steps)+1))

	assert.Equal(t, "initial: end", r.Trace[0])
	assert.Equal(t, "push_back(10) | 10 -> end", r.Trace[1])
	assert.Equal(t, "push_front(20) | 20 -> 10 -> 5 -> 15 -> end", r.Trace[4])
	assert.Equal(t, "at(2) = 5 | 20 -> 10 -> 5 -> 15 -> end", r.Trace[8])
	assert.Equal(t, "sort() | 1 -> 3 -> 5 -> 8 -> 10 -> end", r.Trace[14])
	assert.Equal(t, "pop_front() ! list is empty | end", r.Trace[len(r.Trace)-1])

	// One debug entry per step plus the completion message.
	assert.Check(t, is.Len(hook.AllEntries(), len(Demo().Steps)+1))
	last := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, "demo", last.Data["script"])
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(script))
	assert.NilError(t, err)
	assert.Equal(t, "basics", s.Name)
	assert.DeepEqual(t, []int{10, 5}, s.Initial)
	assert.Check(t, is.Len(s.Steps, 8))

	r, err := Run(s, Options{})
	assert.NilError(t, err)
	assert.Check(t, is.Len(r.Final, 0))
	assert.Equal(t, "initial: 10 -> 5 -> end", r.Trace[0])
	assert.Equal(t, "front() = 20 | 20 -> 10 -> 5 -> end", r.Trace[2])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		scenario string
		script   string
		error    string
	}{
		{
			scenario: "scripts must be valid TOML",
			script:   `name = `,
			error:    "decoding script",
		},

		{
			scenario: "unknown keys are rejected",
			script:   "[[steps]]\nop = \"sort\"\norder = \"desc\"\n",
			error:    "unknown keys in script: [steps.order]",
		},

		{
			scenario: "unknown operations are rejected",
			script:   "[[steps]]\nop = \"len\"\n[[steps]]\nop = \"shuffle\"\n",
			error:    `step 2: unknown operation "shuffle"`,
		},

		{
			scenario: "insertions require a value",
			script:   "[[steps]]\nop = \"push_back\"\n",
			error:    `step 1: operation "push_back" requires a value`,
		},

		{
			scenario: "indexed access requires an index",
			script:   "[[steps]]\nop = \"at\"\nvalue = 1\n",
			error:    `step 1: operation "at" requires an index`,
		},

		{
			scenario: "operations without arguments reject a value",
			script:   "[[steps]]\nop = \"pop_front\"\nvalue = 1\n",
			error:    `step 1: operation "pop_front" does not take a value`,
		},

		{
			scenario: "indexed access rejects a value",
			script:   "[[steps]]\nop = \"at\"\nindex = 0\nvalue = 1\n",
			error:    `step 1: operation "at" does not take a value`,
		},

		{
			scenario: "insertions reject an index",
			script:   "[[steps]]\nop = \"push_back\"\nvalue = 1\nindex = 0\n",
			error:    `step 1: operation "push_back" does not take an index`,
		},

		{
			scenario: "a value and an error cannot both be expected",
			script:   "[[steps]]\nop = \"front\"\nexpect = 1\nexpect_err = \"empty\"\n",
			error:    "step 1: expect and expect_err are mutually exclusive",
		},

		{
			scenario: "integer results cannot be expected as strings",
			script:   "[[steps]]\nop = \"len\"\nexpect = \"0\"\n",
			error:    `step 1: operation "len" cannot produce string value 0`,
		},

		{
			scenario: "integer results cannot be expected as floats",
			script:   "[[steps]]\nop = \"len\"\nexpect = 0.0\n",
			error:    `step 1: operation "len" cannot produce float64 value 0`,
		},

		{
			scenario: "operations without results cannot declare an expected value",
			script:   "[[steps]]\nop = \"sort\"\nexpect = 1\n",
			error:    `step 1: operation "sort" cannot produce int64 value 1`,
		},

		{
			scenario: "expected errors must be known",
			script:   "[[steps]]\nop = \"front\"\nexpect_err = \"overflow\"\n",
			error:    `step 1: unknown expected error "overflow"`,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			_, err := Parse([]byte(test.script))
			assert.ErrorContains(t, err, test.error)
		})
	}
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		scenario string
		initial  []int
		steps    []Step
		step     int
		cause    error
	}{
		{
			scenario: "a value different from the expected one fails the step",
			steps: []Step{
				{Op: "push_back", Value: intp(1)},
				{Op: "front", Expect: 2},
			},
			step:  2,
			cause: ErrExpectation,
		},

		{
			scenario: "list content different from the expected one fails the step",
			steps: []Step{
				{Op: "push_front", Value: intp(1)},
				{Op: "push_front", Value: intp(2), ExpectList: ints(1, 2)},
			},
			step:  2,
			cause: ErrExpectation,
		},

		{
			scenario: "a step succeeding where an error was expected fails",
			steps: []Step{
				{Op: "push_front", Value: intp(1)},
				{Op: "at", Index: intp(0), ExpectErr: errIndex},
			},
			step:  2,
			cause: ErrExpectation,
		},

		{
			scenario: "a different error than the expected one fails the step",
			steps: []Step{
				{Op: "at", Index: intp(0), ExpectErr: errEmpty},
			},
			step:  1,
			cause: ErrExpectation,
		},

		{
			scenario: "list content is checked on steps failing with the expected error",
			initial:  []int{1, 2},
			steps: []Step{
				{Op: "at", Index: intp(9), ExpectErr: errIndex, ExpectList: ints(7, 7, 7)},
			},
			step:  1,
			cause: ErrExpectation,
		},

		{
			scenario: "list errors without expectation fail the step",
			steps: []Step{
				{Op: "len", Expect: 0},
				{Op: "back"},
			},
			step:  2,
			cause: list.ErrEmpty,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			r, err := Run(&Script{Name: "failure", Initial: test.initial, Steps: test.steps}, Options{})

			stepErr := &StepError{}
			assert.Assert(t, errors.As(err, &stepErr), "unexpected error: %v", err)
			assert.Equal(t, test.step, stepErr.Step)
			assert.Equal(t, test.steps[test.step-1].Op, stepErr.Op)
			assert.Check(t, errors.Is(err, test.cause), "unexpected error: %v", err)
			assert.Check(t, is.Len(r.Trace, test.step+1))
		})
	}
}

func TestRunFailedStepLeavesListUnchanged(t *testing.T) {
	s := &Script{
		Name:    "unchanged",
		Initial: []int{1, 2},
		Steps: []Step{
			{Op: "at", Index: intp(9), ExpectErr: errIndex, ExpectList: ints(1, 2)},
			{Op: "clear"},
			{Op: "pop_front", ExpectErr: errEmpty, ExpectList: ints()},
			{Op: "len", Expect: 0},
		},
	}

	r, err := Run(s, Options{})
	assert.NilError(t, err)
	assert.Check(t, is.Len(r.Final, 0))
}

func TestRunInvalidScript(t *testing.T) {
	_, err := Run(&Script{Steps: []Step{{Op: "push_back"}}}, Options{})
	assert.ErrorContains(t, err, "requires a value")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.toml")
	assert.NilError(t, os.WriteFile(path, []byte(script), 0644))

	s, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, "basics", s.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "reading script")
	assert.Check(t, errors.Is(err, os.ErrNotExist))
}
