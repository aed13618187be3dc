// Package scenario replays scripted sequences of operations on integer lists
// and records a trace of their effects.
//
// Scripts are written in TOML:
//
//	name = "basics"
//	initial = [10, 5]
//
//	[[steps]]
//	op = "push_front"
//	value = 20
//
//	[[steps]]
//	op = "sort"
//	expect_list = [5, 10, 20]
//
//	[[steps]]
//	op = "at"
//	index = 3
//	expect_err = "index"
//
// Each step may declare expectations on the value it produces (expect), on the
// content of the list after the step (expect_list), or on the error it fails
// with (expect_err). Run stops at the first step which does not meet its
// expectations.
package scenario

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Script is a named sequence of steps applied to a list holding the Initial
// values.
type Script struct {
	Name    string `toml:"name"`
	Initial []int  `toml:"initial"`
	Steps   []Step `toml:"steps"`
}

// Step is a single list operation and the expectations on its outcome.
type Step struct {
	Op    string `toml:"op"`
	Value *int   `toml:"value"`
	Index *int   `toml:"index"`

	// Expect is the result of the operation: an integer for operations
	// returning elements or the length, a boolean for empty, and a string for
	// print. Other types are rejected by Validate.
	Expect     interface{} `toml:"expect"`
	ExpectList *[]int      `toml:"expect_list"`
	ExpectErr  string      `toml:"expect_err"`
}

func (s Step) String() string {
	switch {
	case s.Value != nil:
		return fmt.Sprintf("%s(%d)", s.Op, *s.Value)
	case s.Index != nil:
		return fmt.Sprintf("%s(%d)", s.Op, *s.Index)
	default:
		return s.Op + "()"
	}
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	s, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return s, nil
}

// Parse decodes a script from its TOML representation and validates its steps.
// Keys which do not map to a script or step field are rejected.
func Parse(data []byte) (*Script, error) {
	s := new(Script)
	md, err := toml.Decode(string(data), s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding script")
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.Errorf("unknown keys in script: %v", keys)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every step names a known operation and carries the
// arguments this operation requires.
func (s *Script) Validate() error {
	for i, step := range s.Steps {
		op, ok := operations[step.Op]
		if !ok {
			return errors.Errorf("step %d: unknown operation %q", i+1, step.Op)
		}
		if op.value && step.Value == nil {
			return errors.Errorf("step %d: operation %q requires a value", i+1, step.Op)
		}
		if op.index && step.Index == nil {
			return errors.Errorf("step %d: operation %q requires an index", i+1, step.Op)
		}
		if !op.value && step.Value != nil {
			return errors.Errorf("step %d: operation %q does not take a value", i+1, step.Op)
		}
		if !op.index && step.Index != nil {
			return errors.Errorf("step %d: operation %q does not take an index", i+1, step.Op)
		}
		if step.Expect != nil {
			if step.ExpectErr != "" {
				return errors.Errorf("step %d: expect and expect_err are mutually exclusive", i+1)
			}
			if !expectable(op.result, step.Expect) {
				return errors.Errorf("step %d: operation %q cannot produce %T value %v", i+1, step.Op, step.Expect, step.Expect)
			}
		}
		switch step.ExpectErr {
		case "", errEmpty, errIndex:
		default:
			return errors.Errorf("step %d: unknown expected error %q", i+1, step.ExpectErr)
		}
	}
	return nil
}

// expectable reports whether v has the type of the results of an operation of
// the given kind. TOML integers decode as int64.
func expectable(kind int, v interface{}) bool {
	switch v.(type) {
	case int, int64:
		return kind == resultInt
	case bool:
		return kind == resultBool
	case string:
		return kind == resultString
	default:
		return false
	}
}
