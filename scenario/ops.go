package scenario

import (
	"strconv"

	"github.com/segmentio/forwardlist/compare"
	"github.com/segmentio/forwardlist/list"
)

// Names of the errors that steps can expect, matched against the sentinel
// errors of the list package.
const (
	errEmpty = "empty"
	errIndex = "index"
)

// Kinds of results produced by operations, which constrain the type of the
// expectations declared on their steps.
const (
	resultNone = iota
	resultInt
	resultBool
	resultString
)

type operation struct {
	value  bool
	index  bool
	result int
	// apply runs the operation, returning its textual result or an empty
	// string for operations that produce nothing.
	apply func(l *list.List[int], s Step) (string, error)
}

var operations = map[string]operation{
	"push_front": {value: true, apply: func(l *list.List[int], s Step) (string, error) {
		l.PushFront(*s.Value)
		return "", nil
	}},
	"push_back": {value: true, apply: func(l *list.List[int], s Step) (string, error) {
		l.PushBack(*s.Value)
		return "", nil
	}},
	"pop_front": {result: resultInt, apply: func(l *list.List[int], _ Step) (string, error) {
		return itoa(l.PopFront())
	}},
	"pop_back": {result: resultInt, apply: func(l *list.List[int], _ Step) (string, error) {
		return itoa(l.PopBack())
	}},
	"front": {result: resultInt, apply: func(l *list.List[int], _ Step) (string, error) {
		return itoa(l.Front())
	}},
	"back": {result: resultInt, apply: func(l *list.List[int], _ Step) (string, error) {
		return itoa(l.Back())
	}},
	"at": {index: true, result: resultInt, apply: func(l *list.List[int], s Step) (string, error) {
		return itoa(l.At(*s.Index))
	}},
	"len": {result: resultInt, apply: func(l *list.List[int], _ Step) (string, error) {
		return strconv.Itoa(l.Len()), nil
	}},
	"empty": {result: resultBool, apply: func(l *list.List[int], _ Step) (string, error) {
		return strconv.FormatBool(l.Empty()), nil
	}},
	"clear": {apply: func(l *list.List[int], _ Step) (string, error) {
		l.Clear()
		return "", nil
	}},
	"reverse": {apply: func(l *list.List[int], _ Step) (string, error) {
		l.Reverse()
		return "", nil
	}},
	"sort": {apply: func(l *list.List[int], _ Step) (string, error) {
		list.Sort(l)
		return "", nil
	}},
	"sort_desc": {apply: func(l *list.List[int], _ Step) (string, error) {
		l.SortFunc(compare.Reverse(compare.Function[int]))
		return "", nil
	}},
	"print": {result: resultString, apply: func(l *list.List[int], _ Step) (string, error) {
		return l.String(), nil
	}},
}

func itoa(v int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}
