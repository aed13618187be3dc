package list

import (
	"fmt"
	"strings"
)

// String returns a human-readable rendering of the list elements from front
// to back, for example "20 -> 10 -> 5 -> 15 -> end". The format is intended
// for debugging and carries no compatibility guarantees.
func (l *List[T]) String() string {
	s := strings.Builder{}
	for c := l.head; c != nil; c = c.next {
		fmt.Fprintf(&s, "%v -> ", c.value)
	}
	s.WriteString("end")
	return s.String()
}
