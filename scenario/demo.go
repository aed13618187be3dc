package scenario

// Demo returns the built-in demonstration script, which exercises every list
// operation starting from an empty list.
func Demo() *Script {
	return &Script{
		Name: "demo",
		Steps: []Step{
			{Op: "push_back", Value: intp(10)},
			{Op: "push_back", Value: intp(5)},
			{Op: "push_back", Value: intp(15)},
			{Op: "push_front", Value: intp(20), ExpectList: ints(20, 10, 5, 15)},
			{Op: "print", Expect: "20 -> 10 -> 5 -> 15 -> end"},
			{Op: "front", Expect: 20},
			{Op: "back", Expect: 15},
			{Op: "at", Index: intp(2), Expect: 5},
			{Op: "pop_front", Expect: 20, ExpectList: ints(10, 5, 15)},
			{Op: "pop_back", Expect: 15, ExpectList: ints(10, 5)},
			{Op: "push_back", Value: intp(3)},
			{Op: "push_back", Value: intp(8)},
			{Op: "push_back", Value: intp(1), ExpectList: ints(10, 5, 3, 8, 1)},
			{Op: "sort", ExpectList: ints(1, 3, 5, 8, 10)},
			{Op: "reverse", ExpectList: ints(10, 8, 5, 3, 1)},
			{Op: "len", Expect: 5},
			{Op: "clear", ExpectList: ints()},
			{Op: "empty", Expect: true},
			{Op: "pop_front", ExpectErr: errEmpty},
		},
	}
}

func intp(v int) *int { return &v }

func ints(v ...int) *[]int {
	if v == nil {
		v = []int{}
	}
	return &v
}
