// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list_test

import (
	"fmt"
	"slices"
	"testing"

	"cloudeng.io/datastructures/container/list"
	"cloudeng.io/datastructures/errkind"
	"cloudeng.io/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func ExampleLinkedList_Slice() {
	ll := list.Generate(1, 2, 3, 4, 5)
	fwd, _ := ll.Slice(1, 4, 1)
	rev, _ := ll.Slice(4, 0, -2)
	fmt.Println(fwd)
	fmt.Println(rev)
	fmt.Println(ll)
	// Output:
	// LinkedList(2, 3, 4)
	// LinkedList(5, 3)
	// LinkedList(1, 2, 3, 4, 5)
}

func values[T any](ll *list.LinkedList[T]) []T {
	return slices.Collect(ll.Values())
}

func testLL[T comparable](t *testing.T, ll *list.LinkedList[T], want []T) {
	t.Helper()
	if diff := cmp.Diff(values(ll), want, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("unexpected values (-got +want):\n%s", diff)
	}
	if got, want := ll.Len(), len(want); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	nodes := 0
	for range ll.Nodes() {
		nodes++
	}
	if got, want := nodes, len(want); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGenerate(t *testing.T) {
	ll := list.Generate(1, 2, 3)
	testLL(t, ll, []int{1, 2, 3})
	if got, want := ll.String(), "LinkedList(1, 2, 3)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := ll.Head().String(), "Node(1, 2)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	empty := list.Generate[string]()
	testLL(t, empty, []string{})
	if got, want := empty.String(), "LinkedList()"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if empty.Head() != nil {
		t.Errorf("expected a nil head")
	}

	var zero list.LinkedList[int]
	testLL(t, &zero, []int{})

	seq := list.FromSeq(slices.Values([]string{"a", "b"}))
	testLL(t, seq, []string{"a", "b"})

	// Iteration restarts from the head each time.
	for i := 0; i < 2; i++ {
		testLL(t, ll, []int{1, 2, 3})
	}
}

func TestIndex(t *testing.T) {
	ll := list.Generate(1, 2, 3)
	n, err := ll.Index(1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n.Value, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	n, err = ll.Index(-1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n.Value, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := n.IsLast(), true; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := n.String(), "Node(3)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	input := []int{10, 20, 30, 40, 50}
	ll = list.Generate(input...)
	for i, v := range input {
		got, err := ll.Get(i)
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("%v: got %v, want %v", i, got, v)
		}
		got, err = ll.Get(i - len(input))
		if err != nil {
			t.Fatal(err)
		}
		if got != v {
			t.Errorf("%v: got %v, want %v", i, got, v)
		}
	}

	for _, idx := range []int{5, 6, -6} {
		_, err := ll.Index(idx)
		var ie *errkind.IndexError
		if !errors.As(err, &ie) {
			t.Errorf("%v: unexpected or missing error: %v", idx, err)
			continue
		}
		if got, want := ie.Last, 4; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if !errors.Is(err, errkind.ErrIndexOutOfRange) {
			t.Errorf("%v: wrong error kind: %v", idx, err)
		}
	}
}

func TestInsert(t *testing.T) {
	ll := list.Generate(1, 2, 3)
	if err := ll.Insert(10, 0); err != nil {
		t.Fatal(err)
	}
	testLL(t, ll, []int{1, 10, 2, 3})
	if err := ll.Insert(20, -1); err != nil {
		t.Fatal(err)
	}
	testLL(t, ll, []int{1, 10, 2, 3, 20})
	if err := ll.Insert(30, 2); err != nil {
		t.Fatal(err)
	}
	testLL(t, ll, []int{1, 10, 2, 30, 3, 20})
	if err := ll.Insert(40, 6); !errors.Is(err, errkind.ErrIndexOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	ll.Prepend(0)
	ll.Append(99)
	testLL(t, ll, []int{0, 1, 10, 2, 30, 3, 20, 99})

	empty := &list.LinkedList[int]{}
	if err := empty.Insert(1, 1); !errors.Is(err, errkind.ErrIndexOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if err := empty.Insert(1, -1); err != nil {
		t.Fatal(err)
	}
	empty.Append(2)
	testLL(t, empty, []int{1, 2})

	other := &list.LinkedList[int]{}
	other.Append(1)
	other.Prepend(0)
	testLL(t, other, []int{0, 1})
}

func TestDelete(t *testing.T) {
	ll := list.Generate(1, 2, 3, 4, 5)
	orphan, _ := ll.Index(3)
	if err := ll.Delete(3); err != nil {
		t.Fatal(err)
	}
	testLL(t, ll, []int{1, 2, 3})
	if got, want := orphan.Value, 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := ll.Delete(-1); err != nil {
		t.Fatal(err)
	}
	testLL(t, ll, []int{1, 2})

	if err := ll.Delete(2); !errors.Is(err, errkind.ErrIndexOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}

	if err := ll.Delete(0); err != nil {
		t.Fatal(err)
	}
	testLL(t, ll, []int{})
	if err := ll.Delete(0); err != nil {
		t.Fatal(err)
	}
	if err := ll.Delete(1); !errors.Is(err, errkind.ErrIndexOutOfRange) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestReverse(t *testing.T) {
	for _, input := range [][]int{
		{},
		{1},
		{1, 2},
		{1, 2, 3, 4, 5, 6, 7},
	} {
		ll := list.Generate(input...)
		ll.Reverse()
		want := slices.Clone(input)
		slices.Reverse(want)
		testLL(t, ll, want)
		ll.Reverse()
		testLL(t, ll, input)
	}
}

func TestStep(t *testing.T) {
	ll := list.Generate(1, 2, 3, 4, 5)
	if err := ll.Step(2); err != nil {
		t.Fatal(err)
	}
	testLL(t, ll, []int{1, 3, 5})

	ll = list.Generate(1, 2, 3)
	skipped, _ := ll.Index(1)
	if err := ll.Step(2); err != nil {
		t.Fatal(err)
	}
	testLL(t, ll, []int{1, 3})
	for n := range ll.Nodes() {
		if n == skipped {
			t.Errorf("skipped node %v is still reachable", n)
		}
	}

	for i, tc := range []struct {
		input []int
		step  int
		want  []int
	}{
		{[]int{1, 2, 3, 4, 5, 6, 7}, 3, []int{1, 4, 7}},
		{[]int{1, 2, 3, 4, 5, 6, 7}, -3, []int{1, 4, 7}},
		{[]int{1, 2, 3}, 1, []int{1, 2, 3}},
		{[]int{1, 2, 3}, 10, []int{1}},
		{[]int{}, 2, []int{}},
	} {
		ll := list.Generate(tc.input...)
		if err := ll.Step(tc.step); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		testLL(t, ll, tc.want)
	}

	if err := list.Generate(1).Step(0); !errors.Is(err, errkind.ErrZeroStep) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestSlice(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	ll := list.Generate(input...)

	cp, err := ll.Slice(0, ll.Len(), 1)
	if err != nil {
		t.Fatal(err)
	}
	testLL(t, cp, input)
	cp.Head().Value = 100
	cp.Reverse()
	testLL(t, ll, input)
	for a := range ll.Nodes() {
		for b := range cp.Nodes() {
			if a == b {
				t.Fatalf("slice shares node %v with the original", a)
			}
		}
	}

	for i, tc := range []struct {
		start, end, step int
		want             []int
	}{
		{1, 4, 1, []int{2, 3, 4}},
		{0, 5, 2, []int{1, 3, 5}},
		{4, 1, -1, []int{5, 4, 3}},
		{3, 0, -1, []int{4, 3, 2}},
		{4, 0, -2, []int{5, 3}},
		{4, 1, 1, []int{5, 4, 3}},
		{1, 4, -1, []int{5, 4, 3}},
		{2, 2, 1, []int{}},
		{-3, -1, 1, []int{3, 4}},
		{-1, 0, -1, []int{5, 4, 3, 2}},
	} {
		got, err := ll.Slice(tc.start, tc.end, tc.step)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if diff := cmp.Diff(values(got), tc.want, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%v: Slice(%v, %v, %v): (-got +want):\n%s", i, tc.start, tc.end, tc.step, diff)
		}
		testLL(t, ll, input)
	}

	for i, tc := range []struct {
		start, end, step int
		err              error
	}{
		{0, 6, 1, errkind.ErrIndexOutOfRange},
		{5, 0, -1, errkind.ErrIndexOutOfRange},
		{-7, 2, 1, errkind.ErrIndexOutOfRange},
		{0, 2, 0, errkind.ErrZeroStep},
	} {
		if _, err := ll.Slice(tc.start, tc.end, tc.step); !errors.Is(err, tc.err) {
			t.Errorf("%v: unexpected or missing error: %v", i, err)
		}
	}
}

func TestCopy(t *testing.T) {
	ll := list.Generate("a", "b", "c")
	cp := ll.Copy()
	testLL(t, cp, []string{"a", "b", "c"})
	if err := cp.Delete(1); err != nil {
		t.Fatal(err)
	}
	testLL(t, cp, []string{"a"})
	testLL(t, ll, []string{"a", "b", "c"})
	if got, want := (&list.LinkedList[int]{}).Copy().Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
