package main

import (
	"fmt"

	"github.com/johnietre/snaplist"
	"github.com/spf13/cobra"
)

func makeDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the list's snapshot-isolation guarantees",
		Run: func(cmd *cobra.Command, args []string) {
			runNamedDemo("snapshot isolation across clear", demoSnapshotIsolation)
			runNamedDemo("index/length monotonicity", demoIndexLength)
			runNamedDemo("empty-list iterator", demoEmptyIterator)
		},
	}
}

// runNamedDemo mirrors the teacher's named, timed test-scenario style
// (tests/long/main.go's TimeTest) at CLI-demo scale: print a name, run the
// scenario, print PASSED.
func runNamedDemo(name string, f func()) {
	fmt.Printf("--- %s ---\n", name)
	f()
	fmt.Printf("PASSED: %s\n\n", name)
}

func demoSnapshotIsolation() {
	l := snaplist.NewFrom(10, 20, 30)
	iter1 := l.Iter()
	l.Clear()
	l.Append(40)
	iter2 := l.Iter()

	fmt.Print("iter1 (captured before clear): ")
	iter1.ForEach(func(v int) bool {
		fmt.Printf("%d ", v)
		return true
	})
	fmt.Println()

	fmt.Print("iter2 (captured after clear+append): ")
	iter2.ForEach(func(v int) bool {
		fmt.Printf("%d ", v)
		return true
	})
	fmt.Println()

	fmt.Printf("list.Len() = %d\n", l.Len())
}

func demoIndexLength() {
	l := snaplist.NewFrom(0, 1, 2)
	it := l.Iter()
	fmt.Printf("index=%d len=%d\n", it.Index(), it.Len())
	v, _ := it.Next()
	fmt.Printf("yielded %d, index now %d\n", v, it.Index())
	l.Clear()
	it.ForEach(func(v int) bool {
		fmt.Printf("yielded %d (unaffected by clear), index now %d\n", v, it.Index())
		return true
	})
}

func demoEmptyIterator() {
	l := snaplist.New[int]()
	it := l.Iter()
	l.Append(1)
	l.Append(2)
	_, ok := it.Next()
	fmt.Printf("iterator over empty snapshot still reports exhausted: %v, len=%d\n", !ok, it.Len())
}
