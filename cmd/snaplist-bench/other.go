package main

import (
	"log"
	"os"
)

// ConsumerStats tracks what a single consumer goroutine observed over its
// lifetime; one is published per consumer once it exits.
type ConsumerStats struct {
	ID       int
	Observed uint64
	Passes   uint64
}

// Slice is the accumulation helper lifted from the teacher's own go/other.go,
// used here to collect ConsumerStats as consumers finish rather than
// listener/path slices.
type Slice[T any] struct {
	Data []T
}

func NewSlice[T any](data []T) *Slice[T] {
	return &Slice[T]{Data: data}
}

func (s *Slice[T]) Append(elems ...T) {
	s.Data = append(s.Data, elems...)
}

func (s *Slice[T]) Len() int {
	return len(s.Data)
}

func Die(code int, args ...any) {
	log.Print(args...)
	os.Exit(code)
}

func Dief(code int, format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(code)
}
