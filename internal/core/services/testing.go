package services

import (
	"context"
	"sync"
)

// FakeService records inputs and returns the configured result and error.
type FakeService[T any, S any] struct {
	Inputs      []T
	Result      S
	ReturnError error
	lock        sync.Mutex
}

func NewFakeService[T any, S any]() *FakeService[T, S] {
	return &FakeService[T, S]{}
}

func (s *FakeService[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Inputs = append(s.Inputs, input)
	if s.ReturnError != nil {
		return result, s.ReturnError
	}
	return s.Result, nil
}
