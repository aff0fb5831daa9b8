package mocks

import (
	"bytes"
	"errors"
)

// ErrMockRead is what MockRdr fails with
var ErrMockRead = errors.New("i live to fail")

// MockRdr hands out its data and then fails instead of returning EOF
type MockRdr struct {
	rdr *bytes.Reader
}

func NewReader(b []byte) *MockRdr {
	return &MockRdr{rdr: bytes.NewReader(b)}
}

func (rdr *MockRdr) Read(p []byte) (n int, err error) {
	if rdr.rdr.Len() == 0 {
		return 0, ErrMockRead
	}

	return rdr.rdr.Read(p)
}
