package ipgeo

import (
	"context"
	"sync"
)

// IPGeoApiClientMock returns canned responses, in order, one per call. The
// last response is repeated once the list is exhausted.
type IPGeoApiClientMock struct {
	mu        sync.Mutex
	responses []*IPLocationResponse
	err       error
	calls     int
}

// NewIPGeoApiClientMock creates a mock answering with the given responses.
func NewIPGeoApiClientMock(responses ...*IPLocationResponse) *IPGeoApiClientMock {
	return &IPGeoApiClientMock{responses: responses}
}

// NewFailingIPGeoApiClientMock creates a mock whose every call fails with err.
func NewFailingIPGeoApiClientMock(err error) *IPGeoApiClientMock {
	return &IPGeoApiClientMock{err: err}
}

func (c *IPGeoApiClientMock) Locate(ctx context.Context) (*IPLocationResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	if len(c.responses) == 0 {
		return &IPLocationResponse{Status: "fail", Message: "no mocked response"}, nil
	}
	i := c.calls - 1
	if i >= len(c.responses) {
		i = len(c.responses) - 1
	}
	resp := *c.responses[i]
	return &resp, nil
}

// Calls returns how many times Locate was called.
func (c *IPGeoApiClientMock) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
