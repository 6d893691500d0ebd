package apiclient

import (
	"context"
	"errors"
)

var ErrNoCandidates = errors.New("apiclient: no candidate requests")

// FirstSuccessful tries each request in order and stops at the first 2xx.
// It exists because some routes (pending appointments, search) are not
// stable across server versions; every miss costs one round trip.
// The returned index identifies the candidate that answered.
func (c *Client) FirstSuccessful(ctx context.Context, candidates []Request, out any) (int, error) {
	if len(candidates) == 0 {
		return -1, ErrNoCandidates
	}

	var lastErr error
	for i, req := range candidates {
		raw, err := c.send(ctx, req)
		if err != nil {
			lastErr = err
			c.log.Debug().Err(err).Str("path", req.Path).Int("candidate", i).Msg("candidate failed")
			continue
		}
		return i, decode(raw, out)
	}
	return -1, lastErr
}
