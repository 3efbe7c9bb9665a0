package services

import (
	"context"
	"encoding/json"

	"github.com/nicograef/jotti/internal/client/gateway"
)

type postCall struct {
	endpoint string
	body     map[string]any
	withOut  bool
}

// fakePoster behaves like the gateway for a canned set of responses.
type fakePoster struct {
	calls     []postCall
	responses map[string]string
	err       error
}

func newFakePoster(responses map[string]string) *fakePoster {
	return &fakePoster{responses: responses}
}

func (f *fakePoster) Post(_ context.Context, endpoint string, body any, out gateway.Shape) error {
	raw, _ := json.Marshal(body)
	var m map[string]any
	_ = json.Unmarshal(raw, &m)
	f.calls = append(f.calls, postCall{endpoint: endpoint, body: m, withOut: out != nil})

	if f.err != nil {
		return f.err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(f.responses[endpoint]), out); err != nil {
		return &gateway.ResponseShapeError{Endpoint: endpoint}
	}
	if err := out.Validate(); err != nil {
		return &gateway.ResponseShapeError{Endpoint: endpoint}
	}
	return nil
}

func (f *fakePoster) last() postCall {
	if len(f.calls) == 0 {
		return postCall{}
	}
	return f.calls[len(f.calls)-1]
}
