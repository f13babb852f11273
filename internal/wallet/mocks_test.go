package wallet

import (
	"context"
	"encoding/json"
	"fmt"
)

// MockProvider answers requests from canned JSON results or errors.
type MockProvider struct {
	ProviderName string
	Results      map[string][]string
	Errors       map[string]error
	Calls        []string
	Params       map[string][]interface{}
}

func (m *MockProvider) Name() string { return m.ProviderName }

// Request pops the next canned result for method; the last one repeats.
func (m *MockProvider) Request(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	m.Calls = append(m.Calls, method)
	if m.Params == nil {
		m.Params = make(map[string][]interface{})
	}
	m.Params[method] = params

	if err := m.Errors[method]; err != nil {
		return err
	}
	queue := m.Results[method]
	if len(queue) == 0 {
		return fmt.Errorf("the method %s does not exist/is not available", method)
	}
	raw := queue[0]
	if len(queue) > 1 {
		m.Results[method] = queue[1:]
	}
	if result == nil {
		return nil
	}
	return json.Unmarshal([]byte(raw), result)
}

func (m *MockProvider) called(method string) int {
	n := 0
	for _, c := range m.Calls {
		if c == method {
			n++
		}
	}
	return n
}

// codedError mimics the JSON-RPC error the rpc client returns.
type codedError struct {
	code int
	msg  string
}

func (e *codedError) Error() string  { return e.msg }
func (e *codedError) ErrorCode() int { return e.code }
