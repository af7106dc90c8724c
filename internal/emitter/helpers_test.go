package emitter

import "github.com/domexpr/compiler-go/internal/state"

func newTestModule() *state.Module {
	return state.New()
}
