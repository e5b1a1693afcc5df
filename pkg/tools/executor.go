package tools

import (
	"context"
	"errors"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

// Executor is the dispatch adapter: it resolves a name against the registry,
// validates arguments against the tool's schema, and invokes the handler.
// Nothing reaches the remote API until both checks pass.
type Executor struct {
	registry *Registry
	log      zerolog.Logger
}

// NewExecutor creates an executor over the given registry.
func NewExecutor(registry *Registry, log zerolog.Logger) *Executor {
	return &Executor{registry: registry, log: log}
}

// Execute dispatches one call. Failures are always a *Fault: unknown name,
// schema violation, or a remote call that did not complete.
func (e *Executor) Execute(ctx context.Context, name string, raw map[string]any) (*Result, error) {
	tool := e.registry.Get(name)
	if tool == nil {
		return nil, UnknownOperation(name)
	}

	schema, _ := tool.InputSchema.(map[string]any)
	if raw == nil {
		raw = map[string]any{}
	}
	args, err := ValidateArgs(schema, raw)
	if err != nil {
		return nil, InvalidArguments("%s", err.Error())
	}

	callID := xid.New().String()
	log := e.log.With().Str("call_id", callID).Str("tool", name).Logger()
	log.Debug().Msg("Dispatching tool call")

	result, err := tool.Execute(ctx, args)
	if err != nil {
		// Handlers may raise their own faults (e.g. cross-field argument
		// constraints); everything else is a failed remote call.
		var fault *Fault
		if !errors.As(err, &fault) {
			fault = RemoteCallFailed(err)
		}
		log.Warn().Err(fault).Msg("Tool call failed")
		return nil, fault
	}
	return result, nil
}

// Registry returns the underlying registry.
func (e *Executor) Registry() *Registry {
	return e.registry
}
