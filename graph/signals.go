package graph

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for graph clone events.
var (
	SignalCloneStart    = capitan.NewSignal("dolly.graph.clone.start", "Graph clone beginning")
	SignalCloneComplete = capitan.NewSignal("dolly.graph.clone.complete", "Graph clone finished")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyNodes    = capitan.NewIntKey("nodes")
	KeyReused   = capitan.NewIntKey("reused")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitCloneStart emits an event when a graph clone begins.
func emitCloneStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalCloneStart,
		KeyTypeName.Field(typeName),
	)
}

// emitCloneComplete emits an event when a graph clone finishes or panics.
func emitCloneComplete(ctx context.Context, typeName string, nodes, reused int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyNodes.Field(nodes),
		KeyReused.Field(reused),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCloneComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalCloneComplete, fields...)
	}
}
