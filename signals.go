package dolly

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for protocol faults.
var (
	SignalUsageFault = capitan.NewSignal("dolly.usage.fault", "Clone precondition or misuse fault")
)

// Keys for typed event data.
var (
	KeyOperation = capitan.NewStringKey("operation")
	KeyTypeName  = capitan.NewStringKey("type_name")
	KeyError     = capitan.NewErrorKey("error")
)

// emitUsageFault emits an error event right before a usage panic.
func emitUsageFault(ctx context.Context, err *UsageError) {
	capitan.Error(ctx, SignalUsageFault,
		KeyOperation.Field(err.Op),
		KeyTypeName.Field(err.Type),
		KeyError.Field(err),
	)
}
