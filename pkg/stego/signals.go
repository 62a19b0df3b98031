// signals.go - Operation observability events.
package stego

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for boundary operations.
var (
	SignalHideStart      = capitan.NewSignal("stego.hide.start", "Hide operation beginning")
	SignalHideComplete   = capitan.NewSignal("stego.hide.complete", "Hide operation finished")
	SignalUnveilStart    = capitan.NewSignal("stego.unveil.start", "Unveil operation beginning")
	SignalUnveilComplete = capitan.NewSignal("stego.unveil.complete", "Unveil operation finished")
	SignalCarrierResized = capitan.NewSignal("stego.carrier.resized", "Carrier grown to fit payload")
)

// Keys for typed event data.
var (
	KeyFormat      = capitan.NewStringKey("format")
	KeySecretName  = capitan.NewStringKey("secret_name")
	KeyPayloadSize = capitan.NewIntKey("payload_size")
	KeyCarrierSize = capitan.NewIntKey("carrier_size")
	KeyOutputSize  = capitan.NewIntKey("output_size")
	KeyFileCount   = capitan.NewIntKey("file_count")
	KeyWidth       = capitan.NewIntKey("width")
	KeyHeight      = capitan.NewIntKey("height")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitHideStart emits an event when a hide operation begins.
func emitHideStart(name, format string, payload int) {
	capitan.Emit(context.Background(), SignalHideStart,
		KeySecretName.Field(name),
		KeyFormat.Field(format),
		KeyPayloadSize.Field(payload),
	)
}

// emitHideComplete emits an event when a hide operation finishes.
func emitHideComplete(format string, output int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFormat.Field(format),
		KeyOutputSize.Field(output),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalHideComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalHideComplete, fields...)
	}
}

// emitUnveilStart emits an event when an unveil operation begins.
func emitUnveilStart(carrier int) {
	capitan.Emit(context.Background(), SignalUnveilStart,
		KeyCarrierSize.Field(carrier),
	)
}

// emitUnveilComplete emits an event when an unveil operation finishes.
func emitUnveilComplete(files int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFileCount.Field(files),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalUnveilComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalUnveilComplete, fields...)
	}
}

// emitCarrierResized emits an event when the preparer grows a carrier.
func emitCarrierResized(width, height int) {
	capitan.Emit(context.Background(), SignalCarrierResized,
		KeyWidth.Field(width),
		KeyHeight.Field(height),
	)
}
