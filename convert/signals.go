package convert

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for conversion events.
var (
	SignalConvertStart    = capitan.NewSignal("utf7.convert.start", "Stream conversion beginning")
	SignalConvertComplete = capitan.NewSignal("utf7.convert.complete", "Stream conversion finished")
)

// Keys for typed event data.
var (
	KeyFrom     = capitan.NewStringKey("from")
	KeyTo       = capitan.NewStringKey("to")
	KeyBytesIn  = capitan.NewIntKey("bytes_in")
	KeyBytesOut = capitan.NewIntKey("bytes_out")
	KeyRunes    = capitan.NewIntKey("runes")
	KeyLines    = capitan.NewIntKey("lines")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitConvertStart emits an event when a conversion begins.
func emitConvertStart(ctx context.Context, from, to string) {
	capitan.Emit(ctx, SignalConvertStart,
		KeyFrom.Field(from),
		KeyTo.Field(to),
	)
}

// emitConvertComplete emits an event when a conversion finishes.
func emitConvertComplete(ctx context.Context, from, to string, stats Stats, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyFrom.Field(from),
		KeyTo.Field(to),
		KeyBytesIn.Field(int(stats.BytesIn)),
		KeyBytesOut.Field(int(stats.BytesOut)),
		KeyRunes.Field(int(stats.Runes)),
		KeyLines.Field(stats.Lines),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalConvertComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalConvertComplete, fields...)
	}
}
