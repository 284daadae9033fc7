// Package ioctx carries the output streams of a session in a context, so
// that builtins deep inside evaluation write where the caller asked.
package ioctx

import (
	"context"
	"io"
)

// Stdio is a pair of output streams. Nil streams discard.
type Stdio struct {
	Stdout io.Writer
	Stderr io.Writer
}

type stdioKey struct{}

// WithStdio returns a context carrying the given streams.
func WithStdio(ctx context.Context, stdio Stdio) context.Context {
	return context.WithValue(ctx, stdioKey{}, stdio)
}

// FromContext returns the streams carried by ctx, substituting io.Discard
// for any that are missing.
func FromContext(ctx context.Context) Stdio {
	stdio, _ := ctx.Value(stdioKey{}).(Stdio)
	if stdio.Stdout == nil {
		stdio.Stdout = io.Discard
	}
	if stdio.Stderr == nil {
		stdio.Stderr = io.Discard
	}
	return stdio
}

// StdoutToContext replaces the stdout carried by ctx.
func StdoutToContext(ctx context.Context, w io.Writer) context.Context {
	stdio, _ := ctx.Value(stdioKey{}).(Stdio)
	stdio.Stdout = w
	return WithStdio(ctx, stdio)
}

// StderrToContext replaces the stderr carried by ctx.
func StderrToContext(ctx context.Context, w io.Writer) context.Context {
	stdio, _ := ctx.Value(stdioKey{}).(Stdio)
	stdio.Stderr = w
	return WithStdio(ctx, stdio)
}

func StdoutFromContext(ctx context.Context) io.Writer {
	return FromContext(ctx).Stdout
}

func StderrFromContext(ctx context.Context) io.Writer {
	return FromContext(ctx).Stderr
}
