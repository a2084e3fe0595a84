package linelist

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
	"github.com/cwbudde/algo-libs/libs/plasma"
)

// Provider yields the raw line list for a request.
type Provider interface {
	Lines(ctx context.Context, req plasma.Request) (spectrum.Raw, error)
}

// Tabler is implemented by providers that can return the full table,
// including per-ion columns.
type Tabler interface {
	Table(ctx context.Context, req plasma.Request) (Table, error)
}

// PayloadSource fetches the script payload for a request.
type PayloadSource interface {
	Payload(ctx context.Context, req plasma.Request) (string, error)
}

// TableSource opens a CSV line table for a request.
type TableSource interface {
	OpenTable(ctx context.Context, req plasma.Request) (io.ReadCloser, error)
}

// PayloadProvider parses line lists out of script payloads.
type PayloadProvider struct {
	Source PayloadSource
}

// Lines fetches the payload and parses its Doppler array.
func (p PayloadProvider) Lines(ctx context.Context, req plasma.Request) (spectrum.Raw, error) {
	payload, err := p.Source.Payload(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("linelist: fetch payload: %w", err)
	}
	return ParsePayload(payload)
}

// TableProvider reads line lists from CSV tables.
type TableProvider struct {
	Source TableSource
}

// Lines returns the summed intensity column of the table.
func (p TableProvider) Lines(ctx context.Context, req plasma.Request) (spectrum.Raw, error) {
	t, err := p.Table(ctx, req)
	if err != nil {
		return nil, err
	}
	return t.Raw(), nil
}

// Table opens and parses the table for req.
func (p TableProvider) Table(ctx context.Context, req plasma.Request) (Table, error) {
	rc, err := p.Source.OpenTable(ctx, req)
	if err != nil {
		return Table{}, fmt.Errorf("linelist: open table: %w", err)
	}
	defer rc.Close()

	return ParseTable(rc)
}

// StaticPayload is a PayloadSource that always returns the same payload.
type StaticPayload string

// Payload returns the payload unchanged.
func (s StaticPayload) Payload(context.Context, plasma.Request) (string, error) {
	return string(s), nil
}

// FilePayload is a PayloadSource backed by a saved page on disk.
type FilePayload string

// Payload reads the file.
func (f FilePayload) Payload(context.Context, plasma.Request) (string, error) {
	b, err := os.ReadFile(string(f))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FileTable is a TableSource backed by a CSV export on disk.
type FileTable string

// OpenTable opens the file.
func (f FileTable) OpenTable(context.Context, plasma.Request) (io.ReadCloser, error) {
	return os.Open(string(f))
}
