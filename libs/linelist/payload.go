package linelist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-libs/dsp/spectrum"
)

// ErrMalformedPayload indicates the payload did not have the expected structure.
var ErrMalformedPayload = errors.New("linelist: malformed payload")

const (
	// DopplerMarker declares the array of Doppler-broadened intensities.
	DopplerMarker = "var dataDopplerArray"
	// SticksMarker declares the unrelated stick-spectrum array that follows.
	SticksMarker = "var dataSticksArray"
)

// ParsePayload extracts the Doppler array between [DopplerMarker] and
// [SticksMarker] from payload. Each bracketed tuple must hold exactly two
// numbers. Order and repeated wavelengths are preserved.
func ParsePayload(payload string) (spectrum.Raw, error) {
	body, err := dopplerBody(payload)
	if err != nil {
		return nil, err
	}

	var out spectrum.Raw
	rest := body
	for n := 0; ; n++ {
		rest = strings.TrimLeft(rest, " \t\r\n,")
		if rest == "" {
			return out, nil
		}

		if rest[0] != '[' {
			return nil, fmt.Errorf("%w: tuple %d: unexpected %q", ErrMalformedPayload, n, snippet(rest))
		}

		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("%w: tuple %d: missing ']'", ErrMalformedPayload, n)
		}

		line, err := parseTuple(rest[1:end])
		if err != nil {
			return nil, fmt.Errorf("%w: tuple %d %q: %v", ErrMalformedPayload, n, rest[:end+1], err)
		}
		out = append(out, line)
		rest = rest[end+1:]
	}
}

// dopplerBody returns the tuples between the outer brackets of the Doppler
// array literal.
func dopplerBody(payload string) (string, error) {
	start := strings.Index(payload, DopplerMarker)
	if start < 0 {
		return "", fmt.Errorf("%w: %q not found", ErrMalformedPayload, DopplerMarker)
	}
	start += len(DopplerMarker)

	stop := strings.Index(payload[start:], SticksMarker)
	if stop < 0 {
		return "", fmt.Errorf("%w: %q not found after %q", ErrMalformedPayload, SticksMarker, DopplerMarker)
	}

	decl := strings.TrimSpace(payload[start : start+stop])
	decl = strings.TrimPrefix(decl, "=")
	decl = strings.TrimSpace(decl)
	decl = strings.TrimSuffix(decl, ";")
	decl = strings.TrimSpace(decl)

	if !strings.HasPrefix(decl, "[") || !strings.HasSuffix(decl, "]") {
		return "", fmt.Errorf("%w: Doppler array is not a bracketed literal", ErrMalformedPayload)
	}

	return decl[1 : len(decl)-1], nil
}

func parseTuple(s string) (spectrum.Line, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return spectrum.Line{}, fmt.Errorf("want 2 fields, got %d", len(fields))
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return spectrum.Line{}, fmt.Errorf("wavelength: %w", err)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return spectrum.Line{}, fmt.Errorf("intensity: %w", err)
	}

	return spectrum.Line{Wavelength: w, Intensity: v}, nil
}

func snippet(s string) string {
	if len(s) > 24 {
		return s[:24] + "..."
	}
	return s
}
