// Package touchstone reads one-port Touchstone (.s1p) files into reflection
// sweeps. Only the subset needed for cable measurements is supported: a
// single S-parameter per frequency in RI, MA or DB notation.
package touchstone

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-tdr/measure/tdr"
)

var (
	// ErrBadOptionLine reports an unparseable "#" option line.
	ErrBadOptionLine = errors.New("touchstone: bad option line")

	// ErrBadRecord reports a data line without three numeric columns.
	ErrBadRecord = errors.New("touchstone: bad data record")

	// ErrEmpty reports a file without any data records.
	ErrEmpty = errors.New("touchstone: no data records")
)

type valueFormat int

const (
	formatMA valueFormat = iota
	formatRI
	formatDB
)

// options carries the "#" line state. Touchstone defaults apply until an
// option line overrides them: GHz, S-parameters, magnitude/angle, 50 ohm.
type options struct {
	freqScale float64
	format    valueFormat
}

func defaultOptions() options {
	return options{freqScale: 1e9, format: formatMA}
}

func (o *options) parse(line string) error {
	fields := strings.Fields(strings.ToUpper(line))

	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "HZ":
			o.freqScale = 1
		case "KHZ":
			o.freqScale = 1e3
		case "MHZ":
			o.freqScale = 1e6
		case "GHZ":
			o.freqScale = 1e9
		case "S":
			// Only S-parameters are meaningful for a reflection sweep.
		case "RI":
			o.format = formatRI
		case "MA":
			o.format = formatMA
		case "DB":
			o.format = formatDB
		case "R":
			if i+1 >= len(fields) {
				return fmt.Errorf("%w: missing reference resistance: %q", ErrBadOptionLine, line)
			}
			i++
			if _, err := strconv.ParseFloat(fields[i], 64); err != nil {
				return fmt.Errorf("%w: reference resistance %q", ErrBadOptionLine, fields[i])
			}
		default:
			return fmt.Errorf("%w: unknown token %q", ErrBadOptionLine, fields[i])
		}
	}

	return nil
}

func (o options) value(a, b float64) complex128 {
	switch o.format {
	case formatRI:
		return complex(a, b)
	case formatDB:
		return cmplx.Rect(math.Pow(10, a/20), b*math.Pi/180)
	default:
		return cmplx.Rect(a, b*math.Pi/180)
	}
}

// ReadS1P parses a one-port Touchstone stream into frequency-ordered
// reflection samples. Comments introduced by "!" are stripped, including
// trailing ones on data lines.
func ReadS1P(r io.Reader) ([]tdr.Sample, error) {
	opts := defaultOptions()

	var samples []tdr.Sample

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if idx := strings.IndexByte(line, '!'); idx >= 0 {
			line = line[:idx]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if err := opts.parse(strings.TrimPrefix(line, "#")); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w: %d columns", lineNo, ErrBadRecord, len(fields))
		}

		var nums [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrBadRecord, f)
			}
			nums[i] = v
		}

		samples = append(samples, tdr.Sample{
			Freq:  nums[0] * opts.freqScale,
			Gamma: opts.value(nums[1], nums[2]),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("touchstone: read failed: %w", err)
	}

	if len(samples) == 0 {
		return nil, ErrEmpty
	}

	return samples, nil
}
