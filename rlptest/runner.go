package rlptest

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bhaskar1001101/rrlp/log"
	"github.com/bhaskar1001101/rrlp/metrics"
	"github.com/bhaskar1001101/rrlp/rlp"
)

// Result is the outcome of one fixture.
type Result struct {
	Name string
	Err  error
}

// Runner checks fixtures against a Decoder and the reflection encoder.
type Runner struct {
	dec *rlp.Decoder
	log *log.Logger
}

// NewRunner returns a Runner that decodes with dec.
func NewRunner(dec *rlp.Decoder) *Runner {
	return &Runner{dec: dec, log: log.Default().Module("rlptest")}
}

// Check runs a single fixture. Encoding vectors must encode to "out" and
// "out" must decode and re-encode to itself. Decode-only vectors must
// decode, or fail to decode, as marked.
func (r *Runner) Check(f Fixture) error {
	want, err := f.Expected()
	if err != nil {
		return fmt.Errorf("bad output hex: %w", err)
	}
	if valid, ok := f.DecodeOnly(); ok {
		_, err := r.dec.DecodeValue(want)
		switch {
		case valid && err != nil:
			return fmt.Errorf("decoding valid input: %w", err)
		case !valid && err == nil:
			return errors.New("invalid input decoded without error")
		}
		return nil
	}

	in, err := f.Input()
	if err != nil {
		return err
	}
	got, err := rlp.EncodeToBytes(in)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("encoding mismatch: got %x, want %x", got, want)
	}
	v, err := r.dec.DecodeValue(want)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}
	if re := rlp.ToBytes(v); !bytes.Equal(re, want) {
		return fmt.Errorf("re-encoding mismatch: got %x, want %x", re, want)
	}
	return nil
}

// Run checks every fixture, in name order.
func (r *Runner) Run(fixtures map[string]Fixture) []Result {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		timer := metrics.NewTimer(metrics.FixtureTime)
		err := r.Check(fixtures[name])
		timer.Stop()
		metrics.FixtureRuns.Inc()
		if err != nil {
			metrics.FixtureFailures.Inc()
			r.log.Warn("fixture failed", "test", name, "err", err)
		} else {
			r.log.Debug("fixture passed", "test", name)
		}
		results = append(results, Result{Name: name, Err: err})
	}
	return results
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Report renders one line per result with f, stamped with now.
func Report(results []Result, f log.LogFormatter, now time.Time) string {
	var sb strings.Builder
	for _, res := range results {
		entry := log.LogEntry{
			Timestamp: now,
			Level:     log.INFO,
			Message:   "pass",
			Fields:    map[string]interface{}{"test": res.Name},
		}
		if res.Err != nil {
			entry.Level = log.ERROR
			entry.Message = "fail"
			entry.Fields["err"] = res.Err
		}
		sb.WriteString(f.Format(entry))
		sb.WriteByte('\n')
	}
	return sb.String()
}
