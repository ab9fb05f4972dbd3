package valuecodec

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/awksedgreep/bindocsis/pkg/bderrors"
)

var unitPattern = regexp.MustCompile(`^\s*([0-9]*\.?[0-9]+)\s*([a-zA-Z]*)\s*$`)

// parseWithUnit splits "591 MHz" / "1.2GHz" / "591" into a numeric
// mantissa and a lowercase unit suffix (empty when bare).
func parseWithUnit(s string) (float64, string, error) {
	m := unitPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, "", bderrors.New(bderrors.KindInvalidValue, "cannot parse numeric value from %q", s)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", bderrors.Wrap(bderrors.KindInvalidValue, err, "invalid numeric value %q", s)
	}
	return v, strings.ToLower(m[2]), nil
}

// --- frequency (Hz, uint32) ---

var freqUnits = map[string]float64{
	"": 1, "hz": 1, "khz": 1e3, "mhz": 1e6, "ghz": 1e9,
}

func decodeFrequency(value []byte) (string, any, error) {
	if len(value) != 4 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "frequency requires 4 bytes, got %d", len(value))
	}
	hz := beToUint32(value)
	return formatScaled(float64(hz), []scaleUnit{
		{1e9, "GHz"}, {1e6, "MHz"}, {1e3, "kHz"}, {1, "Hz"},
	}), hz, nil
}

func encodeFrequency(formatted string) ([]byte, error) {
	v, unit, err := parseWithUnit(formatted)
	if err != nil {
		return nil, err
	}
	mult, ok := freqUnits[unit]
	if !ok {
		return nil, bderrors.New(bderrors.KindInvalidValue, "unrecognized frequency unit in %q", formatted)
	}
	return uint32ToBE(uint32(math.Round(v*mult)), 4), nil
}

// --- bandwidth (bps, uint32) ---

var bwUnits = map[string]float64{
	"": 1, "bps": 1, "kbps": 1e3, "mbps": 1e6, "gbps": 1e9,
}

func decodeBandwidth(value []byte) (string, any, error) {
	if len(value) != 4 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "bandwidth requires 4 bytes, got %d", len(value))
	}
	bps := beToUint32(value)
	return formatScaled(float64(bps), []scaleUnit{
		{1e9, "Gbps"}, {1e6, "Mbps"}, {1e3, "kbps"}, {1, "bps"},
	}), bps, nil
}

func encodeBandwidth(formatted string) ([]byte, error) {
	v, unit, err := parseWithUnit(formatted)
	if err != nil {
		return nil, err
	}
	mult, ok := bwUnits[unit]
	if !ok {
		return nil, bderrors.New(bderrors.KindInvalidValue, "unrecognized bandwidth unit in %q", formatted)
	}
	return uint32ToBE(uint32(math.Round(v*mult)), 4), nil
}

// --- duration (seconds, uint32) ---

var durationUnits = map[string]float64{
	"": 1, "second": 1, "seconds": 1, "sec": 1, "s": 1,
	"minute": 60, "minutes": 60, "min": 60,
	"hour": 3600, "hours": 3600, "hr": 3600,
	"day": 86400, "days": 86400,
}

func decodeDuration(value []byte) (string, any, error) {
	if len(value) != 4 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "duration requires 4 bytes, got %d", len(value))
	}
	seconds := beToUint32(value)
	return formatDuration(seconds), seconds, nil
}

func formatDuration(seconds uint32) string {
	switch {
	case seconds != 0 && seconds%86400 == 0:
		return pluralize(seconds/86400, "day")
	case seconds != 0 && seconds%3600 == 0:
		return pluralize(seconds/3600, "hour")
	case seconds != 0 && seconds%60 == 0:
		return pluralize(seconds/60, "minute")
	default:
		return pluralize(seconds, "second")
	}
}

func pluralize(n uint32, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func encodeDuration(formatted string) ([]byte, error) {
	v, unit, err := parseWithUnit(formatted)
	if err != nil {
		return nil, err
	}
	mult, ok := durationUnits[unit]
	if !ok {
		return nil, bderrors.New(bderrors.KindInvalidValue, "unrecognized duration unit in %q", formatted)
	}
	return uint32ToBE(uint32(math.Round(v*mult)), 4), nil
}

// --- timestamp (Unix uint32 seconds) ---

func decodeTimestamp(value []byte) (string, any, error) {
	if len(value) != 4 {
		return "", nil, bderrors.New(bderrors.KindInvalidValue, "timestamp requires 4 bytes, got %d", len(value))
	}
	secs := beToUint32(value)
	t := time.Unix(int64(secs), 0).UTC()
	return t.Format("2006-01-02 15:04:05"), t, nil
}

func encodeTimestamp(formatted string) ([]byte, error) {
	s := strings.TrimSpace(formatted)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32ToBE(uint32(n), 4), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return uint32ToBE(uint32(t.Unix()), 4), nil
		}
	}
	return nil, bderrors.New(bderrors.KindInvalidValue, "unrecognized timestamp %q", formatted)
}

// --- shared scaling helper ---

type scaleUnit struct {
	factor float64
	name   string
}

// formatScaled picks the largest unit that divides v cleanly (an integer
// multiple), falling back to the smallest unit otherwise, per spec.md
// §4.3's "prefers MHz/Mbps when the value divides cleanly" rule.
func formatScaled(v float64, units []scaleUnit) string {
	for _, u := range units[:len(units)-1] {
		if v != 0 && math.Mod(v, u.factor) == 0 {
			scaled := v / u.factor
			return trimFloat(scaled) + " " + u.name
		}
	}
	last := units[len(units)-1]
	return trimFloat(v/last.factor) + " " + last.name
}

func trimFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return s
}
