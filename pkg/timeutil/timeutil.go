package timeutil

import (
	"regexp"
	"strconv"
	"strings"
)

// rangePattern matches "hh:mm:ss - hh:mm:ss" with optional spaces around the hyphen.
var rangePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\s*-\s*\d{2}:\d{2}:\d{2}$`)

const (
	formatMessage    = `Please use "hh:mm:ss - hh:mm:ss" format.`
	orderMessage     = "Start duration can't be greater than the End duration."
	duplicateMessage = "The timestamp has been added."
)

// ErrorKind identifies why a range was rejected.
type ErrorKind int

const (
	FormatError ErrorKind = iota + 1
	OrderError
	DuplicateError
)

func (k ErrorKind) String() string {
	switch k {
	case FormatError:
		return "format"
	case OrderError:
		return "order"
	case DuplicateError:
		return "duplicate"
	}
	return "unknown"
}

// ValidationError is returned for user input that cannot be accepted as a range.
// The message is meant to be shown to the user as-is.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TimeRange is a start/end pair of hh:mm:ss durations.
type TimeRange struct {
	Start string
	End   string
}

func (r TimeRange) String() string {
	return r.Start + " - " + r.End
}

// DigitValue converts an hh:mm:ss duration to the number formed by its digits,
// e.g. "01:02:03" becomes 10203. Minutes and seconds are not range checked.
func DigitValue(duration string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(duration, ":", ""), 10, 64)
}

// ParseRange parses "hh:mm:ss - hh:mm:ss" into a TimeRange.
// Start must compare strictly below End by DigitValue.
func ParseRange(raw string) (TimeRange, error) {
	trimmed := strings.TrimSpace(raw)
	if !rangePattern.MatchString(trimmed) {
		return TimeRange{}, &ValidationError{Kind: FormatError, Message: formatMessage}
	}

	start, end, _ := strings.Cut(trimmed, "-")
	r := TimeRange{Start: strings.TrimSpace(start), End: strings.TrimSpace(end)}

	startValue, err := DigitValue(r.Start)
	if err != nil {
		return TimeRange{}, &ValidationError{Kind: FormatError, Message: formatMessage}
	}
	endValue, err := DigitValue(r.End)
	if err != nil {
		return TimeRange{}, &ValidationError{Kind: FormatError, Message: formatMessage}
	}
	if startValue >= endValue {
		return TimeRange{}, &ValidationError{Kind: OrderError, Message: orderMessage}
	}

	return r, nil
}

// RangeSet collects accepted ranges for one run and rejects exact duplicates.
type RangeSet struct {
	ranges []TimeRange
	seen   map[TimeRange]struct{}
}

// Validate parses raw and checks it against the ranges accepted so far.
// It does not add the range.
func (s *RangeSet) Validate(raw string) (TimeRange, error) {
	r, err := ParseRange(raw)
	if err != nil {
		return TimeRange{}, err
	}
	if _, ok := s.seen[r]; ok {
		return TimeRange{}, &ValidationError{Kind: DuplicateError, Message: duplicateMessage}
	}
	return r, nil
}

// Add validates raw and appends it to the set.
func (s *RangeSet) Add(raw string) (TimeRange, error) {
	r, err := s.Validate(raw)
	if err != nil {
		return TimeRange{}, err
	}
	if s.seen == nil {
		s.seen = make(map[TimeRange]struct{})
	}
	s.seen[r] = struct{}{}
	s.ranges = append(s.ranges, r)
	return r, nil
}

// Ranges returns the accepted ranges in entry order.
func (s *RangeSet) Ranges() []TimeRange {
	out := make([]TimeRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Len returns the number of accepted ranges.
func (s *RangeSet) Len() int {
	return len(s.ranges)
}
