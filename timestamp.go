package discordstyle

import (
	"math"
	"strconv"
	"time"
)

// TimeStyle selects how the client formats a smart timestamp.
// The zero value leaves the choice to the client.
type TimeStyle int

const (
	TimeStyleDefault TimeStyle = iota
	TimeStyleShortTime
	TimeStyleLongTime
	TimeStyleShortDate
	TimeStyleLongDate
	TimeStyleShortDateTime
	TimeStyleLongDateTime
	TimeStyleRelative
)

// timeStyleCodes 样式到协议字符的静态映射
var timeStyleCodes = map[TimeStyle]string{
	TimeStyleDefault:       "",
	TimeStyleShortTime:     "t",
	TimeStyleLongTime:      "T",
	TimeStyleShortDate:     "d",
	TimeStyleLongDate:      "D",
	TimeStyleShortDateTime: "f",
	TimeStyleLongDateTime:  "F",
	TimeStyleRelative:      "R",
}

var timeStyleNames = map[TimeStyle]string{
	TimeStyleDefault:       "default",
	TimeStyleShortTime:     "short_time",
	TimeStyleLongTime:      "long_time",
	TimeStyleShortDate:     "short_date",
	TimeStyleLongDate:      "long_date",
	TimeStyleShortDateTime: "short_date_time",
	TimeStyleLongDateTime:  "long_date_time",
	TimeStyleRelative:      "relative",
}

// Code returns the one-letter wire code, "" for TimeStyleDefault.
func (s TimeStyle) Code() string {
	return timeStyleCodes[s]
}

// String returns the name of the style.
func (s TimeStyle) String() string {
	if name, ok := timeStyleNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the declared styles.
func (s TimeStyle) Valid() bool {
	_, ok := timeStyleCodes[s]
	return ok
}

// ParseTimeStyle accepts a wire code ("R") or a style name ("relative").
// The empty string yields TimeStyleDefault.
func ParseTimeStyle(s string) (TimeStyle, error) {
	for style, code := range timeStyleCodes {
		if s == code {
			return style, nil
		}
	}
	for style, name := range timeStyleNames {
		if s == name {
			return style, nil
		}
	}
	return TimeStyleDefault, validationError(CodeInvalidTimeStyle).
		With("style", s).
		Errorf("unknown timestamp style %q", s)
}

const halfSecond = int(time.Second / 2)

// TimeStamp is a smart timestamp, rendered by each client in its own locale
// and timezone.
type TimeStamp struct {
	time  time.Time
	style TimeStyle
}

// NewTimeStamp creates a timestamp from Unix seconds (any Go integer type),
// a time.Time or a *time.Time. The instant is stored in UTC.
func NewTimeStamp(t any, style TimeStyle) (*TimeStamp, error) {
	if !style.Valid() {
		return nil, validationError(CodeInvalidTimeStyle).
			With("style", int(style)).
			Errorf("unknown timestamp style %d", int(style))
	}
	tm, err := toTime(t)
	if err != nil {
		return nil, err
	}
	return &TimeStamp{time: tm.UTC(), style: style}, nil
}

func toTime(t any) (time.Time, error) {
	switch v := t.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return *v, nil
		}
	case int:
		return time.Unix(int64(v), 0), nil
	case int8:
		return time.Unix(int64(v), 0), nil
	case int16:
		return time.Unix(int64(v), 0), nil
	case int32:
		return time.Unix(int64(v), 0), nil
	case int64:
		return time.Unix(v, 0), nil
	case uint:
		return unsignedTime(uint64(v), t)
	case uint8:
		return time.Unix(int64(v), 0), nil
	case uint16:
		return time.Unix(int64(v), 0), nil
	case uint32:
		return time.Unix(int64(v), 0), nil
	case uint64:
		return unsignedTime(v, t)
	}
	return time.Time{}, validationError(CodeInvalidTime).
		With("time", t).
		Errorf("the time must be an integer or a time.Time, got %T", t)
}

func unsignedTime(v uint64, t any) (time.Time, error) {
	if v > math.MaxInt64 {
		return time.Time{}, validationError(CodeInvalidTime).
			With("time", t).
			Errorf("the time %d is out of range", v)
	}
	return time.Unix(int64(v), 0), nil
}

// Time returns the instant in UTC.
func (ts *TimeStamp) Time() time.Time {
	return ts.time
}

// Style returns the display style.
func (ts *TimeStamp) Style() TimeStyle {
	return ts.style
}

// Unix returns the rendered Unix seconds, rounded to the nearest second.
// Exact half seconds round to the even second.
func (ts *TimeStamp) Unix() int64 {
	sec, ns := ts.time.Unix(), ts.time.Nanosecond()
	if ns > halfSecond || (ns == halfSecond && sec%2 != 0) {
		sec++
	}
	return sec
}

// Render implements Node.
func (ts *TimeStamp) Render() string {
	out := "<t:" + strconv.FormatInt(ts.Unix(), 10)
	if code := ts.style.Code(); code != "" {
		out += ":" + code
	}
	return out + ">"
}

// String implements fmt.Stringer.
func (ts *TimeStamp) String() string {
	return ts.Render()
}
