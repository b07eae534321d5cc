package types

import (
	"time"
)

const (
	// DurationSignature is the signature byte for a Duration structure
	DurationSignature = 0x45
	// DateSignature is the signature byte for a Date structure
	DateSignature = 0x44
	// TimeSignature is the signature byte for a Time structure
	TimeSignature = 0x54
	// LocalTimeSignature is the signature byte for a LocalTime structure
	LocalTimeSignature = 0x74
	// DateTimeSignature is the signature byte for a DateTime structure
	DateTimeSignature = 0x46
	// LocalDateTimeSignature is the signature byte for a LocalDateTime structure
	LocalDateTimeSignature = 0x64
	// DateTimeZoneIdSignature is the signature byte for a DateTimeZoneId structure
	DateTimeZoneIdSignature = 0x66
)

// Duration Represents an isolated, potentially month-granular span of time
type Duration struct {
	Months  int64
	Days    int64
	Seconds int64
	Nanos   int64
}

// Kind gets the classification tag for the value
func (Duration) Kind() Kind { return KindDuration }

// Signature gets the signature byte for the struct
func (d Duration) Signature() int { return DurationSignature }

// AllFields gets the fields of the struct in wire order
func (d Duration) AllFields() []interface{} {
	return []interface{}{d.Months, d.Days, d.Seconds, d.Nanos}
}

// Date Represents a calendar date as days since the Unix epoch
type Date struct {
	Days int64
}

// Kind gets the classification tag for the value
func (Date) Kind() Kind { return KindDate }

// Signature gets the signature byte for the struct
func (d Date) Signature() int { return DateSignature }

// AllFields gets the fields of the struct in wire order
func (d Date) AllFields() []interface{} {
	return []interface{}{d.Days}
}

// Time gets the date as a UTC midnight instant
func (d Date) Time() time.Time {
	return time.Unix(d.Days*86400, 0).UTC()
}

// Time Represents a wall-clock time with a UTC offset
type Time struct {
	Nanos        int64
	TZOffsetSecs int64
}

// Kind gets the classification tag for the value
func (Time) Kind() Kind { return KindTime }

// Signature gets the signature byte for the struct
func (t Time) Signature() int { return TimeSignature }

// AllFields gets the fields of the struct in wire order
func (t Time) AllFields() []interface{} {
	return []interface{}{t.Nanos, t.TZOffsetSecs}
}

// Time gets the value as a clock time on the Unix epoch day in its zone
func (t Time) Time() time.Time {
	zone := time.FixedZone("", int(t.TZOffsetSecs))
	return time.Unix(0, t.Nanos).In(zone)
}

// LocalTime Represents a wall-clock time without a zone
type LocalTime struct {
	Nanos int64
}

// Kind gets the classification tag for the value
func (LocalTime) Kind() Kind { return KindLocalTime }

// Signature gets the signature byte for the struct
func (t LocalTime) Signature() int { return LocalTimeSignature }

// AllFields gets the fields of the struct in wire order
func (t LocalTime) AllFields() []interface{} {
	return []interface{}{t.Nanos}
}

// Time gets the value as a clock time on the Unix epoch day in UTC
func (t LocalTime) Time() time.Time {
	return time.Unix(0, t.Nanos).UTC()
}

// DateTime Represents an absolute instant paired with a UTC offset
type DateTime struct {
	Seconds      int64
	Nanos        int64
	TZOffsetSecs int64
}

// NewDateTime builds a DateTime from a native time value, preserving its offset.
func NewDateTime(t time.Time) DateTime {
	_, offset := t.Zone()
	return DateTime{
		Seconds:      t.Unix(),
		Nanos:        int64(t.Nanosecond()),
		TZOffsetSecs: int64(offset),
	}
}

// Kind gets the classification tag for the value
func (DateTime) Kind() Kind { return KindDateTime }

// Signature gets the signature byte for the struct
func (d DateTime) Signature() int { return DateTimeSignature }

// AllFields gets the fields of the struct in wire order
func (d DateTime) AllFields() []interface{} {
	return []interface{}{d.Seconds, d.Nanos, d.TZOffsetSecs}
}

// Time gets the instant in its fixed offset zone
func (d DateTime) Time() time.Time {
	zone := time.FixedZone("", int(d.TZOffsetSecs))
	return time.Unix(d.Seconds, d.Nanos).In(zone)
}

// LocalDateTime Represents a date and clock time without a zone
type LocalDateTime struct {
	Seconds int64
	Nanos   int64
}

// Kind gets the classification tag for the value
func (LocalDateTime) Kind() Kind { return KindLocalDateTime }

// Signature gets the signature byte for the struct
func (d LocalDateTime) Signature() int { return LocalDateTimeSignature }

// AllFields gets the fields of the struct in wire order
func (d LocalDateTime) AllFields() []interface{} {
	return []interface{}{d.Seconds, d.Nanos}
}

// Time gets the local instant interpreted as UTC
func (d LocalDateTime) Time() time.Time {
	return time.Unix(d.Seconds, d.Nanos).UTC()
}

// DateTimeZoneId Represents an absolute instant paired with an IANA zone name
type DateTimeZoneId struct {
	Seconds int64
	Nanos   int64
	ZoneId  string
}

// Kind gets the classification tag for the value
func (DateTimeZoneId) Kind() Kind { return KindDateTimeZoneId }

// Signature gets the signature byte for the struct
func (d DateTimeZoneId) Signature() int { return DateTimeZoneIdSignature }

// AllFields gets the fields of the struct in wire order
func (d DateTimeZoneId) AllFields() []interface{} {
	return []interface{}{d.Seconds, d.Nanos, d.ZoneId}
}

// Time gets the instant in its named zone. The zone must be resolvable
// in the local zone database.
func (d DateTimeZoneId) Time() (time.Time, error) {
	loc, err := time.LoadLocation(d.ZoneId)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(d.Seconds, d.Nanos).In(loc), nil
}
