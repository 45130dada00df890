package util

import "time"

// ISOTime is a UTC timestamp that travels as RFC 3339 text.
type ISOTime struct {
	time.Time
}

const layout = time.RFC3339

func NewISOTime(t time.Time) ISOTime {
	return ISOTime{Time: t.UTC()}
}

func (it ISOTime) MarshalJSON() ([]byte, error) {
	if it.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + it.String() + `"`), nil
}

func (it ISOTime) String() string {
	if it.IsZero() {
		return ""
	}
	return it.UTC().Format(layout)
}
