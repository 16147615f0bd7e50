package codec

import (
	"context"
	"time"

	pertype "github.com/hernantas/pertype"
	"github.com/hernantas/pertype/dsl"
)

// TimeRFC3339 returns a codec between RFC 3339 timestamp strings and
// time.Time values. Encoding is canonical: UTC with nanosecond precision.
func TimeRFC3339() pertype.Codec[string, time.Time] {
	return timeRFC3339{}
}

type timeRFC3339 struct{}

func (timeRFC3339) In() pertype.Schema[string]     { return dsl.String() }
func (timeRFC3339) Out() pertype.Schema[time.Time] { return dsl.Date() }

func (timeRFC3339) Decode(_ context.Context, v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, pertype.NewUnsupportedValue(v)
	}
	return t, nil
}

func (timeRFC3339) Encode(_ context.Context, v time.Time) (string, error) {
	return v.UTC().Format(time.RFC3339Nano), nil
}
