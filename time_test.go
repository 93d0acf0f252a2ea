package claimable

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/claimable/errors"
	"github.com/iov-one/claimable/weavetest/assert"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	cases := map[string]struct {
		raw      string
		wantErr  *errors.Error
		wantTime UnixTime
	}{
		"unix number": {
			raw:      "12345",
			wantTime: 12345,
		},
		"rfc3339 string": {
			raw:      `"1970-01-01T03:25:45Z"`,
			wantTime: 12345,
		},
		"before epoch": {
			raw:     "-1",
			wantErr: errors.ErrInput,
		},
		"garbage": {
			raw:     `"yesterday"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantTime, got)
			}
		})
	}
}

func TestUnixTimeHelpers(t *testing.T) {
	now := time.Unix(12345, 999)
	u := AsUnixTime(now)
	assert.Equal(t, UnixTime(12345), u)
	assert.Equal(t, UnixTime(12346), u.Add(time.Second))
	assert.Equal(t, int64(12345), u.Time().Unix())
	assert.Nil(t, u.Validate())
	if !errors.ErrState.Is(UnixTime(-5).Validate()) {
		t.Fatal("negative time must be invalid")
	}
}
