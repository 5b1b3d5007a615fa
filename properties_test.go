package rds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Observe never validates on a single reception, and always validates once
// the same value arrives twice in a row (spec.md §8).
func TestPendingRequiresRepetition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var p Pending[uint16]
		v := rapid.Uint16().Draw(t, "v")

		_, ok := p.Observe(v)
		assert.False(t, ok, "single reception must never validate")

		got, ok := p.Observe(v)
		assert.True(t, ok, "repeating the same value must validate")
		assert.Equal(t, v, got)
	})
}

// A value that changes between two receptions never validates until it
// repeats.
func TestPendingRejectsChangingValues(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Uint8().Draw(t, "a")
		b := rapid.Uint8().Draw(t, "b")
		if a == b {
			t.Skip("need distinct values")
		}

		var p Pending[uint8]
		p.Observe(a)
		_, ok := p.Observe(b)
		assert.False(t, ok, "a differing second reception must not validate")
	})
}

// decodeMJD never panics for any byte-range input and produces a time
// whose hour/minute match the UTC fields fed in before the offset is
// applied (spec.md §8, IEC 62106 Annex G).
func TestDecodeMJDRoundTripsUTCFields(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mjd := uint32(rapid.IntRange(15079, 99999).Draw(t, "mjd"))
		hour := uint8(rapid.IntRange(0, 23).Draw(t, "hour"))
		minute := uint8(rapid.IntRange(0, 59).Draw(t, "minute"))

		got := decodeMJD(mjd, hour, minute, 0)

		utc := got.In(time.UTC)
		assert.Equal(t, int(hour), utc.Hour())
		assert.Equal(t, int(minute), utc.Minute())
	})
}

// The station offset only relabels the display zone; it must never shift
// the absolute instant the MJD/hour/minute fields represent.
func TestDecodeMJDOffsetDoesNotShiftAbsoluteInstant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mjd := uint32(rapid.IntRange(15079, 99999).Draw(t, "mjd"))
		hour := uint8(rapid.IntRange(0, 23).Draw(t, "hour"))
		minute := uint8(rapid.IntRange(0, 59).Draw(t, "minute"))
		offset := uint8(rapid.IntRange(0, 63).Draw(t, "offset"))

		withOffset := decodeMJD(mjd, hour, minute, offset)
		withoutOffset := decodeMJD(mjd, hour, minute, 0)

		assert.Equal(t, withoutOffset.Unix(), withOffset.Unix(),
			"utcOffset must not change the absolute instant")

		utc := withOffset.In(time.UTC)
		assert.Equal(t, int(hour), utc.Hour())
		assert.Equal(t, int(minute), utc.Minute())
	})
}

// bitCursor.read never returns more bits than requested, and fails once the
// requested span runs past the end of the available slots, regardless of
// how many slots are supplied (spec.md §4.8.3).
func TestBitCursorStaysWithinBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 4).Draw(t, "n")
		slots := make([]uint32, n)
		for i := range slots {
			slots[i] = uint32(rapid.IntRange(0, (1<<28)-1).Draw(t, "slot"))
		}

		cursor := newBitCursor(slots)
		total := n * tmcOptionalBits

		read := 0
		for {
			width := rapid.IntRange(1, 16).Draw(t, "width")
			_, ok := cursor.read(width)
			if !ok {
				assert.Greater(t, read+width, total)
				break
			}
			read += width
			assert.LessOrEqual(t, read, total)
		}
	})
}
