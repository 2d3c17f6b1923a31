// package formatter renders tracks and playback positions for display
package formatter

import (
	"fmt"
	"math"
)

// fingerprintLen is how many leading hash characters identify a track on screen.
const fingerprintLen = 8

// Clock renders a duration in seconds as zero-padded mm:ss.
//
// Minutes are floor(d/60) and seconds are round(d mod 60). Every caller goes
// through this single implementation so queue labels and the status line can
// never disagree on a clock.
func Clock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	m := int(math.Floor(seconds / 60))
	s := int(math.Round(math.Mod(seconds, 60)))
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Fingerprint shortens a content hash to its leading characters for display.
func Fingerprint(hash string) string {
	if len(hash) <= fingerprintLen {
		return hash
	}
	return hash[:fingerprintLen]
}

// Label builds the single display string for a track: name, short hash
// fingerprint, and mm:ss duration.
func Label(name, hash string, duration float64) string {
	return fmt.Sprintf("%s [%s] (%s)", name, Fingerprint(hash), Clock(duration))
}

// Placeholder is the label for a hash with no catalog entry. The catalog and
// queue refresh on independent timers, so a queued hash may briefly be unknown.
func Placeholder(hash string) string {
	return fmt.Sprintf("unknown track [%s]", Fingerprint(hash))
}
