// Package policy holds the single inclusion decision shared by every
// collector. Whatever the annotation source, the decision contract is one
// pure function over "event set or absent".
package policy

import (
	"regexp"
	"strings"

	"demclean/internal/model"
)

// logKillstreakRe matches the shared-log 'Kill Streak:<n>' event type
var logKillstreakRe = regexp.MustCompile(`Kill\sStreak:\d+`)

// KillstreakMatcher reports whether a label denotes a killstreak event.
// The two annotation sources spell killstreaks differently, so each
// collector supplies its own matcher.
type KillstreakMatcher func(label string) bool

// SidecarKillstreak matches the sidecar 'Killstreak' event type, any casing
func SidecarKillstreak(label string) bool {
	return strings.EqualFold(label, "killstreak")
}

// LogKillstreak matches the shared-log 'Kill Streak:<n>' event type
func LogKillstreak(label string) bool {
	return logKillstreakRe.MatchString(label)
}

// Decision is the outcome of the inclusion policy for one demo
type Decision struct {
	Include bool
	Reason  model.Reason
}

// Decide applies the inclusion policy to one demo's event set. A nil set
// means no annotations reference the demo at all.
//
// Rules, in priority order:
//  1. no events -> include. Pristine demos are always kept.
//  2. events present, killstreakOnly false -> exclude. By default any
//     annotation disqualifies a demo.
//  3. events present, killstreakOnly true -> include only when every
//     label is a killstreak.
func Decide(events *model.EventSet, killstreakOnly bool, isKillstreak KillstreakMatcher) Decision {
	if events == nil {
		return Decision{Include: true, Reason: model.ReasonNoEvents}
	}

	if !killstreakOnly {
		return Decision{Include: false, Reason: model.ReasonHasEvents}
	}

	for _, label := range events.Labels() {
		if !isKillstreak(label) {
			return Decision{Include: false, Reason: model.ReasonHasCustomBookmark}
		}
	}
	return Decision{Include: true, Reason: model.ReasonOnlyKillstreaks}
}
