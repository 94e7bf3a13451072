package view

import (
	"regexp"
	"strings"

	"github.com/clarkher/piggerTimeLine/internal/models"
)

// ColoringPolicy selects how a row's bar color is resolved.
type ColoringPolicy string

const (
	// ColorByPerson resolves row hex, then color alias, then the
	// person's default, then the fallback.
	ColorByPerson ColoringPolicy = "person"
	// ColorByStatus resolves from the status table, with milestones
	// always taking the milestone accent.
	ColorByStatus ColoringPolicy = "status"
)

// Valid reports whether p names a known policy.
func (p ColoringPolicy) Valid() bool {
	return p == ColorByPerson || p == ColorByStatus
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// resolveColor returns the bar color for a row under the given policy.
func resolveColor(r models.Row, policy ColoringPolicy, p *Palette) string {
	if policy == ColorByStatus {
		if r.IsMilestone() {
			return p.Milestone
		}
		if c, ok := p.Statuses[r.Status]; ok {
			return c
		}
		return p.Fallback
	}

	c := strings.TrimSpace(r.Color)
	if hexColorRe.MatchString(c) {
		return c
	}
	if hex, ok := p.Aliases[strings.ToLower(c)]; ok {
		return hex
	}
	if hex, ok := p.People[r.Person]; ok {
		return hex
	}
	return p.Fallback
}
