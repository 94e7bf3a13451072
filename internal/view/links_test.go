package view

import (
	"testing"

	"github.com/clarkher/piggerTimeLine/internal/models"
)

func TestResolveLink(t *testing.T) {
	cases := []struct {
		name           string
		row            models.Row
		wantHref       string
		wantActionable bool
	}{
		{"https url", models.Row{URL: "https://tracker/42"}, "https://tracker/42", true},
		{"http url", models.Row{URL: "http://wiki/page"}, "http://wiki/page", true},
		{"url wins over note", models.Row{URL: "https://a", Note: "see https://b"}, "https://a", true},
		{"note as bare url", models.Row{Note: "https://y"}, "https://y", true},
		{"note mentioning a url stays inert", models.Row{Note: "see https://y"}, "see https://y", false},
		{"non-http scheme stays inert", models.Row{URL: "ftp://server/file"}, "ftp://server/file", false},
		{"plain note", models.Row{Note: "ask PM first"}, "ask PM first", false},
		{"nothing", models.Row{}, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			link := ResolveLink(tc.row)
			if link.Href != tc.wantHref {
				t.Errorf("got href %q, want %q", link.Href, tc.wantHref)
			}
			if link.Actionable != tc.wantActionable {
				t.Errorf("got actionable %v, want %v", link.Actionable, tc.wantActionable)
			}
		})
	}
}
