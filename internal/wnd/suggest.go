package wnd

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

var windowKeys = []string{
	"WINDOWTYPE",
	"SCREENRECT",
	"NAME",
	"STATUS",
	"STYLE",
	"SYSTEMCALLBACK",
	"INPUTCALLBACK",
	"TOOLTIPCALLBACK",
	"DRAWCALLBACK",
	"FONT",
	"HEADERTEMPLATE",
	"TOOLTIPDELAY",
	"TOOLTIPTEXT",
	"TEXT",
	"TEXTCOLOR",
	"ENABLEDDRAWDATA",
	"DISABLEDDRAWDATA",
	"HILITEDRAWDATA",
	"WINDOW",
	"END",
}

var layoutKeys = []string{
	"LAYOUTINIT",
	"LAYOUTUPDATE",
	"LAYOUTSHUTDOWN",
	"ENDLAYOUTBLOCK",
}

var topLevelKeys = []string{
	"FILE_VERSION",
	"STARTLAYOUTBLOCK",
	"WINDOW",
}

func windowTypeNames() []string {
	names := make([]string, 0, len(typeNames))
	for name := range typeNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// suggest returns the candidate closest to word, or "" when nothing is
// within edit distance.
func suggest(word string, candidates []string) string {
	if len(word) < 3 {
		return ""
	}
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(word, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
