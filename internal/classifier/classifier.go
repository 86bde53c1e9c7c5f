package classifier

import (
	"path"
	"regexp"
	"strings"

	"github.com/MKhiriev/algo-sync/models"
)

// Directory markers identifying the platform of a solution file.
const (
	MarkerBaekjoon    = "백준"
	MarkerProgrammers = "프로그래머스"
)

// BaekjoonTiers lists the tier folder names in the order they are matched.
var BaekjoonTiers = []string{"Bronze", "Silver", "Gold", "Platinum", "Diamond", "Ruby"}

var (
	programmersDigit = regexp.MustCompile(`^[0-5]$`)
	programmersLevel = regexp.MustCompile(`(?i)level\s*([0-5])`)
)

// titleDelimiter separates the problem id from the title in a problem folder
// name, e.g. "1000. A+B".
const titleDelimiter = ". "

// draft is the classification under construction while rules run.
type draft struct {
	segments []string
	kind     string
	folder   string
	result   models.Classification
}

// rule inspects or fills the draft. Returning false rejects the path.
type rule struct {
	name  string
	apply func(d *draft) bool
}

var rules = []rule{
	{name: "blob only", apply: func(d *draft) bool {
		return d.kind == models.TreeItemBlob
	}},
	{name: "platform marker", apply: detectPlatform},
	{name: "not documentation", apply: func(d *draft) bool {
		return !strings.EqualFold(path.Ext(last(d.segments)), ".md")
	}},
	{name: "problem folder", apply: problemFolder},
	{name: "id and title", apply: splitTitle},
	{name: "level", apply: func(d *draft) bool {
		d.result.Level = level(d.result.Platform, d.segments)
		return true
	}},
	{name: "language", apply: func(d *draft) bool {
		d.result.Language = language(last(d.segments))
		return true
	}},
}

// Classify derives a classification from path segments and the entry kind.
// The second return value is false when the path is not a submission.
func Classify(segments []string, kind string) (models.Classification, bool) {
	d := &draft{segments: segments, kind: kind}
	for _, r := range rules {
		if !r.apply(d) {
			return models.Classification{}, false
		}
	}

	return d.result, true
}

// ClassifyPath is [Classify] on a slash-separated path.
func ClassifyPath(p, kind string) (models.Classification, bool) {
	return Classify(strings.Split(p, "/"), kind)
}

// platformMarkers is checked in order; a path carrying both markers is
// Baekjoon.
var platformMarkers = []struct {
	marker   string
	platform models.Platform
}{
	{MarkerBaekjoon, models.PlatformBaekjoon},
	{MarkerProgrammers, models.PlatformProgrammers},
}

func detectPlatform(d *draft) bool {
	for _, pm := range platformMarkers {
		for _, seg := range d.segments {
			if strings.Contains(seg, pm.marker) {
				d.result.Platform = pm.platform
				return true
			}
		}
	}

	return false
}

func problemFolder(d *draft) bool {
	if len(d.segments) < 2 {
		return false
	}

	folder := d.segments[len(d.segments)-2]
	if folder == "" || isTier(folder) {
		return false
	}

	d.folder = folder
	return true
}

func splitTitle(d *draft) bool {
	id, title, found := strings.Cut(d.folder, titleDelimiter)
	if !found {
		d.result.ProblemID, d.result.Title = d.folder, d.folder
		return true
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}

	d.result.ProblemID, d.result.Title = id, strings.TrimSpace(title)
	return true
}

func level(platform models.Platform, segments []string) string {
	switch platform {
	case models.PlatformBaekjoon:
		for _, seg := range segments {
			for _, tier := range BaekjoonTiers {
				if strings.Contains(seg, tier) {
					return seg
				}
			}
		}
	case models.PlatformProgrammers:
		for _, seg := range segments {
			if programmersDigit.MatchString(seg) {
				return "Lv." + seg
			}
		}
		for _, seg := range segments {
			if m := programmersLevel.FindStringSubmatch(seg); m != nil {
				return "Lv." + m[1]
			}
		}
	}

	return models.LevelUnknown
}

func language(fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" || "."+ext == fileName {
		return models.LanguageUnknown
	}

	return strings.ToLower(ext)
}

func isTier(s string) bool {
	for _, tier := range BaekjoonTiers {
		if s == tier {
			return true
		}
	}

	return false
}

func last(segments []string) string {
	if len(segments) == 0 {
		return ""
	}

	return segments[len(segments)-1]
}
