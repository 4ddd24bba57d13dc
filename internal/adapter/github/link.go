package github

import (
	"regexp"
	"strconv"
	"strings"
)

var pageParamRe = regexp.MustCompile(`(?:^|[?&])page=(\d+)`)

// ParseLastPage returns page number of the link with rel="last" relation.
//
// Link header example:
//   <https://api.github.com/repositories/1/contributors?per_page=1&page=2>; rel="next",
//   <https://api.github.com/repositories/1/contributors?per_page=1&page=42>; rel="last"
func ParseLastPage(link string) (int, bool) {
	for _, part := range strings.Split(link, ",") {
		segments := strings.Split(part, ";")
		if len(segments) < 2 {
			continue
		}

		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		target = strings.TrimSuffix(strings.TrimPrefix(target, "<"), ">")

		if !hasRelation(segments[1:], "last") {
			continue
		}

		m := pageParamRe.FindStringSubmatch(target)
		if m == nil {
			return 0, false
		}
		page, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}

		return page, true
	}

	return 0, false
}

func hasRelation(params []string, rel string) bool {
	for _, p := range params {
		kv := strings.SplitN(strings.TrimSpace(p), "=", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) != "rel" {
			continue
		}
		for _, r := range strings.Fields(strings.Trim(strings.TrimSpace(kv[1]), `"`)) {
			if r == rel {
				return true
			}
		}
	}

	return false
}
