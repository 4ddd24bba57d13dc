package github

import (
	"errors"

	"github.com/tidwall/gjson"
)

type contributorsResponse []contributorsResponseItem

type contributorsResponseItem struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Type      string `json:"type"`
}

// Avatars returns avatar urls of at most max first contributors.
// Contributors without avatar (anonymous ones) are skipped.
func (r contributorsResponse) Avatars(max int) []string {
	avatars := make([]string, 0, max)
	for _, c := range r {
		if len(avatars) == max {
			break
		}
		if c.AvatarURL == "" {
			continue
		}
		avatars = append(avatars, c.AvatarURL)
	}

	return avatars
}

// countItems returns number of elements of json array.
func countItems(body []byte) (int, error) {
	if !gjson.ValidBytes(body) {
		return 0, errors.New("invalid json")
	}

	result := gjson.ParseBytes(body)
	if !result.IsArray() {
		return 0, errors.New("json array expected")
	}

	return int(result.Get("#").Int()), nil
}
