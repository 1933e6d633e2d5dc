package services

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"

	"codenexus/config"
	"codenexus/models/curriculum"

	"github.com/go-resty/resty/v2"
)

// PlatformClient fetches a user's publicly visible solved-problem slugs from
// the external judge platforms. No credentials are involved; both endpoints
// are public profile data.
type PlatformClient struct {
	client *resty.Client
}

func NewPlatformClient() *PlatformClient {
	return &PlatformClient{client: resty.New()}
}

var gfgProblemLinkRe = regexp.MustCompile(`/problems/([a-z0-9-]+)`)

// SolvedByUser returns the solved slugs for a username on one platform. An
// unreachable or unparsable profile yields an empty list and an error the
// caller may log; user-facing flows never surface it.
func (p *PlatformClient) SolvedByUser(platform, username string) ([]string, error) {
	if username == "" {
		return nil, nil
	}

	switch platform {
	case curriculum.PlatformLeetCode:
		return p.leetcodeSolved(username)
	case curriculum.PlatformGfg:
		return p.gfgSolved(username)
	default:
		return nil, fmt.Errorf("unknown platform: %s", platform)
	}
}

// leetcodeSolved queries the public GraphQL endpoint for recent accepted
// submissions
func (p *PlatformClient) leetcodeSolved(username string) ([]string, error) {
	body := map[string]interface{}{
		"query": `query recentAcSubmissions($username: String!, $limit: Int!) {
			recentAcSubmissionList(username: $username, limit: $limit) { titleSlug }
		}`,
		"variables": map[string]interface{}{"username": username, "limit": 50},
	}

	resp, err := p.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(config.AppConfig.LeetCodeApiURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("leetcode profile fetch failed: %d", resp.StatusCode())
	}

	var parsed struct {
		Data struct {
			RecentAcSubmissionList []struct {
				TitleSlug string `json:"titleSlug"`
			} `json:"recentAcSubmissionList"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		log.Printf("Failed to parse LeetCode response for %s: %v", username, err)
		return nil, err
	}

	slugs := make([]string, 0, len(parsed.Data.RecentAcSubmissionList))
	for _, s := range parsed.Data.RecentAcSubmissionList {
		slugs = append(slugs, s.TitleSlug)
	}
	return slugs, nil
}

// gfgSolved scrapes problem links from the public practice profile page
func (p *PlatformClient) gfgSolved(username string) ([]string, error) {
	resp, err := p.client.R().
		Get(fmt.Sprintf("%s/%s/practice", config.AppConfig.GfgProfileURL, username))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("gfg profile fetch failed: %d", resp.StatusCode())
	}

	matches := gfgProblemLinkRe.FindAllStringSubmatch(resp.String(), -1)
	seen := map[string]bool{}
	var slugs []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			slugs = append(slugs, m[1])
		}
	}
	return slugs, nil
}
