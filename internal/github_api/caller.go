// Package githubapi provides a caller for the GitHub GraphQL API, used to
// resolve the tracked account from its access token and to fetch the
// per-day contribution calendar for a date range. The caller handles
// authentication and GitHub's rate limit headers; persistence belongs to
// the callers.
package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jakekohl/portfolio/cfg"
	"github.com/jakekohl/portfolio/pkg/log"
)

const viewerQuery = `
query {
  viewer {
    login
  }
}`

const contributionsQuery = `
query($username: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $username) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

type Caller struct {
	Logger log.Logger
	Config *cfg.Config
}

func NewCaller(logger log.Logger, config *cfg.Config) *Caller {
	return &Caller{
		Logger: logger,
		Config: config,
	}
}

// HandleRateLimit inspects the rate limit headers GitHub attaches to every
// response and reports when the caller has to back off.
func (c *Caller) HandleRateLimit(ctx context.Context, resp *http.Response) (bool, error) {
	rateRemaining := resp.Header.Get("X-RateLimit-Remaining")

	if resp.StatusCode == http.StatusForbidden && rateRemaining == "0" {
		resetTimeStr := resp.Header.Get("X-RateLimit-Reset")
		resetTimeInt, err := strconv.ParseInt(resetTimeStr, 10, 64)
		if err != nil {
			c.Logger.Warn(ctx, "Rate limit hit and reset time is unknown")
			return true, fmt.Errorf("github api rate limit reached")
		}

		resetTime := time.Unix(resetTimeInt, 0)
		c.Logger.Warn(ctx, "Rate limit hit! GitHub API resets at %v", resetTime.Format(time.RFC3339))
		return true, fmt.Errorf("github api rate limit reached, resets at %v", resetTime.Format(time.RFC3339))
	}

	return false, nil
}

// CallViewer resolves the login of the account owning the access token.
func (c *Caller) CallViewer(ctx context.Context) (string, error) {
	var result ViewerResponse
	if err := c.post(ctx, GraphQLRequest{Query: viewerQuery}, &result); err != nil {
		return "", err
	}

	if len(result.Errors) > 0 {
		return "", fmt.Errorf("github api error: %s", result.Errors[0].Message)
	}

	if result.Data.Viewer.Login == "" {
		return "", fmt.Errorf("github api returned an empty viewer login")
	}

	return result.Data.Viewer.Login, nil
}

// CallContributions fetches the flat per-day contribution series for a user
// between from and to. GitHub caps a single request at one year of data, so
// callers must keep the range within a calendar year.
func (c *Caller) CallContributions(ctx context.Context, username string, from, to time.Time) ([]ContributionDay, error) {
	req := GraphQLRequest{
		Query: contributionsQuery,
		Variables: map[string]interface{}{
			"username": username,
			"from":     from.Format("2006-01-02T15:04:05Z"),
			"to":       to.Format("2006-01-02T15:04:05Z"),
		},
	}

	var result ContributionsResponse
	if err := c.post(ctx, req, &result); err != nil {
		return nil, err
	}

	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("github api error: %s", result.Errors[0].Message)
	}

	if result.Data.User == nil {
		return nil, fmt.Errorf("github user %q not found", username)
	}

	// Flatten the week-grouped calendar into chronological days
	var days []ContributionDay
	for _, week := range result.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		days = append(days, week.ContributionDays...)
	}

	c.Logger.Info(ctx, "Fetched %d contribution days for %s between %s and %s",
		len(days), username, from.Format("2006-01-02"), to.Format("2006-01-02"))

	return days, nil
}

func (c *Caller) post(ctx context.Context, payload GraphQLRequest, out interface{}) error {
	if c.Config.GithubApi.AccessToken == "" {
		return fmt.Errorf("github access token is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Config.GithubApi.GraphqlUrl, bytes.NewReader(body))
	if err != nil {
		c.Logger.Error(ctx, "Cannot build request: %v", err)
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Config.GithubApi.AccessToken))

	client := &http.Client{
		Timeout: 30 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		c.Logger.Error(ctx, "cannot send request: %v", err)
		return err
	}
	defer resp.Body.Close()

	isRateLimited, rateLimitErr := c.HandleRateLimit(ctx, resp)
	if isRateLimited {
		return rateLimitErr
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot received response: %v", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response: %w", err)
	}

	return nil
}
