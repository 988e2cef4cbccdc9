package maven

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/artifactitems/pkg/cache"
	"github.com/matzehuels/artifactitems/pkg/coord"
	"github.com/matzehuels/artifactitems/pkg/integrations"
)

// DefaultBaseURL is Maven Central's repository root.
const DefaultBaseURL = "https://repo1.maven.org/maven2"

// Client checks artifacts against one remote repository.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client for the repository at baseURL whose answers are
// cached in c for ttl. An empty baseURL selects [DefaultBaseURL].
func NewClient(c cache.Cache, ttl time.Duration, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(c, "maven:", ttl, nil),
		baseURL: baseURL,
	}
}

// BaseURL returns the repository root the client queries.
func (c *Client) BaseURL() string { return c.baseURL }

// ArtifactURL returns the URL the dependency plugin downloads for a.
func (c *Client) ArtifactURL(a coord.Coordinate) string {
	return integrations.JoinURL(c.baseURL, a.Dir(), a.ArtifactID+"-"+a.Version+"."+a.Type)
}

type existence struct {
	Found bool `json:"found"`
}

// Exists reports whether the repository serves the file a declaration for a
// would download.
//
// A 404 is a definite "no" and is not an error. Transport failures and 5xx
// responses are retried; if they persist the error wraps
// [integrations.ErrNetwork].
func (c *Client) Exists(ctx context.Context, a coord.Coordinate, refresh bool) (bool, error) {
	url := c.ArtifactURL(a)

	var res existence
	err := c.Cached(ctx, url, refresh, &res, func() error {
		err := c.Head(ctx, url)
		switch {
		case err == nil:
			res.Found = true
		case errors.Is(err, integrations.ErrNotFound):
			res.Found = false
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return res.Found, nil
}
