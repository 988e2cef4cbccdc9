// Package integrations provides the shared HTTP client for remote repositories.
//
// # Overview
//
// [Client] wraps net/http with the behavior every remote check needs:
//
//   - Default headers applied to every request
//   - Status classification: 404 becomes [ErrNotFound], 5xx and transport
//     failures become retryable [ErrNetwork] errors
//   - Retry with exponential backoff (see [httputil.RetryWithBackoff])
//   - Result caching in a [cache.Cache] under a per-client namespace
//   - Cache and request events reported to [observability] hooks
//
// Repository-specific clients such as [maven] embed a Client:
//
//	c := integrations.NewClient(backend, "maven:", 24*time.Hour, nil)
//	var found bool
//	err := c.Cached(ctx, key, false, &found, func() error { ... })
//
// [maven]: github.com/matzehuels/artifactitems/pkg/integrations/maven
// [cache.Cache]: github.com/matzehuels/artifactitems/pkg/cache.Cache
// [observability]: github.com/matzehuels/artifactitems/pkg/observability
// [httputil.RetryWithBackoff]: github.com/matzehuels/artifactitems/pkg/httputil.RetryWithBackoff
package integrations
