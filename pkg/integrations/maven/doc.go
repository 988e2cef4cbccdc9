// Package maven checks artifact availability in a remote Maven repository.
//
// # Overview
//
// maven-dependency-plugin resolves an <artifactItem> to the file
//
//	<base>/<group-path>/<artifactId>/<version>/<artifactId>-<version>.<type>
//
// [Client.Exists] asks the remote repository (Maven Central by default) for
// that file with an HTTP HEAD request, so declarations that would fail at
// build time are caught before they are pasted into a pom.xml. Files that
// carry a classifier (mylib-1.0-sources.jar) are reported missing because the
// generated declaration has no classifier.
//
// # Usage
//
//	client := maven.NewClient(backend, 24*time.Hour, maven.DefaultBaseURL)
//	c, _ := coord.Parse("./junit/junit/4.13/junit-4.13.jar")
//	ok, err := client.Exists(ctx, c, false)
//
// # Caching
//
// Both positive and negative answers are cached for the client TTL under the
// "maven:" namespace, keyed by repository URL. Pass refresh=true to bypass
// the cache.
package maven
