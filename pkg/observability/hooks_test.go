package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "maven:")
	c.OnCacheMiss(ctx, "maven:")
	c.OnCacheSet(ctx, "maven:", 16)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "HEAD", "repo1.maven.org", "/maven2/g/a/1/a-1.jar")
	h.OnResponse(ctx, "HEAD", "repo1.maven.org", "/maven2/g/a/1/a-1.jar", 200, time.Second)
	h.OnError(ctx, "HEAD", "repo1.maven.org", "/maven2/g/a/1/a-1.jar", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testCacheHooks{}
	SetCacheHooks(custom)
	SetCacheHooks(nil)

	if Cache() != custom {
		t.Error("SetCacheHooks(nil) should be ignored")
	}
}

type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
