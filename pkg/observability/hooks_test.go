package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopCatalogHooks{}
	c.OnParseStart(ctx, "exoplanetEU.csv")
	c.OnParseComplete(ctx, "exoplanetEU.csv", 98, 7000, time.Second, nil)

	ch := NoopCacheHooks{}
	ch.OnCacheHit(ctx, time.Hour)
	ch.OnCacheMiss(ctx, "stale")
	ch.OnCacheSet(ctx, 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "exoplanet.eu", "/catalog/csv")
	h.OnResponse(ctx, "GET", "exoplanet.eu", "/catalog/csv", 200, time.Second)
	h.OnError(ctx, "GET", "exoplanet.eu", "/catalog/csv", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Catalog().(NoopCatalogHooks); !ok {
		t.Error("Catalog() should return NoopCatalogHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customCatalog := &testCatalogHooks{}
	SetCatalogHooks(customCatalog)
	if Catalog() != customCatalog {
		t.Error("SetCatalogHooks should set custom hooks")
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
	if _, ok := Catalog().(NoopCatalogHooks); !ok {
		t.Error("Reset() should restore NoopCatalogHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testCacheHooks{}
	SetCacheHooks(custom)
	SetCacheHooks(nil)

	if Cache() != custom {
		t.Error("SetCacheHooks(nil) should be ignored")
	}

	Reset()
}

type testCatalogHooks struct{ NoopCatalogHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
