package fetch_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/exoplaneteu/exoplaneteu/pkg/fetch"
)

func ExampleFetcher_Download() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "# name,mass\nKepler-1b,1.2\n")
	}))
	defer srv.Close()

	dir, _ := os.MkdirTemp("", "exoplaneteu-example")
	defer os.RemoveAll(dir)
	target := filepath.Join(dir, "exoplanetEU.csv")

	f := fetch.New(fetch.WithURL(srv.URL))
	if err := f.Download(context.Background(), target); err != nil {
		fmt.Println("Error:", err)
		return
	}

	data, _ := os.ReadFile(target)
	fmt.Print(string(data))
	// Output:
	// # name,mass
	// Kepler-1b,1.2
}
