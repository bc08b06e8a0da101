package route_test

import (
	"strconv"
	"testing"

	"github.com/sghaida/lexi/route"
)

func newBenchRouting(b *testing.B, n int) *route.Routing {
	b.Helper()

	tbl := route.NewTable()
	for i := 0; i < n; i++ {
		name := "r" + strconv.Itoa(i)
		if err := tbl.AddRoute(name, "GET", "/"+name+`/{id:\d+}/`); err != nil {
			b.Fatal(err)
		}
	}
	return tbl.Routing()
}

func BenchmarkPathToRoute_First(b *testing.B) {
	r := newBenchRouting(b, 50)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := r.PathToRoute("/r0/42/", "GET"); !ok {
			b.Fatal("no match")
		}
	}
}

func BenchmarkPathToRoute_Last(b *testing.B) {
	r := newBenchRouting(b, 50)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := r.PathToRoute("/r49/42/", "GET"); !ok {
			b.Fatal("no match")
		}
	}
}

func BenchmarkRouteToPath(b *testing.B) {
	r := newBenchRouting(b, 50)
	values := map[string]any{"id": 42}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.RouteToPath("r25", values); err != nil {
			b.Fatal(err)
		}
	}
}
