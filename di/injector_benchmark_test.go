package di_test

import (
	"testing"

	"github.com/sghaida/lexi/di"
)

/*
   Shared helpers (NOT counted in benchmarks)
*/

func newBenchRegistry(b *testing.B) *di.Registry {
	b.Helper()

	reg := di.NewRegistry()
	must := func(err error) {
		if err != nil {
			b.Fatal(err)
		}
	}
	must(reg.RegisterLateBoundValue("environ"))
	must(reg.RegisterValue("settings", map[string]any{"debug": true}))
	must(reg.RegisterFactory("path", di.Func1(func(env string) (string, error) { return env, nil }), "environ"))
	must(reg.RegisterFactory("method", di.Func0(func() (string, error) { return "GET", nil })))
	must(reg.RegisterFactory("route", di.Func2(func(p, m string) (string, error) { return m + " " + p, nil }), "path", "method"))
	return reg
}

/*
   Benchmarks
*/

func BenchmarkRegistry_BuildInjector(b *testing.B) {
	reg := newBenchRegistry(b)
	late := map[string]any{"environ": "/"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reg.BuildInjector(late); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSnapshot_NewInjector(b *testing.B) {
	snap, err := newBenchRegistry(b).Freeze()
	if err != nil {
		b.Fatal(err)
	}
	late := map[string]any{"environ": "/"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := snap.NewInjector(late); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSession_ResolveGraph(b *testing.B) {
	snap, err := newBenchRegistry(b).Freeze()
	if err != nil {
		b.Fatal(err)
	}
	late := map[string]any{"environ": "/users"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		inj, err := snap.NewInjector(late)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := inj.GetDependency("route"); err != nil {
			b.Fatal(err)
		}
	}
}
