//go:build ruleguard

package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

// WaitGroupGo detects goroutines started with Add/Done bookkeeping that
// sync.WaitGroup.Go (Go 1.25+) handles.
//
// Old pattern:
//
//	wg.Add(1)
//	go func() {
//	    defer wg.Done()
//	    q.Usage(v)
//	}()
//
// New pattern:
//
//	wg.Go(func() {
//	    q.Usage(v)
//	})
func WaitGroupGo(m dsl.Matcher) {
	m.Match(`go func() { defer $wg.Done(); $*body }()`).
		Where(m["wg"].Type.Is("*sync.WaitGroup") || m["wg"].Type.Is("sync.WaitGroup")).
		Report("use $wg.Go(func() { ... }) instead of go func() { defer $wg.Done(); ... }()").
		Suggest("$wg.Go(func() { $body })")
}

// RangeOverInteger detects counting loops that can range over an integer (Go 1.22+).
//
// Old pattern:
//
//	for i := 0; i < n; i++ {
//
// New pattern:
//
//	for i := range n {
func RangeOverInteger(m dsl.Matcher) {
	m.Match(`for $i := 0; $i < $n; $i++ { $*body }`).
		Where(m["n"].Type.Is("int")).
		Report("use for $i := range $n (Go 1.22+)").
		Suggest("for $i := range $n { $body }")
}

// TestingContext detects context.Background() in tests, where t.Context()
// (Go 1.24+) is cancelled when the test ends.
func TestingContext(m dsl.Matcher) {
	m.Match(`context.Background()`).
		Where(m.File().Name.Matches(`_test\.go$`) && m.File().Imports("testing")).
		Report("consider t.Context() in tests (Go 1.24+)")
}
