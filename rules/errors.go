//go:build ruleguard

package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

// ErrorfWithoutWrap detects fmt.Errorf formatting an error with %v or %s.
//
// Callers match OS errors such as ENOENT with errors.Is, which only works
// through %w or the errors builder.
//
// Old pattern:
//
//	return fmt.Errorf("statfs %s: %v", path, err)
//
// New patterns:
//
//	return fmt.Errorf("statfs %s: %w", path, err)
//	return errors.New(err).Component("diskutils").Context("path", path).Build()
func ErrorfWithoutWrap(m dsl.Matcher) {
	m.Match(`fmt.Errorf($f, $*_, $err)`).
		Where(m["err"].Type.Implements("error") &&
			(m["f"].Text.Matches(`%v"$`) || m["f"].Text.Matches(`%s"$`))).
		Report("error formatted with %v/%s cannot be matched with errors.Is; use %w or the errors builder")
}

// StdErrorsImport suggests the internal errors package, which is a drop-in
// replacement for the standard one and adds component and category context.
func StdErrorsImport(m dsl.Matcher) {
	m.Match(`errors.New($msg)`).
		Where(m.File().PkgPath.Matches(`^github\.com/tphakala/diskutils/internal/`) &&
			!m.File().Imports("github.com/tphakala/diskutils/internal/errors") &&
			m["msg"].Type.Is("string")).
		Report("use errors.Newf($msg) from internal/errors so the error carries a component and category")
}
