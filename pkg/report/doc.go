// Package report annotates errors with the call site and component that
// propagated them.
//
// Every time an error crosses a function boundary it can be wrapped by a
// Component, which records:
//   - the component identity (name and version), fixed at build time
//   - the file and line of the wrap, relative to the component root
//   - the wrapped cause, either another frame or the original failure
//
// Repeated wrapping builds a chain whose rendering reproduces the
// propagation path without capturing stacks:
//
//	{billing@1.4.0} internal/invoice/store.go:88 -> internal/invoice/service.go:41 -> {pgx@5.5.0} conn.go:310 -> connection refused
//
// Component tags are printed for the outermost frame and, under
// TagTransitions, at each change of component. TagOutermost prints one tag.
//
// Example usage:
//
//	var component = report.NewComponent("billing", "1.4.0", report.WithRoot(root))
//
//	func load(id string) (*Invoice, error) {
//		inv, err := store.Get(id)
//		if err != nil {
//			return nil, component.Wrap(err)
//		}
//		return inv, nil
//	}
//
//	fmt.Println(err)          // terse: terminal errors via Error()
//	fmt.Printf("%+v\n", err)  // verbose: terminal errors via %+v
//	report.Cause(err)         // the original failure, skipping every frame
//
// Packages normally do not declare the component by hand: `erreport gen`
// writes a report_gen.go with the identity and wrap helpers bound to it.
package report
