package report_test

import (
	"errors"
	"fmt"
	"io/fs"

	"erreport/pkg/report"
)

func Example() {
	storage := report.NewComponent("storage", "0.3.1")
	billing := report.NewComponent("billing", "1.4.0")

	err := storage.WrapAt("disk.go", 41, fs.ErrPermission)
	err = billing.WrapAt("internal/invoice/store.go", 88, err)
	err = billing.WrapAt("internal/invoice/service.go", 23, err)

	fmt.Println(err)
	fmt.Println(errors.Is(report.Cause(err), fs.ErrPermission))
	// Output:
	// {billing@1.4.0} internal/invoice/service.go:23 -> internal/invoice/store.go:88 -> {storage@0.3.1} disk.go:41 -> permission denied
	// true
}

func ExampleWithPolicy() {
	storage := report.NewComponent("storage", "0.3.1")
	billing := report.NewComponent("billing", "1.4.0", report.WithPolicy(report.TagOutermost))

	err := billing.WrapAt("service.go", 23, storage.WrapAt("disk.go", 41, errors.New("disk full")))

	fmt.Println(err)
	// Output:
	// {billing@1.4.0} service.go:23 -> disk.go:41 -> disk full
}

func ExampleReport_Boundary() {
	storage := report.NewComponent("storage", "0.3.1")
	billing := report.NewComponent("billing", "1.4.0")

	err := billing.WrapAt("service.go", 23, billing.WrapAt("store.go", 88, storage.WrapAt("disk.go", 41, errors.New("disk full"))))

	var r *report.Report
	if errors.As(err, &r) {
		b := r.Boundary()
		fmt.Println(b.Component(), b.File(), b.Line())
	}
	// Output:
	// storage@0.3.1 disk.go 41
}
