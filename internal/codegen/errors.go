package codegen

import "errors"

// Sentinel errors returned (wrapped) by the generator.
var (
	ErrModuleNotFound  = errors.New("go.mod not found")
	ErrPackageNotFound = errors.New("package name not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrStale           = errors.New("generated file is out of date")
)
