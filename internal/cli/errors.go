package cli

import "errors"

// Error variables for CLI, config and session operations.
var (
	errConfigFileNotFound = errors.New("config file not found")
	errConfigFileRead     = errors.New("cannot read config file")
	errConfigInvalid      = errors.New("invalid config file")
	errUnknownElem        = errors.New("unknown element type (want int or string)")
	errNegativeCapacity   = errors.New("capacity cannot be negative")
	errUnknownCommand     = errors.New("unknown command")
	errUnknownOp          = errors.New("unknown op")
	errMissingArg         = errors.New("missing argument")
	errBadArg             = errors.New("invalid argument")
	errNotEqual           = errors.New("vector differs from stash")
	errSnapshotInvalid    = errors.New("invalid snapshot")
	errScriptRequired     = errors.New("script path is required (use - for stdin)")
)
