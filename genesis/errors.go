package genesis

import "errors"

var (
	ErrIO                  = errors.New("genesis file io error")
	ErrParse               = errors.New("genesis file parse error")
	ErrGenesisRootMismatch = errors.New("genesis root mismatch")
)
