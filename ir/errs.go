package ir

import "errors"

var (
	ErrParse         = errors.New("parse error")
	ErrNavigation    = errors.New("cannot ascend above root")
	ErrUnsatisfiable = errors.New("constraint unsatisfiable")
)
