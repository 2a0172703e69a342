package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// TaskDescriptor identifies a task plugin as a module/class pair,
// configured as a "module.Class" string.
type TaskDescriptor struct {
	Module string
	Class  string
}

// ParseDescriptor splits a "module.Class" string on its last dot.
// Descriptors without a separator, or with an empty module or class
// part, are a configuration error.
func ParseDescriptor(s string) (TaskDescriptor, error) {
	i := strings.LastIndex(s, ".")
	if i <= 0 || i == len(s)-1 {
		return TaskDescriptor{}, zerr.With(ErrNotATaskModule, "descriptor", s)
	}
	return TaskDescriptor{Module: s[:i], Class: s[i+1:]}, nil
}

func (d TaskDescriptor) String() string {
	return d.Module + "." + d.Class
}
