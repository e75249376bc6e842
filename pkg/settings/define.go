// Package settings holds the option carriers handed to the image engine:
// format specific defines and read settings. Everything resolves eagerly into
// ordered lists when finalized.
package settings

import (
	"strings"

	"github.com/jpfielding/exif.go/pkg/format"
)

// Define is a single engine option such as jpeg:optimize-coding=true
type Define struct {
	Format format.Format
	Name   string
	Value  string
}

// Key returns "<format>:<name>", or just the name for format-less defines
func (d Define) Key() string {
	if d.Format == format.Unknown {
		return d.Name
	}
	return strings.ToLower(string(d.Format)) + ":" + d.Name
}

func (d Define) String() string {
	return d.Key() + "=" + d.Value
}

// Definer produces the active defines of a settings object
type Definer interface {
	Defines() ([]Define, error)
}
