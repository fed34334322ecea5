package main

import (
	"fmt"
	"strings"

	"github.com/outofforest/nvram/wire"
)

var controlNames = map[string]wire.Control{
	"persistent-write-lock": wire.ControlPersistentWriteLock,
	"boot-write-lock":       wire.ControlBootWriteLock,
	"boot-read-lock":        wire.ControlBootReadLock,
	"write-authorization":   wire.ControlWriteAuthorization,
	"read-authorization":    wire.ControlReadAuthorization,
	"write-extend":          wire.ControlWriteExtend,
}

// parseControls parses a comma-separated list of control names into their
// wire.Control values, e.g. "write-authorization,boot-read-lock".
func parseControls(csv string) ([]wire.Control, error) {
	if csv == "" {
		return nil, nil
	}
	var out []wire.Control
	for _, name := range strings.Split(csv, ",") {
		c, ok := controlNames[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("unknown control %q", name)
		}
		out = append(out, c)
	}
	return out, nil
}
