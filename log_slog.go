//go:build !logdiscard

package fbterm

import (
	"log/slog"
	"os"
)

var defaultLogger Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
