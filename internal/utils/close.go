package utils

import (
	"io"

	"github.com/MrSnakeDoc/faves/internal/logger"
)

// CloseLogged closes c and logs a failure at warn under the given name.
func CloseLogged(c io.Closer, name string, log logger.Logger) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		log.Warn("failed to close", logger.String("resource", name), logger.Error(err))
	}
}
