package handlers

import (
	"disruptive/utils"

	"go.uber.org/zap"
)

// getLogger retrieves the shared Zap logger.
func getLogger() *zap.Logger {
	return utils.GetLogger()
}
