package game

import (
	"github.com/atotto/clipboard"

	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// copyLog puts the full formatted action log on the system clipboard.
func copyLog(log *sim.ActionLog) error {
	return writeClipboard(log.Format())
}
