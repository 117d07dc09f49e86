package status

import (
	"fmt"

	"github.com/pterm/pterm"
)

// 📢 PrintSummary renders the end-of-run summary with pterm prefix printers.
// Failures are listed individually so a non-verbose run still shows every
// file that could not be copied.
func (m *Manager) PrintSummary(outputRoot string) {
	added, removed, modified, rewritten, failed := m.Counts()

	if added+removed+modified == 0 {
		pterm.Info.Println("No differences found")
		return
	}

	pterm.Info.Println(fmt.Sprintf("Only in B: %d, Only in A: %d, Modified: %d", added, removed, modified))
	if rewritten > 0 {
		pterm.Info.Println(fmt.Sprintf("Copyright headers updated in %d file(s)", rewritten))
	}

	for _, report := range m.Failed() {
		pterm.Error.Println(fmt.Sprintf("%s: %v", report.Path, report.Err))
	}

	if failed > 0 {
		pterm.Warning.Println(fmt.Sprintf("Comparison finished with %d failed file(s)", failed))
	} else {
		pterm.Success.Println(fmt.Sprintf("Comparison complete, output written to %s", outputRoot))
	}
}
