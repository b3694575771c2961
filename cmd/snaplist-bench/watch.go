package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// watchStatus prints a live, carriage-return-updated status line while the
// harness runs, the same terminal package the teacher repo uses for
// password prompting (golang.org/x/term), repurposed here for output-side
// TTY detection instead of input.
func (h *Harness) watchStatus() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-h.shutdownChan:
			fmt.Println()
			return
		case <-ticker.C:
			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil || width <= 0 {
				width = 80
			}
			line := fmt.Sprintf(
				"\rappended=%d cleared=%d len=%d",
				h.appended.Load(), h.cleared.Load(), h.list.Len(),
			)
			if len(line) > width {
				line = line[:width]
			}
			fmt.Print(line)
		}
	}
}
