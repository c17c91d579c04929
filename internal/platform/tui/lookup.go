package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Lookup opens a reference page for a word.
type Lookup func(word string) error

// BrowserLookup returns a Lookup that opens urlFor(word) in the system
// browser. It returns nil when urlFor is nil.
func BrowserLookup(urlFor func(word string) string) Lookup {
	if urlFor == nil {
		return nil
	}
	return func(word string) error {
		url := urlFor(word)
		if url == "" {
			return fmt.Errorf("no lookup URL for %s", word)
		}

		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}

		if err := cmd.Start(); err != nil {
			return fmt.Errorf("open %s: %w", url, err)
		}
		// Reap the child; the browser outlives it.
		go cmd.Wait()
		return nil
	}
}
