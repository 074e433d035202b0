package web

import (
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
)

// openBrowser launches the default browser for the given URL. Failure is
// not fatal; the URL is printed so the user can open it by hand.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		pterm.Warning.Printf("Could not open browser automatically: %v\n", err)
		pterm.Info.Printf("Please open %s manually\n", url)
	}
}
