package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// asciiArtTpl returns the ASCII art of articledb.
func asciiArtTpl() string {
	asciiArt := `
               __  _      __        ____
  ____ _______/ /_(_)____/ /__  ____/ / /_
 / __ ` + "`" + `/ ___/ __/ / ___/ / _ \/ __  / __ \
/ /_/ / /  / /_/ / /__/ /  __/ /_/ / /_/ /
\__,_/_/   \__/_/\___/_/\___/\__,_/_.___/
%s ` + Version

	asciiArt = asciiArt[1:]                          // This just removes the first newline character
	asciiArt = colorCyanBold + asciiArt + colorReset // Add color to the ASCII art

	return asciiArt
}

// CLIVersion returns the version banner of the articledb CLI.
func CLIVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "CLI")
}
