package cmd

import (
	"fmt"

	"github.com/kiosk404/chronos/pkg/version"
)

const bannerText = `
   ____ _                               
  / ___| |__  _ __ ___  _ __   ___  ___ 
 | |   | '_ \| '__/ _ \| '_ \ / _ \/ __|
 | |___| | | | | | (_) | | | | (_) \__ \
  \____|_| |_|_|  \___/|_| |_|\___/|___/

        Chronos time assistant
`

// Banner returns the CLI banner string.
func Banner() string {
	return fmt.Sprintf("%s\n  Version: %s\n", bannerText, version.Get().String())
}
