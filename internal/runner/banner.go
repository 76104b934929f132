package runner

import "github.com/projectdiscovery/gologger"

var banner = (`
   _________  ____ ______ _
  / ___/ __ \/ __ '/ __  /
 (__  ) /_/ / /_/ / /_/ /
/____/ .___/\__,_/\__, /
    /_/          /____/
`)

var version = "v0.1.0"

// showBanner prints the tool banner to the user.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tscanner/parser generator %s\n\n", version)
}
