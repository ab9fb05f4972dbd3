package main

import "github.com/awksedgreep/bindocsis/cmd/bindocsis/commands"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date
	commands.Execute()
}
