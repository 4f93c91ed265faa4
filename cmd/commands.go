package cmd

import "github.com/google/subcommands"

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&addCmd{},
	&removeCmd{},
	&getCmd{},
	&lowCmd{},
	&reportCmd{},
	&importCmd{},
	&fmtCmd{},
}
