package cmd

import (
	"github.com/MrJJimenez/jobradar/internal/provider"
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version   VersionCmd `cmd:"" help:"Print version."`
	Config    ConfigCmd  `cmd:"" help:"Manage configuration."`
	Search    SearchCmd  `cmd:"" help:"Search job listings across all routed sources."`
	Adzuna    SourceCmd  `cmd:"" name:"adzuna" help:"Search the Adzuna API only."`
	Remotive  SourceCmd  `cmd:"" name:"remotive" help:"Search the Remotive feed only."`
	Arbeitnow SourceCmd  `cmd:"" name:"arbeitnow" help:"Search the Arbeitnow feed only."`
	Indeed    SourceCmd  `cmd:"" name:"indeed" help:"Search the Indeed RSS feed only."`
	Seen      SeenCmd    `cmd:"" help:"Seen postings utilities."`
}

func NewCLI() *CLI {
	return &CLI{
		Adzuna:    SourceCmd{Source: provider.SourceAdzuna},
		Remotive:  SourceCmd{Source: provider.SourceRemotive},
		Arbeitnow: SourceCmd{Source: provider.SourceArbeitnow},
		Indeed:    SourceCmd{Source: provider.SourceIndeedRSS},
	}
}
