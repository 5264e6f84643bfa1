package app

import "github.com/spf13/pflag"

// RegisterFlags registers all CLI flags on the given FlagSet
func RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolP("ignore-case", "i", false, "Match lines ignoring case")
	flags.IntP("max-results", "n", 0, "Maximum number of lines to print (0 = unlimited)")
	flags.StringP("log-level", "l", "", "Log level: debug, info, warn or error")
}
