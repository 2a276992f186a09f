package main

import (
	_ "embed"
	"strings"
)

// Templates
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)

// Short messages (one-liners)
const (
	MsgRootShort = "Infer strftime-style formats from example date strings"
	MsgRootLong  = `datesense infers the strftime-style format string shared by a batch of
example date strings. Each string is tokenized, matched against a rule
catalogue, and the per-string candidates are narrowed by cross-string
evidence until one directive survives at every position.`

	MsgDetectShort   = "Detect the format shared by the given date strings"
	MsgDetectLong    = `Detect tokenizes every date string, proposes candidate directives for
each token, and resolves them across all strings into one format.

Date strings are taken from the arguments, or one per line from stdin
when no arguments are given.`
	MsgDetectExample = `  datesense detect "15 Dec 2014" "9 Jan 2015"
  datesense detect --day-first "01/05/2015"
  printf '2015-01-09\n2015-12-15\n' | datesense detect`

	MsgRulesShort = "List the active rule catalogue"
	MsgRulesLong  = `Rules prints every rule in the active catalogue in attempt order,
highest position score first. Pass --rules to inspect a custom TOML
rule set instead of the built-in catalogue.`

	MsgTopicsShort = "List all topics or show help for a topic"
	MsgTopicsLong  = `Display a list of all available help topics that provide additional
documentation beyond command help, or render one topic by name.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `To load completions:

Bash:
  $ source <(datesense completion bash)

Zsh:
  $ datesense completion zsh > "${fpath[1]}/_datesense"

Fish:
  $ datesense completion fish | source

PowerShell:
  PS> datesense completion powershell | Out-String | Invoke-Expression
`

	// Error messages
	MsgErrReadStdin = "failed to read date strings from stdin: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRules    = "Load the rule catalogue from a TOML file"
	MsgFlagDayFirst = "Prefer %d over %m when both survive resolution"
)
