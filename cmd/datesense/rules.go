package main

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/datesense/pkg/rules"
	"github.com/arthur-debert/datesense/pkg/ui/styles"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: MsgRulesShort,
		Long:  MsgRulesLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rulesFile == "" {
				rulesFile = defaultRulesPath()
			}
			ruleSet := rules.DefaultRuleSet()
			source := "built-in catalogue"
			if rulesFile != "" {
				var err error
				ruleSet, err = rules.LoadRuleSet(rulesFile)
				if err != nil {
					return err
				}
				source = rulesFile
			}

			cmd.Println(styles.GetStyle("Header").Render(
				fmt.Sprintf("Rule set (%s, %d rules)", source, ruleSet.Len())))
			for _, rule := range ruleSet.Rules() {
				cmd.Printf("%s %s  %s\n",
					styles.GetStyle("Score").Render(fmt.Sprintf("%3d", rule.PosScore)),
					styles.GetStyle("RuleKind").Render(rule.Kind.String()),
					describeRule(rule))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", MsgFlagRules)

	return cmd
}

// describeRule renders one rule as a single styled line
func describeRule(rule rules.Rule) string {
	directive := styles.GetStyle("Directive")
	literal := styles.GetStyle("Literal")

	switch rule.Kind {
	case rules.KindPattern:
		parts := make([]string, 0, len(rule.Sequence))
		for _, sub := range rule.Sequence {
			if len(sub.Alternatives) == 0 {
				parts = append(parts, literal.Render(fmt.Sprintf("%q", sub.Literal)))
				continue
			}
			parts = append(parts, directive.Render(strings.Join(sub.Alternatives, "|")))
		}
		return strings.Join(parts, " ")

	case rules.KindLength:
		parts := make([]string, 0, len(rule.Candidates))
		for _, cand := range rule.Candidates {
			parts = append(parts, directive.Render(cand.Directive))
		}
		return fmt.Sprintf("%d digits: %s", rule.Length, strings.Join(parts, " "))

	case rules.KindName:
		parts := make([]string, 0, len(rule.Entries))
		for _, entry := range rule.Entries {
			parts = append(parts, fmt.Sprintf("%s (%d words)",
				directive.Render(entry.Directive), len(entry.Words)))
		}
		return strings.Join(parts, ", ")

	case rules.KindDelimiter:
		return literal.Render("punctuation and whitespace pass through")
	}
	return ""
}
