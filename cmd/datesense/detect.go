package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/datesense/pkg/detect"
	"github.com/arthur-debert/datesense/pkg/logging"
	"github.com/arthur-debert/datesense/pkg/resolve"
	"github.com/arthur-debert/datesense/pkg/rules"
	"github.com/spf13/cobra"
)

func newDetectCmd() *cobra.Command {
	var (
		rulesFile string
		dayFirst  bool
	)

	cmd := &cobra.Command{
		Use:     "detect [dates...]",
		Short:   MsgDetectShort,
		Long:    MsgDetectLong,
		Example: MsgDetectExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.detect")

			dates := args
			if len(dates) == 0 {
				// No arguments: read one date string per stdin line
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					line := strings.TrimSpace(scanner.Text())
					if line != "" {
						dates = append(dates, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf(MsgErrReadStdin, err)
				}
			}

			if rulesFile == "" {
				rulesFile = defaultRulesPath()
			}
			ruleSet := rules.RuleSet{}
			if rulesFile != "" {
				var err error
				ruleSet, err = rules.LoadRuleSet(rulesFile)
				if err != nil {
					return err
				}
				logger.Debug().Str("path", rulesFile).Int("rules", ruleSet.Len()).Msg("Loaded rule set")
			}

			opts := resolve.Options{}
			if dayFirst {
				opts.Prefer = resolve.DayFirst
			}

			logger.Info().
				Int("dates", len(dates)).
				Bool("dayFirst", dayFirst).
				Msg("Starting detection")

			format, err := detect.NewDetector(ruleSet, opts).Detect(dates)
			if err != nil {
				return err
			}

			cmd.Println(format)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules", "", MsgFlagRules)
	cmd.Flags().BoolVar(&dayFirst, "day-first", false, MsgFlagDayFirst)

	return cmd
}

// defaultRulesPath returns the user's rule-set file under the XDG config
// directory when one exists, or the empty string
func defaultRulesPath() string {
	path := filepath.Join(xdg.ConfigHome, "datesense", "rules.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
