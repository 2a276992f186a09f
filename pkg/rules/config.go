package rules

import (
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/datesense/pkg/errors"
	"github.com/arthur-debert/datesense/pkg/logging"
)

// candidateConfig is one candidate entry in a rule config
type candidateConfig struct {
	Directive string `koanf:"directive"`
	Score     int    `koanf:"score"`
}

// nameConfig is one word table entry in a name rule config
type nameConfig struct {
	Directive string   `koanf:"directive"`
	Words     []string `koanf:"words"`
	Score     int      `koanf:"score"`
}

// ruleConfig is the TOML shape of one rule. Pattern elements starting with
// '%' are directive alternatives ('|' separates them, e.g. "%H|%I");
// anything else is literal token text.
type ruleConfig struct {
	Kind       string            `koanf:"kind"`
	Priority   int               `koanf:"priority"`
	Score      int               `koanf:"score"`
	Pattern    []string          `koanf:"pattern"`
	Length     int               `koanf:"length"`
	Candidates []candidateConfig `koanf:"candidates"`
	Names      []nameConfig      `koanf:"names"`
}

// LoadRuleSet loads a custom rule set from a TOML file. The file holds an
// array of [[rules]] tables; see the rulesets help topic for the format.
func LoadRuleSet(path string) (RuleSet, error) {
	logger := logging.GetLogger("rules.config")

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return RuleSet{}, errors.Wrapf(err, errors.ErrConfigLoad,
			"loading rule set from %s", path)
	}

	var configs []ruleConfig
	if err := k.Unmarshal("rules", &configs); err != nil {
		return RuleSet{}, errors.Wrap(err, errors.ErrConfigParse, "parsing rule entries")
	}
	if len(configs) == 0 {
		return RuleSet{}, errors.Newf(errors.ErrConfigValid,
			"rule set %s defines no rules", path)
	}

	ruleList := make([]Rule, 0, len(configs))
	for i, cfg := range configs {
		rule, err := buildRule(cfg)
		if err != nil {
			return RuleSet{}, errors.Wrapf(err, errors.ErrConfigValid,
				"rule %d is invalid", i)
		}
		ruleList = append(ruleList, rule)
	}

	logger.Info().
		Str("path", path).
		Int("ruleCount", len(ruleList)).
		Msg("Loaded rule set from configuration")

	return NewRuleSet(ruleList...), nil
}

// buildRule converts one config entry into a Rule value
func buildRule(cfg ruleConfig) (Rule, error) {
	switch cfg.Kind {
	case "pattern":
		if len(cfg.Pattern) == 0 {
			return Rule{}, errors.New(errors.ErrConfigValid, "pattern rule has empty sequence")
		}
		sequence := make([]Subpattern, 0, len(cfg.Pattern))
		for _, elem := range cfg.Pattern {
			if strings.HasPrefix(elem, "%") {
				sequence = append(sequence, Alt(strings.Split(elem, "|")...))
				continue
			}
			sequence = append(sequence, Lit(elem))
		}
		return NewPatternRule(sequence, cfg.Priority, cfg.Score), nil

	case "length":
		if cfg.Length <= 0 {
			return Rule{}, errors.New(errors.ErrConfigValid, "length rule needs a positive length")
		}
		if len(cfg.Candidates) == 0 {
			return Rule{}, errors.New(errors.ErrConfigValid, "length rule has no candidates")
		}
		cands := make([]Candidate, 0, len(cfg.Candidates))
		for _, c := range cfg.Candidates {
			if c.Directive == "" {
				return Rule{}, errors.New(errors.ErrConfigValid, "candidate has empty directive")
			}
			cands = append(cands, Candidate{Directive: c.Directive, Score: c.Score})
		}
		return NewLengthRule(cfg.Length, cands, cfg.Priority), nil

	case "name":
		if len(cfg.Names) == 0 {
			return Rule{}, errors.New(errors.ErrConfigValid, "name rule has no word tables")
		}
		entries := make([]NameEntry, 0, len(cfg.Names))
		for _, n := range cfg.Names {
			if n.Directive == "" || len(n.Words) == 0 {
				return Rule{}, errors.New(errors.ErrConfigValid, "name table needs a directive and words")
			}
			words := make([]string, len(n.Words))
			for i, w := range n.Words {
				words[i] = strings.ToLower(w)
			}
			entries = append(entries, NameEntry{Directive: n.Directive, Words: words, Score: n.Score})
		}
		return NewNameRule(entries, cfg.Priority), nil

	case "delimiter":
		return NewDelimiterRule(), nil
	}

	return Rule{}, errors.Newf(errors.ErrConfigValid, "unknown rule kind %q", cfg.Kind)
}
