package ruleset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/propkit/propkit/pkg/metadata"
	"github.com/propkit/propkit/pkg/parsing"
	"github.com/propkit/propkit/pkg/validation"
)

// Ruleset is a loaded rule definition document: the declared properties as a
// schema plus the validation rules in document order.
type Ruleset struct {
	Schema *metadata.Schema
	Rules  []validation.Rule
}

type document struct {
	Properties []propertyDef `yaml:"properties"`
}

type propertyDef struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Nullable bool      `yaml:"nullable"`
	Default  *string   `yaml:"default"`
	Rules    []ruleDef `yaml:"rules"`
}

type ruleDef struct {
	Rule     string   `yaml:"rule"`
	Value    string   `yaml:"value"`
	Values   []string `yaml:"values"`
	Severity string   `yaml:"severity"`
	Message  string   `yaml:"message"`
}

// LoadFile loads a rule definition document from a YAML file.
func LoadFile(path string) (*Ruleset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a YAML rule definition document. Unknown fields, types, rule
// names, and severities are rejected at load time, not at validation time.
func Load(r io.Reader) (*Ruleset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if len(doc.Properties) == 0 {
		return nil, errors.Join(ErrInvalidDocument, errors.New("no properties declared"))
	}

	props := make([]*metadata.Property, 0, len(doc.Properties))
	var rules []validation.Rule
	for _, def := range doc.Properties {
		p, err := buildProperty(def)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
		for _, rd := range def.Rules {
			rule, err := buildRule(p, rd)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
	}

	schema, err := metadata.NewSchema(props...)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return &Ruleset{Schema: schema, Rules: rules}, nil
}

func buildProperty(def propertyDef) (*metadata.Property, error) {
	if def.Name == "" {
		return nil, errors.Join(ErrInvalidDocument, errors.New("property without name"))
	}
	kind, ok := metadata.KindFromString(def.Type)
	if !ok {
		return nil, errors.Join(ErrUnknownType,
			fmt.Errorf("property %q declares type %q", def.Name, def.Type))
	}

	var opts []metadata.PropertyOption
	if def.Nullable {
		opts = append(opts, metadata.Nullable())
	}
	if def.Default != nil {
		v, err := parsing.ForKind(kind)(*def.Default)
		if err != nil {
			return nil, errors.Join(ErrInvalidRule,
				fmt.Errorf("property %q default: %w", def.Name, err))
		}
		opts = append(opts, metadata.WithDefault(func() metadata.Value { return v }))
	}
	return metadata.NewProperty(def.Name, kind, opts...), nil
}

func buildRule(p *metadata.Property, def ruleDef) (validation.Rule, error) {
	var rule validation.Rule
	switch def.Rule {
	case "exists":
		rule = validation.Exists(p)
	case "notNull":
		rule = validation.NotNull(p)
	case "notDefault":
		rule = validation.NotDefault(p)
	case "min":
		bound, err := parseBound(p, def)
		if err != nil {
			return validation.Rule{}, err
		}
		rule = validation.ShouldBe(p, func(v metadata.Value) bool {
			return compareValues(v, bound) >= 0
		}).WithMessage("{propertyName} should be at least " + bound.Format() + " but was {value}.")
	case "max":
		bound, err := parseBound(p, def)
		if err != nil {
			return validation.Rule{}, err
		}
		rule = validation.ShouldBe(p, func(v metadata.Value) bool {
			return compareValues(v, bound) <= 0
		}).WithMessage("{propertyName} should be at most " + bound.Format() + " but was {value}.")
	case "oneOf":
		if len(def.Values) == 0 {
			return validation.Rule{}, errors.Join(ErrInvalidRule,
				fmt.Errorf("property %q: oneOf needs values", p.Name()))
		}
		allowed := slices.Clone(def.Values)
		rule = validation.ShouldBe(p, func(v metadata.Value) bool {
			return slices.Contains(allowed, v.Format())
		}).WithMessage("{propertyName} has unexpected value {value}.")
	case "pattern":
		if p.Kind() != metadata.KindString {
			return validation.Rule{}, errors.Join(ErrInvalidRule,
				fmt.Errorf("property %q: pattern applies to string properties", p.Name()))
		}
		re, err := regexp.Compile(def.Value)
		if err != nil {
			return validation.Rule{}, errors.Join(ErrInvalidRule,
				fmt.Errorf("property %q pattern: %w", p.Name(), err))
		}
		rule = validation.ShouldBe(p, func(v metadata.Value) bool {
			s, err := v.AsString()
			return err == nil && !v.IsNull() && re.MatchString(s)
		}).WithMessage("{propertyName} does not match pattern " + def.Value + " but was {value}.")
	default:
		return validation.Rule{}, errors.Join(ErrUnknownRule,
			fmt.Errorf("property %q declares rule %q", p.Name(), def.Rule))
	}

	if def.Message != "" {
		rule = rule.WithMessage(def.Message)
	}
	switch def.Severity {
	case "", "error":
	case "warning":
		rule = rule.AsWarning()
	default:
		return validation.Rule{}, errors.Join(ErrUnknownSeverity,
			fmt.Errorf("property %q declares severity %q", p.Name(), def.Severity))
	}
	return rule, nil
}

func parseBound(p *metadata.Property, def ruleDef) (metadata.Value, error) {
	switch p.Kind() {
	case metadata.KindInt, metadata.KindFloat, metadata.KindTime:
	default:
		return metadata.Value{}, errors.Join(ErrInvalidRule,
			fmt.Errorf("property %q: %s applies to ordered kinds", p.Name(), def.Rule))
	}
	bound, err := parsing.ForKind(p.Kind())(def.Value)
	if err != nil {
		return metadata.Value{}, errors.Join(ErrInvalidRule,
			fmt.Errorf("property %q %s bound: %w", p.Name(), def.Rule, err))
	}
	if bound.IsNull() {
		return metadata.Value{}, errors.Join(ErrInvalidRule,
			fmt.Errorf("property %q %s bound is null", p.Name(), def.Rule))
	}
	return bound, nil
}

// compareValues orders two non-null values of the same kind. Kinds checked at
// load time; nulls never reach here because ShouldBe conditions receive the
// resolved value and bounds are non-null.
func compareValues(a, b metadata.Value) int {
	if a.IsNull() {
		return -1
	}
	switch a.Kind() {
	case metadata.KindInt:
		av, _ := a.AsInt()
		bv, _ := b.AsInt()
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case metadata.KindFloat:
		av, _ := a.AsFloat()
		bv, _ := b.AsFloat()
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case metadata.KindTime:
		av, _ := a.AsTime()
		bv, _ := b.AsTime()
		switch {
		case av.Before(bv):
			return -1
		case av.After(bv):
			return 1
		}
		return 0
	default:
		return 0
	}
}
