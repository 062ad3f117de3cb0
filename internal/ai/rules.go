package ai

import (
	"context"
	"strings"
)

// Predicate decides whether a rule applies to a question.
type Predicate func(question string) bool

// Template produces the answer of a matched rule.
type Template func(r Request) Answer

type Rule struct {
	Name    string
	Match   Predicate
	Respond Template
}

// Keywords matches when the lowercased question contains any of words.
func Keywords(words ...string) Predicate {
	return func(q string) bool {
		q = strings.ToLower(q)
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}
}

// RuleEngine answers with the first matching rule, or the fallback.
type RuleEngine struct {
	name     string
	rules    []Rule
	fallback Template
}

func NewRuleEngine(name string, rules []Rule, fallback Template) *RuleEngine {
	return &RuleEngine{
		name:     name,
		rules:    rules,
		fallback: fallback,
	}
}

func (e *RuleEngine) Answer(_ context.Context, r Request) (Answer, error) {
	a := e.match(r.Question).Respond(r)
	if a.Sources == nil {
		a.Sources = []string{}
	}
	a.Provider = e.name
	return a, nil
}

// Match returns the name of the rule that would answer q.
func (e *RuleEngine) Match(q string) string {
	return e.match(q).Name
}

func (e *RuleEngine) match(q string) Rule {
	for _, rule := range e.rules {
		if rule.Match(q) {
			return rule
		}
	}
	return Rule{Name: "default", Respond: e.fallback}
}

// Fixed replies with a constant answer.
func Fixed(a Answer) Template {
	return func(Request) Answer {
		out := a
		out.Suggestions = append([]string(nil), a.Suggestions...)
		return out
	}
}
