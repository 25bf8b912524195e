package internal

import (
	"strings"

	"go.uber.org/zap"
)

// expandConditionals expands every top-level #{if} block in s.
func (r *Renderer) expandConditionals(s string, data map[string]any, depth, iteration int) (string, error) {
	return r.expandBlocks(s, conditionalFamily, iteration, func(raw string, b block) (string, error) {
		return r.expandConditional(raw, b, data, depth, iteration)
	})
}

// expandConditional picks the branch for one #{if} block. A false
// condition without #{else} renders as empty text.
func (r *Renderer) expandConditional(raw string, b block, data map[string]any, depth, iteration int) (string, error) {
	condition := b.Args
	negated := strings.HasPrefix(condition, string(CharNegate))
	if negated {
		condition = strings.TrimSpace(condition[1:])
	}
	if condition == StringValueEmpty {
		if iteration == 0 {
			r.diagnose(Diagnostic{
				Kind:    DiagnosticGrammarMismatch,
				Message: ErrMsgInvalidCondition,
				Tag:     raw[:b.HeaderEnd-b.Start],
			})
		}
		return raw, nil
	}

	v, ok, err := r.resolveToken(condition, data, depth)
	if err != nil {
		return StringValueEmpty, err
	}
	truthy := ok && isTruthy(v)

	if ce := r.logger.Check(zap.DebugLevel, LogMsgConditionEval); ce != nil {
		ce.Write(zap.String(LogFieldPath, condition), zap.Bool(LogFieldNegated, negated), zap.Bool(LogFieldResult, truthy))
	}

	switch {
	case truthy != negated:
		return r.render(b.Body, data, depth+1)
	case b.HasAlt:
		return r.render(b.Alt, data, depth+1)
	default:
		return StringValueEmpty, nil
	}
}
