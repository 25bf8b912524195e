package internal

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// rangePrealloc bounds the up-front allocation for an integer range.
const rangePrealloc = 1024

var (
	// loopHeaderPattern matches "<name> in <source>".
	loopHeaderPattern = regexp.MustCompile(`^([A-Za-z_$][\w$]*)\s+` + KeywordIn + `\s+(\S.*)$`)

	// rangePattern matches an inclusive integer range "start..end".
	rangePattern = regexp.MustCompile(`^(-?\d+)\s*` + regexp.QuoteMeta(RangeSeparator) + `\s*(-?\d+)$`)
)

// expandLoops expands every top-level #{for} block in s.
func (r *Renderer) expandLoops(s string, data map[string]any, depth, iteration int) (string, error) {
	return r.expandBlocks(s, loopFamily, iteration, func(raw string, b block) (string, error) {
		return r.expandLoop(raw, b, data, depth, iteration)
	})
}

// expandLoop renders one loop block. The raw tag is kept when the header
// is malformed, the source does not resolve to a sequence or mapping, or
// the source is empty and there is no #{empty} clause. A kept tag still
// gets the values the surrounding data can resolve.
func (r *Renderer) expandLoop(raw string, b block, data map[string]any, depth, iteration int) (string, error) {
	header := raw[:b.HeaderEnd-b.Start]
	m := loopHeaderPattern.FindStringSubmatch(b.Args)
	if m == nil {
		if iteration == 0 {
			r.diagnose(Diagnostic{
				Kind:    DiagnosticGrammarMismatch,
				Message: ErrMsgInvalidLoopHeader,
				Tag:     header,
			})
		}
		return r.keepLoop(raw, data, depth)
	}
	name, source := m[1], strings.TrimSpace(m[2])

	items, reason, err := r.loopSource(source, header, data, depth, iteration)
	if err != nil {
		return StringValueEmpty, err
	}
	if reason != StringValueEmpty {
		r.logger.Debug(LogMsgLoopUnexpanded, zap.String(LogFieldPath, source), zap.String(LogFieldReason, reason))
		return r.keepLoop(raw, data, depth)
	}

	count := len(items)
	if iteration == 0 && r.config.LoopAdvisoryThreshold > 0 && count > r.config.LoopAdvisoryThreshold {
		r.diagnose(Diagnostic{
			Kind:    DiagnosticPerformanceAdvisory,
			Message: ErrMsgLargeLoop,
			Path:    source,
			Count:   count,
		})
	}

	if count == 0 {
		if !b.HasAlt {
			r.logger.Debug(LogMsgLoopUnexpanded, zap.String(LogFieldPath, source), zap.String(LogFieldReason, ReasonEmptyNoClause))
			return r.keepLoop(raw, data, depth)
		}
		return r.render(b.Alt, data, depth+1)
	}

	var sb strings.Builder
	for i, item := range items {
		ctx := MergeMaps(data, map[string]any{
			DataKeyLoop: map[string]any{
				LoopFieldKey:     item.Key,
				LoopFieldIndex0:  i,
				LoopFieldIndex:   i + 1,
				LoopFieldIsFirst: i == 0,
				LoopFieldIsLast:  i == count-1,
				LoopFieldIsOnly:  count == 1,
				LoopFieldItem:    item.Value,
			},
		})
		ctx[name] = item.Value

		out, err := r.render(b.Body, ctx, depth+1)
		if err != nil {
			return StringValueEmpty, err
		}
		sb.WriteString(out)
	}

	if ce := r.logger.Check(zap.DebugLevel, LogMsgLoopExpanded); ce != nil {
		ce.Write(zap.String(LogFieldPath, source), zap.Int(LogFieldCount, count), zap.Int(LogFieldDepth, depth))
	}
	return sb.String(), nil
}

// keepLoop returns an unexpanded loop tag with the values of the
// surrounding data substituted, as the value pass would have done had the
// body not been reserved for the loop bindings.
func (r *Renderer) keepLoop(raw string, data map[string]any, depth int) (string, error) {
	var sb strings.Builder
	if err := r.substituteSegment(&sb, raw, data, depth); err != nil {
		return StringValueEmpty, err
	}
	return sb.String(), nil
}

// loopSource materializes a range or resolves source to its entries. A
// non-empty reason means the loop must stay unexpanded.
func (r *Renderer) loopSource(source, header string, data map[string]any, depth, iteration int) ([]entry, string, error) {
	if m := rangePattern.FindStringSubmatch(source); m != nil {
		items, reason := r.rangeSource(m[1], m[2], source, header, iteration)
		return items, reason, nil
	}

	v, ok, err := r.resolveToken(source, data, depth)
	if err != nil {
		return nil, StringValueEmpty, err
	}
	if !ok {
		return nil, ReasonSourceUnresolved, nil
	}
	items, ok := iterate(v)
	if !ok {
		return nil, ReasonNotIterable, nil
	}
	return items, StringValueEmpty, nil
}

// rangeSource checks the bounds of start..end before materializing it.
// Bounds that overflow int are a grammar mismatch; a range larger than
// MaxRangeSize is reported and left unexpanded.
func (r *Renderer) rangeSource(from, to, source, header string, iteration int) ([]entry, string) {
	start, errStart := strconv.Atoi(from)
	end, errEnd := strconv.Atoi(to)
	if errStart != nil || errEnd != nil {
		if iteration == 0 {
			r.diagnose(Diagnostic{
				Kind:    DiagnosticGrammarMismatch,
				Message: ErrMsgInvalidRange,
				Tag:     header,
				Path:    source,
			})
		}
		return nil, ReasonInvalidRange
	}

	size, ok := rangeSize(start, end)
	if !ok || (r.config.MaxRangeSize > 0 && size > r.config.MaxRangeSize) {
		if iteration == 0 {
			r.diagnose(Diagnostic{
				Kind:    DiagnosticPerformanceAdvisory,
				Message: ErrMsgRangeTooLarge,
				Tag:     header,
				Path:    source,
				Count:   r.config.MaxRangeSize,
			})
		}
		return nil, ReasonRangeTooLarge
	}
	return integerRange(start, end), StringValueEmpty
}

// rangeSize returns how many integers start..end holds. It reports false
// when the count does not fit in an int.
func rangeSize(start, end int) (int, bool) {
	lo, hi := start, end
	if hi < lo {
		lo, hi = hi, lo
	}
	diff := uint64(hi) - uint64(lo)
	if diff >= uint64(math.MaxInt) {
		return 0, false
	}
	return int(diff) + 1, true
}

// integerRange returns start..end inclusive, counting down when end < start.
// Callers check the size with rangeSize first.
func integerRange(start, end int) []entry {
	step := 1
	if end < start {
		step = -1
	}
	n, _ := rangeSize(start, end)
	items := make([]entry, 0, min(n, rangePrealloc))
	for i, v := 0, start; i < n; i, v = i+1, v+step {
		items = append(items, entry{Key: i, Value: v})
	}
	return items
}
