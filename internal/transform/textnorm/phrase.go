package textnorm

// Phrase is a normalized cue of one or more words. A phrase matches at a token
// position when every word but the last is equal and the last word is a prefix
// of its token, so "deck" matches "decks" and "condo" matches "condominium",
// but "yard" does not match inside "backyard".
type Phrase []string

// CompilePhrases normalizes a cue list. Cues that normalize to nothing are skipped.
func CompilePhrases(cues ...string) []Phrase {
	phrases := make([]Phrase, 0, len(cues))
	for _, cue := range cues {
		words := Tokens(Normalize(cue))
		if len(words) == 0 {
			continue
		}
		phrases = append(phrases, Phrase(words))
	}

	return phrases
}

// MatchAt reports whether the phrase starts at tokens[i].
func (p Phrase) MatchAt(tokens []string, i int) bool {
	if len(p) == 0 || i < 0 || i+len(p) > len(tokens) {
		return false
	}

	last := len(p) - 1
	for j, word := range p[:last] {
		if tokens[i+j] != word {
			return false
		}
	}

	tok := tokens[i+last]

	return len(tok) >= len(p[last]) && tok[:len(p[last])] == p[last]
}

// ContainsAny reports whether any phrase occurs anywhere in tokens.
func ContainsAny(tokens []string, phrases []Phrase) bool {
	for i := range tokens {
		for _, p := range phrases {
			if p.MatchAt(tokens, i) {
				return true
			}
		}
	}

	return false
}

// WithinWindow reports whether a target token and any phrase occur with at
// most window words between them, in either order. The target must lie
// outside the phrase span, so a cue like "indoor pool" needs another pool
// mention nearby to count.
func WithinWindow(tokens []string, isTarget func(string) bool, phrases []Phrase, window int) bool {
	var targets []int
	for i, t := range tokens {
		if isTarget(t) {
			targets = append(targets, i)
		}
	}
	if len(targets) == 0 {
		return false
	}

	for i := range tokens {
		for _, p := range phrases {
			if !p.MatchAt(tokens, i) {
				continue
			}

			start, end := i, i+len(p)-1
			for _, t := range targets {
				if t > end && t-end-1 <= window {
					return true
				}
				if t < start && start-t-1 <= window {
					return true
				}
			}
		}
	}

	return false
}
