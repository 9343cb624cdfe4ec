// Package poolinfer decides from listing text whether a property has a
// private pool and how it is built.
package poolinfer

import (
	"math"
	"regexp"

	"poolscout/internal/domain/entity"
	"poolscout/internal/transform/textnorm"
)

// DefaultWindow is the maximum number of words allowed between "pool" and a cue.
const DefaultWindow = 12

const (
	EvidencePrivate   = "private_cues_near_pool"
	EvidenceCommunity = "community_cues_near_pool"
	EvidenceAmbiguous = "ambiguous_private_vs_community"
	EvidenceNoSignal  = "pool_mentioned_no_strong_signal"
	EvidenceExcluded  = "pool_exclusion_phrase"
	EvidenceNegated   = "pool_negated"
)

var dimensionPattern = regexp.MustCompile(`\b\d{1,2}\s*x\s*\d{1,2}\b`)

// Classifier is safe for concurrent use; it holds only compiled cue lists.
type Classifier struct {
	window      int
	exclusions  []textnorm.Phrase
	negations   []textnorm.Phrase
	communal    []textnorm.Phrase
	private     []textnorm.Phrase
	inGround    []textnorm.Phrase
	aboveGround []textnorm.Phrase
}

// New builds a classifier. A non-positive window falls back to DefaultWindow.
func New(window int) *Classifier {
	if window <= 0 {
		window = DefaultWindow
	}

	return &Classifier{
		window:      window,
		exclusions:  textnorm.CompilePhrases(exclusionCues...),
		negations:   textnorm.CompilePhrases(negationCues...),
		communal:    textnorm.CompilePhrases(communalCues...),
		private:     textnorm.CompilePhrases(privateCues...),
		inGround:    textnorm.CompilePhrases(inGroundCues...),
		aboveGround: textnorm.CompilePhrases(aboveGroundCues...),
	}
}

// Classify returns the persisted verdict for a description.
func (c *Classifier) Classify(description string) entity.PoolVerdict {
	return c.Analyze(description).Verdict
}

// Analyze runs every stage and keeps the intermediate signals. Each stage can
// only clear the pool flag, never raise it again.
func (c *Classifier) Analyze(description string) entity.PoolAnalysis {
	a := entity.PoolAnalysis{
		Category:     entity.PoolCategoryNone,
		Construction: entity.ConstructionUnknown,
		Verdict:      entity.NoPool,
	}

	normalized := textnorm.Normalize(description)
	tokens := textnorm.Tokens(normalized)

	a.Mentioned = textnorm.ContainsWord(tokens, "pool")
	if !a.Mentioned {
		return a
	}

	if textnorm.ContainsAny(tokens, c.exclusions) {
		a.Excluded = true
		a.Evidence = EvidenceExcluded

		return a
	}

	if textnorm.ContainsAny(tokens, c.negations) {
		a.Negated = true
		a.Evidence = EvidenceNegated

		return a
	}

	a.Communal = textnorm.WithinWindow(tokens, isPoolToken, c.communal, c.window)
	a.Private = textnorm.WithinWindow(tokens, isPoolToken, c.private, c.window)
	a.InGround = textnorm.ContainsAny(tokens, c.inGround)
	a.AboveGround = textnorm.ContainsAny(tokens, c.aboveGround)
	a.Dimensions = dimensionPattern.MatchString(normalized)

	c.score(&a)
	a.Construction = construction(a)
	a.Verdict = rectify(a)

	return a
}

// ClassifyListings returns a copy of listings with the pool verdict set from
// description and amenities.
func (c *Classifier) ClassifyListings(listings []entity.Listing) []entity.Listing {
	out := make([]entity.Listing, len(listings))
	for i, l := range listings {
		l.Pool = c.Classify(l.FullDescription())
		out[i] = l
	}

	return out
}

func (c *Classifier) score(a *entity.PoolAnalysis) {
	privateScore := 3*b2i(a.Private) + 2*b2i(a.InGround) + b2i(a.AboveGround)
	communalScore := 3 * b2i(a.Communal)

	switch {
	case privateScore >= communalScore+2 && privateScore > 0:
		a.Category = entity.PoolCategoryPrivate
		a.Confidence = clip(0.7+0.1*float64(privateScore-communalScore), 0.95)
		a.Evidence = EvidencePrivate
	case communalScore >= privateScore+2 && communalScore > 0:
		a.Category = entity.PoolCategoryCommunity
		a.Confidence = clip(0.7+0.1*float64(communalScore-privateScore), 0.95)
		a.Evidence = EvidenceCommunity
	case privateScore > 0 || communalScore > 0:
		a.Category = entity.PoolCategoryUnknown
		a.Confidence = clip(0.6+0.05*float64(privateScore+communalScore), 0.85)
		a.Evidence = EvidenceAmbiguous
	default:
		a.Category = entity.PoolCategoryUnknown
		a.Confidence = 0.55
		a.Evidence = EvidenceNoSignal
	}
}

// construction picks the side whose cues dominate by a margin of two. A bare
// dimension such as "16x32" only tips an in-ground cue, it never decides alone.
func construction(a entity.PoolAnalysis) entity.Construction {
	if a.Category != entity.PoolCategoryPrivate {
		return entity.ConstructionUnknown
	}

	inScore := 3*b2i(a.InGround) + b2i(a.Dimensions)
	aboveScore := 3 * b2i(a.AboveGround)

	switch {
	case inScore >= aboveScore+2 && inScore > 0:
		return entity.ConstructionInGround
	case aboveScore >= inScore+2 && aboveScore > 0:
		return entity.ConstructionAboveGround
	default:
		return entity.ConstructionUnknown
	}
}

func rectify(a entity.PoolAnalysis) entity.PoolVerdict {
	if a.Category != entity.PoolCategoryPrivate {
		return entity.NoPool
	}

	switch a.Construction {
	case entity.ConstructionInGround:
		return entity.PoolVerdict{Flag: true, Type: entity.PoolTypeInGround}
	case entity.ConstructionAboveGround:
		return entity.PoolVerdict{Flag: true, Type: entity.PoolTypeAboveGround}
	default:
		return entity.PoolVerdict{Flag: true, Type: entity.PoolTypeNone}
	}
}

func isPoolToken(tok string) bool {
	return tok == "pool" || tok == "pools"
}

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}

func clip(v, upper float64) float64 {
	return math.Max(0, math.Min(v, upper))
}
