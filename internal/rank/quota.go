package rank

import (
	"sort"

	"github.com/rgarhwal/intern-advisor/internal/intern"
	"github.com/rgarhwal/intern-advisor/internal/match"
	"github.com/rgarhwal/intern-advisor/internal/profile"
)

// Business policy constants. The government boost and the 3/3-of-5 quota
// split are fixed product decisions, not computed optimums.
const (
	TopK = 5

	governmentQuota = 3
	privateQuota    = 3
	governmentBoost = 10
	maxScore        = 100
)

// Ranker produces the quota-balanced top-K for a candidate pool.
type Ranker struct {
	matcher *match.Matcher
}

func New(matcher *match.Matcher) *Ranker {
	return &Ranker{matcher: matcher}
}

// Rank scores every candidate against the profile, applies the government
// priority boost, and assembles a quota-balanced top five ordered by score
// descending. Sub-five pools return whatever is available; Rank never fails.
func (r *Ranker) Rank(pool []*intern.Candidate, prof *profile.Profile) []*intern.Candidate {
	userSkills := prof.NormalizedSkills()

	var government, private []*intern.Candidate
	for _, candidate := range pool {
		score := r.matcher.Score(userSkills, candidate.RequiredSkills(), prof)
		if candidate.IsGovernment() {
			score += governmentBoost
			if score > maxScore {
				score = maxScore
			}
			candidate.MatchScore = score
			government = append(government, candidate)
			continue
		}
		candidate.MatchScore = score
		private = append(private, candidate)
	}

	sortByScore(government)
	sortByScore(private)

	top := make([]*intern.Candidate, 0, TopK)
	top = append(top, take(government, governmentQuota)...)
	top = append(top, take(private, min(privateQuota, TopK-len(top)))...)

	// Backfill from whichever bucket still has entries when the other ran
	// short of its quota.
	if len(top) < TopK && len(government) > governmentQuota {
		top = append(top, take(government[governmentQuota:], TopK-len(top))...)
	}
	if len(top) < TopK && len(private) > privateQuota {
		top = append(top, take(private[privateQuota:], TopK-len(top))...)
	}

	// Quota assembly interleaves the buckets; one final stable sort keeps the
	// presented list ordered without disturbing equal-score neighbours.
	sortByScore(top)

	return top
}

func sortByScore(candidates []*intern.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})
}

func take(candidates []*intern.Candidate, n int) []*intern.Candidate {
	if n < 0 {
		n = 0
	}
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
