package recommender

import (
	"math"
	"sort"
)

// Thesis type classifications.
const (
	ThesisResearch  = "Research"
	ThesisPractical = "Practical Application"
)

// Recommendation is the computed outcome of one quiz attempt.
type Recommendation struct {
	ThesisType string         `json:"thesisType"`
	Scores     map[string]int `json:"scores"`
	TopAreas   []string       `json:"topAreas"`
}

// Compute derives a recommendation from an answer map. Missing question
// ids count as 0. Values are taken as-is: out-of-range input can push a
// score outside 0-100, which is accepted behavior. The function is pure;
// the same answers always produce the same recommendation.
func Compute(answers map[string]int) Recommendation {
	get := func(id string) float64 { return float64(answers[id]) }

	// Section A: mean of the research items vs the application items.
	// A tie favors Research.
	researchScore := (get("q01") + get("q02") + get("q05")) / 3
	appScore := (get("q03") + get("q04") + get("q06")) / 3
	thesisType := ThesisPractical
	if researchScore >= appScore {
		thesisType = ThesisResearch
	}

	// Section B aggregates.
	independent := get("q07") + get("q12")
	teamwork := get("q08")
	structured := get("q09") + get("q14")
	flexible := get("q10") + get("q13")

	workingFit := map[string]float64{
		AreaAI:     (independent + flexible/2) / 10,
		AreaData:   (independent + flexible/2) / 10,
		AreaSec:    (independent + structured) / 10,
		AreaCloud:  (structured + teamwork/2) / 10,
		AreaNet:    (structured + teamwork/2) / 10,
		AreaWeb:    (teamwork + flexible) / 10,
		AreaMobile: (teamwork + flexible) / 10,
		AreaUX:     (teamwork + flexible) / 10,
		AreaWeb3:   (flexible + independent/2) / 10,
		AreaIoT:    (structured + independent) / 10,
		AreaPM:     (structured + teamwork) / 10,
	}

	// Section C: one raw interest value per area.
	base := map[string]float64{
		AreaAI:     get("q15"),
		AreaData:   get("q16"),
		AreaSec:    get("q17"),
		AreaWeb:    get("q18"),
		AreaMobile: get("q19"),
		AreaCloud:  get("q20"),
		AreaNet:    get("q21"),
		AreaIoT:    get("q22"),
		AreaWeb3:   get("q23"),
		AreaUX:     get("q24"),
		AreaPM:     get("q25"),
	}

	// Section D: skill boost per area.
	boost := map[string]float64{
		AreaAI:     (get("q26") + get("q12")) / 10,
		AreaData:   (get("q26") + get("q12")) / 10,
		AreaSec:    get("q29") / 5,
		AreaCloud:  get("q27") / 5,
		AreaNet:    get("q29") / 5,
		AreaWeb:    (get("q27") + get("q28")) / 10,
		AreaMobile: (get("q27") + get("q28")) / 10,
		AreaUX:     get("q30") / 5,
		AreaWeb3:   get("q28") / 5,
		AreaIoT:    (get("q27") + get("q29")) / 10,
		AreaPM:     get("q30") / 5,
	}

	scores := make(map[string]int, len(Areas))
	for _, area := range Areas {
		interest := base[area] / 5
		adjustedInterest := interest * (1 + boost[area]*0.5)
		final := adjustedInterest*0.7 + workingFit[area]*0.2 + boost[area]*0.1
		// math.Round rounds half away from zero, which both producers of
		// this number must agree on.
		scores[area] = int(math.Round(final * 100))
	}

	// Rank over the declaration order; the stable sort keeps ties in that
	// order.
	ranked := make([]string, len(Areas))
	copy(ranked, Areas)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	return Recommendation{
		ThesisType: thesisType,
		Scores:     scores,
		TopAreas:   ranked[:3],
	}
}
