package services

import (
	"strings"

	"github.com/rs/zerolog/log"

	"vibeflow/models"
)

// NormalizeTitle lowercases a title and collapses internal whitespace
// runs to single hyphens, e.g. "Herbal  Tea  Break" -> "herbal-tea-break".
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

func dedupeKey(doc models.RecommendationDoc) string {
	return doc.ID.Hex() + "|" + NormalizeTitle(doc.Title)
}

// Deduplicate collapses catalog rows sharing an (id, normalized-title)
// identity into one entry each, keeping the first occurrence and the
// first-seen order, and projects the survivors into the domain shape.
// Reseeding and partial seeds can leave duplicate rows behind; this is
// the pass that masks them.
func Deduplicate(rows []models.RecommendationDoc) []models.Recommendation {
	seen := make(map[string]struct{}, len(rows))
	out := make([]models.Recommendation, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		key := dedupeKey(row)
		if _, ok := seen[key]; ok {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		out = append(out, models.Recommendation{
			ID:           row.ID.Hex(),
			Title:        row.Title,
			Description:  row.Description,
			Category:     row.Category,
			MoodTypes:    row.MoodTypes,
			EnergyLevels: row.EnergyLevels,
			ImageURL:     row.ImageURL,
		})
	}
	if dropped > 0 {
		log.Debug().Int("in", len(rows)).Int("dropped", dropped).Msg("deduplicated recommendations")
	}
	return out
}
