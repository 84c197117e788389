package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vibeflow/models"
)

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "herbal-tea-break", NormalizeTitle("Herbal  Tea\tBreak"))
	assert.Equal(t, "walk", NormalizeTitle("Walk"))
	assert.Equal(t, "a-b-c", NormalizeTitle("  a b   c  "))
	assert.Equal(t, "", NormalizeTitle("   "))
}

func TestDeduplicateCollapsesIdenticalRows(t *testing.T) {
	r1 := primitive.NewObjectID()
	r2 := primitive.NewObjectID()
	rows := []models.RecommendationDoc{
		recDoc(r1, "Walk"),
		recDoc(r1, "Walk"),
		recDoc(r2, "Tea"),
	}

	out := Deduplicate(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "Walk", out[0].Title)
	assert.Equal(t, "Tea", out[1].Title)
	assert.Equal(t, r1.Hex(), out[0].ID)
	assert.Equal(t, r2.Hex(), out[1].ID)
}

func TestDeduplicateKeyNeedsBothIDAndTitle(t *testing.T) {
	r1 := primitive.NewObjectID()
	r2 := primitive.NewObjectID()

	// Same title under different ids: both survive.
	out := Deduplicate([]models.RecommendationDoc{recDoc(r1, "Walk"), recDoc(r2, "Walk")})
	assert.Len(t, out, 2)

	// Same id under different titles: both survive (upstream id reuse).
	out = Deduplicate([]models.RecommendationDoc{recDoc(r1, "Walk"), recDoc(r1, "Tea")})
	assert.Len(t, out, 2)

	// Titles differing only by case/whitespace collide.
	out = Deduplicate([]models.RecommendationDoc{recDoc(r1, "Herbal Tea  Break"), recDoc(r1, "herbal tea break")})
	assert.Len(t, out, 1)
	assert.Equal(t, "Herbal Tea  Break", out[0].Title)
}

func TestDeduplicatePreservesFirstSeenOrder(t *testing.T) {
	ids := make([]primitive.ObjectID, 4)
	for i := range ids {
		ids[i] = primitive.NewObjectID()
	}
	rows := []models.RecommendationDoc{
		recDoc(ids[0], "A"),
		recDoc(ids[1], "B"),
		recDoc(ids[0], "A"),
		recDoc(ids[2], "C"),
		recDoc(ids[1], "B"),
		recDoc(ids[3], "D"),
	}

	out := Deduplicate(rows)
	require.Len(t, out, 4)
	titles := []string{out[0].Title, out[1].Title, out[2].Title, out[3].Title}
	assert.Equal(t, []string{"A", "B", "C", "D"}, titles)
}

func TestDeduplicateIdempotentAndBounded(t *testing.T) {
	r1 := primitive.NewObjectID()
	r2 := primitive.NewObjectID()
	rows := []models.RecommendationDoc{
		recDoc(r1, "Walk"),
		recDoc(r1, "Walk"),
		recDoc(r2, "Tea"),
		recDoc(r2, "Tea"),
		recDoc(r2, "Tea"),
	}

	once := Deduplicate(rows)
	assert.LessOrEqual(t, len(once), len(rows))

	// Re-run over the survivors: projecting them back into docs must
	// be a fixed point.
	redocs := make([]models.RecommendationDoc, 0, len(once))
	for _, rec := range once {
		id, err := primitive.ObjectIDFromHex(rec.ID)
		require.NoError(t, err)
		redocs = append(redocs, models.RecommendationDoc{
			ID:           id,
			Title:        rec.Title,
			Description:  rec.Description,
			Category:     rec.Category,
			MoodTypes:    rec.MoodTypes,
			EnergyLevels: rec.EnergyLevels,
			ImageURL:     rec.ImageURL,
		})
	}
	twice := Deduplicate(redocs)
	assert.Equal(t, once, twice)
}

func TestDeduplicateAllDistinctKeepsEverything(t *testing.T) {
	rows := []models.RecommendationDoc{
		recDoc(primitive.NewObjectID(), "A"),
		recDoc(primitive.NewObjectID(), "B"),
		recDoc(primitive.NewObjectID(), "C"),
	}
	assert.Len(t, Deduplicate(rows), 3)
}

func TestDeduplicateEmptyInput(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
	assert.Empty(t, Deduplicate([]models.RecommendationDoc{}))
}
