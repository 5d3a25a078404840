package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilterEmptyTerm(t *testing.T) {
	assert.Equal(t, bson.M{}, searchFilter(""))
}

func TestSearchFilter(t *testing.T) {
	filter := searchFilter("smith")

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 3)

	fields := make([]string, 0, len(or))
	for _, clause := range or {
		require.Len(t, clause, 1)
		for field, v := range clause {
			fields = append(fields, field)
			re, ok := v.(primitive.Regex)
			require.True(t, ok)
			assert.Equal(t, "smith", re.Pattern)
			assert.Equal(t, "i", re.Options)
		}
	}
	assert.ElementsMatch(t, []string{"name", "phone_no", "custom_id"}, fields)
}

func TestSearchFilterQuotesMetaCharacters(t *testing.T) {
	filter := searchFilter("555.0001")

	or := filter["$or"].([]bson.M)
	re := or[0]["name"].(primitive.Regex)
	assert.Equal(t, `555\.0001`, re.Pattern, "regex metacharacters in the term must match literally")
}
