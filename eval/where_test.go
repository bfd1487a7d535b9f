package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flatdb/storage"
)

func makeRecord(fields map[string]interface{}, order ...string) storage.Record {
	rec := storage.NewRecord()
	for _, k := range order {
		rec.Set(k, fields[k])
	}
	return rec
}

func cityAgeRecord(city string, age float64) storage.Record {
	return makeRecord(map[string]interface{}{"city": city, "age": age}, "city", "age")
}

func TestMatchesAndOr(t *testing.T) {
	records := []struct {
		rec      storage.Record
		expected bool
	}{
		{cityAgeRecord("Berlin", 35), true},  // left branch
		{cityAgeRecord("Berlin", 25), false}, // city matches, age does not
		{cityAgeRecord("Paris", 20), true},   // right branch
		{cityAgeRecord("London", 40), false}, // neither branch
	}

	expr := `(city = "Berlin" AND age > 30) OR city = "Paris"`
	for _, tt := range records {
		city, _ := tt.rec.Get("city")
		assert.Equal(t, tt.expected, Matches(expr, tt.rec), "city=%v", city)
	}
}

func TestMatchesOrCommutative(t *testing.T) {
	recs := []storage.Record{
		makeRecord(map[string]interface{}{"a": "1", "b": "9"}, "a", "b"),
		makeRecord(map[string]interface{}{"a": "9", "b": "2"}, "a", "b"),
		makeRecord(map[string]interface{}{"a": "9", "b": "9"}, "a", "b"),
		makeRecord(map[string]interface{}{"a": "1", "b": "2"}, "a", "b"),
	}
	for _, rec := range recs {
		assert.Equal(t,
			Matches("a=1 OR b=2", rec),
			Matches("b=2 OR a=1", rec))
	}
}

func TestMatchesPrecedence(t *testing.T) {
	rec := cityAgeRecord("Berlin", 35)

	// OR binds looser than AND.
	assert.True(t, Matches(`city = "Paris" OR city = "Berlin" AND age > 30`, rec))
	assert.False(t, Matches(`city = "Paris" OR city = "Berlin" AND age > 40`, rec))
	assert.True(t, Matches(`city = "Berlin" AND age > 30 OR city = "Paris"`, rec))
}

func TestMatchesParenthesisStripping(t *testing.T) {
	rec := cityAgeRecord("Berlin", 35)

	assert.True(t, Matches(`(city = "Berlin")`, rec))
	assert.True(t, Matches(`((city = "Berlin"))`, rec), "redundant layers strip repeatedly")
	assert.True(t, Matches(`(city = "Berlin" AND age = 35)`, rec))
	assert.True(t, Matches(`(city = "Berlin") AND age = 35 OR city = "Paris"`, rec))
}

func TestMatchesKnownLimitations(t *testing.T) {
	rec := cityAgeRecord("Berlin", 35)

	// Unwrapping checks starts-with/ends-with only, so a branch whose
	// first and last parens are not a matching pair mis-strips and the
	// mangled terms fail closed. Kept for compatibility.
	assert.False(t, Matches(`(city = "Berlin") AND (age = 35)`, rec))

	// Unreducible branches are false, never an error.
	assert.False(t, Matches(`completely bogus`, rec))
	assert.False(t, Matches(`(((`, rec))
	assert.False(t, Matches(`AND city = "Berlin"`, rec))
	assert.False(t, Matches(`city = "Berlin" AND `, rec), "trailing operator leaves an empty term")
}

func TestMatchesQuotedOperators(t *testing.T) {
	rec := makeRecord(map[string]interface{}{"note": "this AND that", "x": "1"}, "note", "x")

	assert.True(t, Matches(`note = "this AND that" AND x = 1`, rec))
	assert.False(t, Matches(`note = "this AND that" AND x = 2`, rec))
}
