package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooleanTrueValues(t *testing.T) {
	values := []any{true, "true", "t", "yes", "y", -1, 1, "YeS", "TRUE", "Y", "-1", "1", 1.0, int64(-1)}

	for _, v := range values {
		assert.Equal(t, "Yes", Boolean(BoolValueOf(v), DefaultTrueLabel, DefaultFalseLabel), "value %#v", v)
	}
}

func TestBooleanFalseValues(t *testing.T) {
	values := []any{false, "trueee", "fa1lse", "adslfkjadslkfjadsf", 0, 5, "", nil, 1.5, "no", "1.0"}

	for _, v := range values {
		assert.Equal(t, "No", Boolean(BoolValueOf(v), DefaultTrueLabel, DefaultFalseLabel), "value %#v", v)
	}
}

func TestBooleanCustomLabels(t *testing.T) {
	testCases := []struct {
		name     string
		value    BoolValue
		expected string
	}{
		{"native true", Bool(true), "Hey"},
		{"text true", Text("true"), "Hey"},
		{"native false", Bool(false), "YeahNo"},
		{"number zero", Number(0), "YeahNo"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Boolean(tc.value, "Hey", "YeahNo"))
		})
	}
}

func TestBoolValueOf(t *testing.T) {
	yes := true

	assert.Equal(t, Bool(true), BoolValueOf(true))
	assert.Equal(t, Bool(true), BoolValueOf(&yes))
	assert.Equal(t, Bool(false), BoolValueOf((*bool)(nil)))
	assert.Equal(t, Text("y"), BoolValueOf("y"))
	assert.Equal(t, Text("y"), BoolValueOf([]byte("y")))
	assert.Equal(t, Number(-1), BoolValueOf(int8(-1)))
	assert.Equal(t, Number(7), BoolValueOf(uint16(7)))
	assert.Equal(t, Text(""), BoolValueOf(nil))
	assert.Equal(t, Text("[1]"), BoolValueOf([]int{1}))
	assert.Equal(t, Number(1), BoolValueOf(Number(1)))
}
