package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	cases := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"$200", 200, true},
		{"$1,000", 1000, true},
		{" $2,000 ", 2000, true},
		{"400", 400, true},
		{"$0", 0, true},
		{"", 0, false},
		{"None", 0, false},
		{"nan", 0, false},
		{"$", 0, false},
		{"$abc", 0, false},
		{"$12x", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseValue(tc.in)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseValueLenient(t *testing.T) {
	v, ok := ParseValueLenient("USD 1,200 ")
	assert.True(t, ok)
	assert.Equal(t, 1200, v)

	_, ok = ParseValueLenient("None")
	assert.False(t, ok)

	_, ok = ParseValueLenient("n/a")
	assert.False(t, ok)
}

func TestFormatValue(t *testing.T) {
	ptr := func(v int) *int { return &v }

	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "$0", FormatValue(ptr(0)))
	assert.Equal(t, "$200", FormatValue(ptr(200)))
	assert.Equal(t, "$999", FormatValue(ptr(999)))
	assert.Equal(t, "$1,000", FormatValue(ptr(1000)))
	assert.Equal(t, "$12,345", FormatValue(ptr(12345)))
	assert.Equal(t, "$1,234,567", FormatValue(ptr(1234567)))
}

func TestValueRoundTrip(t *testing.T) {
	values := []int{0, 1, 5, 99, 200, 999, 1000, 1001, 9999, 10000, 123456, 1000000, 2147483647}
	for v := 0; v < 5000; v += 7 {
		values = append(values, v)
	}

	for _, v := range values {
		v := v
		got, ok := ParseValue(FormatValue(&v))
		if !ok || got != v {
			t.Fatalf("round trip of %d gave (%d, %v)", v, got, ok)
		}
	}
}
