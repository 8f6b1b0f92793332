package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		input string
		want  Params
	}{
		{"9:9:10:1", Beginner},
		{"16:30:99:0", Params{Rows: 16, Cols: 30, MineCount: 99}},
		{"1:2:0:0", Params{Rows: 1, Cols: 2}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			p, err := ParseParams(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, p)
			assert.Equal(t, test.input, p.String())
		})
	}
}

func TestParseParamsErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"9:9:10",
		"a:b:c:d",
		"9:9:10:2",
		"3:3:9:0",
		"0:3:1:0",
	} {
		_, err := ParseParams(input)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "input %q", input)
	}
}
