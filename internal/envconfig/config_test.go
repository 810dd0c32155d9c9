package envconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/numnet/internal/opr"
)

func TestProvider(t *testing.T) {
	cases := map[string]opr.Provider{
		"":          opr.Naive,
		"naive":     opr.Naive,
		"NAIVE":     opr.Naive,
		"\"naive\"": opr.Naive,
		"cuda":      opr.Naive,
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("NUMNET_PROVIDER", k)
			assert.Equal(t, v, Provider())
		})
	}
}

func TestVerbosity(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"false": 0,
		"0":     0,
		"1":     4,
		"true":  4,
		"6":     6,
		"-3":    0,
		"loud":  0,
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("NUMNET_DEBUG", k)
			assert.Equal(t, v, Verbosity())
		})
	}
}

func TestVar(t *testing.T) {
	t.Setenv("NUMNET_TEST_VAR", "  'quoted'  ")
	assert.Equal(t, "quoted", Var("NUMNET_TEST_VAR"))
}

func TestAsMap(t *testing.T) {
	t.Setenv("NUMNET_DEBUG", "2")
	m := AsMap()
	assert.Contains(t, m, "NUMNET_PROVIDER")
	assert.Equal(t, 2, m["NUMNET_DEBUG"].Value)
	assert.Equal(t, opr.Naive, m["NUMNET_PROVIDER"].Value)
}
