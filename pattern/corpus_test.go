package pattern_test

import (
	"math/big"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/combigen/pattern"
)

// corpusFile mirrors testdata/corpus.yaml.
type corpusFile struct {
	Patterns []corpusPattern `yaml:"patterns"`
	Errors   []corpusError   `yaml:"errors"`
}

type corpusPattern struct {
	Name        string            `yaml:"name"`
	Pattern     string            `yaml:"pattern"`
	RepeatLimit *int              `yaml:"repeat_limit,omitempty"`
	Universe    string            `yaml:"universe,omitempty"`
	Size        string            `yaml:"size"`
	Values      map[string]string `yaml:"values"`
}

type corpusError struct {
	Pattern string `yaml:"pattern"`
	Kind    string `yaml:"kind"`
	Offset  int    `yaml:"offset"`
}

func loadCorpus(t *testing.T) corpusFile {
	t.Helper()
	data, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)
	var f corpusFile
	require.NoError(t, yaml.Unmarshal(data, &f))
	require.NotEmpty(t, f.Patterns)
	return f
}

func TestCorpusPatterns(t *testing.T) {
	for _, tc := range loadCorpus(t).Patterns {
		t.Run(tc.Name, func(t *testing.T) {
			var opts []pattern.Option
			if tc.RepeatLimit != nil {
				opts = append(opts, pattern.WithRepeatLimit(*tc.RepeatLimit))
			}
			if tc.Universe != "" {
				opts = append(opts, pattern.WithUniverse(tc.Universe))
			}
			g, err := pattern.Compile(tc.Pattern, opts...)
			require.NoError(t, err)
			require.Equal(t, tc.Size, g.Size().String())

			for idx, want := range tc.Values {
				i, ok := new(big.Int).SetString(idx, 10)
				require.True(t, ok, "index %q", idx)
				got, err := g.Get(i)
				require.NoError(t, err)
				require.Equal(t, want, got, "index %s", idx)
			}
		})
	}
}

func TestCorpusErrors(t *testing.T) {
	kinds := map[string]error{
		"malformed":   pattern.ErrMalformedPattern,
		"unsupported": pattern.ErrUnsupportedSyntax,
	}
	for _, tc := range loadCorpus(t).Errors {
		t.Run(tc.Pattern, func(t *testing.T) {
			kind, ok := kinds[tc.Kind]
			require.True(t, ok, "unknown kind %q", tc.Kind)

			_, err := pattern.Compile(tc.Pattern)
			require.ErrorIs(t, err, kind)
			var perr *pattern.Error
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tc.Offset, perr.Offset)
		})
	}
}
