package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"fontquiz/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecommend(t *testing.T) {
	out, err := execute(t, "recommend", "--answers", "AAABAAAABA")
	require.NoError(t, err)
	assert.Contains(t, out, "Style: Timeless Editorial (timeless-editorial)")
	assert.Contains(t, out, "EB Garamond")

	out, err = execute(t, "recommend", "--json", "-a", "AAAAAAAAAA")
	require.NoError(t, err)
	var res model.Results
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, model.StyleClassicSerif, res.Recommendation.Style)
	assert.Equal(t, "EB Garamond", res.Recommendation.Primary.Name)
	assert.Equal(t, 1, res.Coarse.Tone)
}

func TestRecommendRejectsBadAnswers(t *testing.T) {
	_, err := execute(t, "recommend", "--answers", "ABC")
	assert.Error(t, err)

	_, err = execute(t, "recommend")
	assert.Error(t, err, "answers flag is required")
}

func TestClassify(t *testing.T) {
	out, err := execute(t, "classify", "--vector", "1,1,1,5,1")
	require.NoError(t, err)
	assert.Contains(t, out, "Editorial rule matched")

	out, err = execute(t, "classify", "--json", "--vector", "3, 4, 3, 3, 4")
	require.NoError(t, err)
	var res classifyOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, model.StyleSlabSerif, res.Recommendation.Style)
	assert.Equal(t, "Roboto Slab", res.Recommendation.Primary.Name)
	require.Len(t, res.Matches, 6)
	assert.Equal(t, model.StyleSlabSerif, res.Matches[4].Style)
	assert.Equal(t, 5, res.Matches[4].Matches)
}

func TestParseVector(t *testing.T) {
	v, err := parseVector("1,2,3,4,5")
	require.NoError(t, err)
	assert.Equal(t, model.TraitVector{Tone: 1, Energy: 2, Design: 3, Era: 4, Structure: 5}, v)

	for _, bad := range []string{"", "1,2,3,4", "1,2,3,4,6", "1,2,x,4,5", "0,1,1,1,1"} {
		_, err := parseVector(bad)
		assert.Error(t, err, bad)
	}
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Timeless Editorial")
	assert.Contains(t, out, "slab-serif")

	out, err = execute(t, "catalog", "--style", "slab-serif", "--json")
	require.NoError(t, err)
	var fonts []model.FontRecord
	require.NoError(t, json.Unmarshal([]byte(out), &fonts))
	names := make([]string, len(fonts))
	for i, f := range fonts {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"Roboto Slab", "Arvo", "Zilla Slab", "Bitter"}, names)

	_, err = execute(t, "catalog", "--style", "comic")
	assert.Error(t, err)
}

func TestQuestions(t *testing.T) {
	out, err := execute(t, "questions", "--json")
	require.NoError(t, err)
	var qs []model.Question
	require.NoError(t, json.Unmarshal([]byte(out), &qs))
	require.Len(t, qs, 10)
	assert.Equal(t, model.TraitTone, qs[0].Trait)
	assert.Equal(t, model.TraitStructure, qs[9].Trait)
}
