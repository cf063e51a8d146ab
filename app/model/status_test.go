package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusAcceptsClosedVocabulary(t *testing.T) {
	for _, s := range []string{
		"Training:Reflexology",
		"Training:AthleticMassage",
		"Training:Seitai",
		"CheckStage:1",
		"CheckStage:12",
		"Passed",
		"Evaluation:Reflexology",
		"Evaluation:Seitai",
		"Resigned",
		"ReplacedParticipant",
	} {
		got, err := ParseStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, Status(s), got)
	}
}

func TestParseStatusRejectsUnknownTags(t *testing.T) {
	for _, s := range []string{
		"",
		"passed",
		"Training:",
		"Training:Reflex",
		"CheckStage:",
		"CheckStage:0",
		"CheckStage:-1",
		"CheckStage:abc",
		"Evaluation:Unknown",
		"Graduated",
		"Fired",
	} {
		_, err := ParseStatus(s)
		assert.Error(t, err, s)
	}
}

func TestStatusDiscipline(t *testing.T) {
	d, ok := TrainingStatus(DisciplineSeitai).Discipline()
	require.True(t, ok)
	assert.Equal(t, DisciplineSeitai, d)

	_, ok = StatusPassed.Discipline()
	assert.False(t, ok)
}

func TestCheckStageNumber(t *testing.T) {
	n, ok := CheckStageStatus(3).CheckStageNumber()
	require.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = Status("CheckStage:zero").CheckStageNumber()
	assert.False(t, ok)
}

func TestParseResult(t *testing.T) {
	r, err := ParseResult("Passed")
	require.NoError(t, err)
	assert.Equal(t, ResultPassed, r)

	_, err = ParseResult("Failed")
	assert.Error(t, err)
}
