package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Discipline is one of the three specialty tracks a trainee can train
// and be evaluated in.
type Discipline string

const (
	DisciplineReflexology Discipline = "Reflexology"
	DisciplineAthletic    Discipline = "AthleticMassage"
	DisciplineSeitai      Discipline = "Seitai"
)

func Disciplines() []Discipline {
	return []Discipline{DisciplineReflexology, DisciplineAthletic, DisciplineSeitai}
}

func ParseDiscipline(s string) (Discipline, error) {
	switch Discipline(s) {
	case DisciplineReflexology, DisciplineAthletic, DisciplineSeitai:
		return Discipline(s), nil
	}
	return "", fmt.Errorf("unknown discipline %q", s)
}

// Status is the lifecycle tag stored on a training record. The vocabulary is
// closed: Training:<Discipline>, CheckStage:<n>, Passed, Evaluation:<Discipline>,
// Resigned and ReplacedParticipant. Unknown tags are rejected at the write
// boundary by ParseStatus.
type Status string

const (
	StatusPassed              Status = "Passed"
	StatusResigned            Status = "Resigned"
	StatusReplacedParticipant Status = "ReplacedParticipant"

	TrainingPrefix   = "Training:"
	CheckStagePrefix = "CheckStage:"
	EvaluationPrefix = "Evaluation:"
)

func TrainingStatus(d Discipline) Status {
	return Status(TrainingPrefix + string(d))
}

func CheckStageStatus(n int) Status {
	return Status(CheckStagePrefix + strconv.Itoa(n))
}

func EvaluationStatus(d Discipline) Status {
	return Status(EvaluationPrefix + string(d))
}

func (s Status) IsTraining() bool   { return strings.HasPrefix(string(s), TrainingPrefix) }
func (s Status) IsCheckStage() bool { return strings.HasPrefix(string(s), CheckStagePrefix) }
func (s Status) IsEvaluation() bool { return strings.HasPrefix(string(s), EvaluationPrefix) }

// Discipline returns the discipline suffix of a Training or Evaluation status.
func (s Status) Discipline() (Discipline, bool) {
	var raw string
	switch {
	case s.IsTraining():
		raw = strings.TrimPrefix(string(s), TrainingPrefix)
	case s.IsEvaluation():
		raw = strings.TrimPrefix(string(s), EvaluationPrefix)
	default:
		return "", false
	}
	d, err := ParseDiscipline(raw)
	if err != nil {
		return "", false
	}
	return d, true
}

// CheckStageNumber parses the numeric suffix of a CheckStage status.
// Malformed suffixes report ok=false and are discarded by callers.
func (s Status) CheckStageNumber() (int, bool) {
	if !s.IsCheckStage() {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(string(s), CheckStagePrefix))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPassed, StatusResigned, StatusReplacedParticipant:
		return st, nil
	}
	switch {
	case st.IsTraining(), st.IsEvaluation():
		if _, ok := st.Discipline(); ok {
			return st, nil
		}
	case st.IsCheckStage():
		if _, ok := st.CheckStageNumber(); ok {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Result refines an in-progress CheckStage or Evaluation record.
type Result string

const (
	ResultPassed     Result = "Passed"
	ResultInProgress Result = "InProgress"
)

func ParseResult(s string) (Result, error) {
	switch Result(s) {
	case ResultPassed, ResultInProgress:
		return Result(s), nil
	}
	return "", fmt.Errorf("unknown result %q", s)
}
