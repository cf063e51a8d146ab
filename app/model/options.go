package model

// DropdownOptions is the single shared document holding the maintained lists
// behind free-text-prone fields. Append and remove only.
type DropdownOptions struct {
	BranchList           []string `bson:"branchList" json:"branchList"`
	TrainingLocationList []string `bson:"trainingLocationList" json:"trainingLocationList"`
}

const (
	OptionFieldBranch           = "branchList"
	OptionFieldTrainingLocation = "trainingLocationList"
)

type UpdateOptionRequest struct {
	Field string `json:"field" validate:"required,oneof=branchList trainingLocationList"`
	Value string `json:"value" validate:"required"`
}
