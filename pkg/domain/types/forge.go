package types

import "log/slog"

type (
	Password    string
	TokenSecret string
	BranchName  string
)

// WorkBranchName is the branch created and checked out in a freshly cloned
// repository so that test commits never land on the default branch.
const WorkBranchName BranchName = "tektonci"

func (x Password) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x Password) String() string {
	return "***********"
}

func (x TokenSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x TokenSecret) String() string {
	return "***********"
}
