package model

// RunCounters are the running totals of one check run.
// Checked always equals Funded + Empty.
type RunCounters struct {
	Checked int `json:"checked"`
	Funded  int `json:"funded"`
	Empty   int `json:"empty"`
}

// CheckReport is returned by a check run, also when the run aborted midway
type CheckReport struct {
	InputPath  string      `json:"inputPath"`
	FundedPath string      `json:"fundedPath"`
	EmptyPath  string      `json:"emptyPath"`
	Counters   RunCounters `json:"counters"`
}
