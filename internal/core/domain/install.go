package domain

// Outcome classifies the result of a single package install attempt.
type Outcome int

const (
	// OutcomeSucceeded means the package was installed.
	OutcomeSucceeded Outcome = iota
	// OutcomeFailed means version resolution or installation failed.
	OutcomeFailed
	// OutcomeSkipped means the package was already installed globally.
	OutcomeSkipped
)

// String returns the outcome's name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// PackageResult is the outcome of one install attempt.
// Spec carries the version to record: the installed version on success,
// the saved version otherwise.
type PackageResult struct {
	Spec    PackageSpec
	Outcome Outcome
	Err     error
}

// InstallReport holds the three disjoint outcome sequences of one install run.
type InstallReport struct {
	Succeeded []PackageSpec
	Failed    []PackageSpec
	Skipped   []PackageSpec
}

// Record appends r to the sequence matching its outcome.
func (r *InstallReport) Record(res PackageResult) {
	switch res.Outcome {
	case OutcomeSucceeded:
		r.Succeeded = append(r.Succeeded, res.Spec)
	case OutcomeFailed:
		r.Failed = append(r.Failed, res.Spec)
	case OutcomeSkipped:
		r.Skipped = append(r.Skipped, res.Spec)
	}
}

// Total returns the number of recorded packages.
func (r InstallReport) Total() int {
	return len(r.Succeeded) + len(r.Failed) + len(r.Skipped)
}

// Windows partitions specs into consecutive windows of at most size entries,
// preserving order. A size below one is treated as one.
func Windows(specs []PackageSpec, size int) [][]PackageSpec {
	if size < 1 {
		size = 1
	}
	windows := make([][]PackageSpec, 0, (len(specs)+size-1)/size)
	for start := 0; start < len(specs); start += size {
		end := min(start+size, len(specs))
		windows = append(windows, specs[start:end])
	}
	return windows
}
