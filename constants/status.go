package constants

// AnalysisStatus is the canonical status for rows in analysis_attempt.
type AnalysisStatus string

// Stable values (store these exact strings in DB).
const (
	AnalysisStatusRunning       AnalysisStatus = "RUNNING"        // in progress
	AnalysisStatusSucceeded     AnalysisStatus = "SUCCEEDED"      // final result produced
	AnalysisStatusFailedFree    AnalysisStatus = "FAILED_FREE"    // failed before any credit was spent
	AnalysisStatusFailedCharged AnalysisStatus = "FAILED_CHARGED" // failed after the credit was spent
)
