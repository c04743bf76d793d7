package domain

// Status tracks each pipeline milestone for a single processing run.
type Status string

const (
	StatusExtractingAudio Status = "extracting_audio"
	StatusPreparingAudio  Status = "preparing_audio"
	StatusLoadingModel    Status = "loading_model"
	StatusTranscribing    Status = "transcribing"
	StatusRendering       Status = "rendering"
	StatusSummarizing     Status = "summarizing"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
)
