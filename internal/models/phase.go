package models

// Phase represents the current stage of a detective session
type Phase string

const (
	PhaseExploring Phase = "exploring"
	PhaseJudging   Phase = "judging"
	PhaseFinished  Phase = "finished"
)
