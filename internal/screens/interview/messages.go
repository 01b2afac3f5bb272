package interview

import "time"

// startedMsg is sent when the question set has been drawn.
type startedMsg struct {
	Err error
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// answerRecordedMsg is sent when a submit, skip, or timeout has been
// recorded. Name extraction runs inside the same command, so this can take
// a moment on the first answer.
type answerRecordedMsg struct {
	Err error
}
