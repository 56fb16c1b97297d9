package engagement

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"job_engagement/internal/domain/entities"
)

// ReportIssue rejects delivered or rectified work. The loop through
// work_rectified has no upper bound; each report replaces the stored reason.
func (m *Machine) ReportIssue(snap Snapshot, actor entities.Actor, reason string) (Outcome, error) {
	reason = strings.TrimSpace(reason)
	return m.run(snap, actor, transition{
		op:     OpReportIssue,
		from:   []entities.JobStatus{entities.JobStatusWorkCompleted, entities.JobStatusWorkRectified},
		to:     entities.JobStatusWorkDisputed,
		actors: customerOnly,
		validate: func() error {
			if n := utf8.RuneCountInString(reason); n < m.minReasonLength {
				return fmt.Errorf("reason must be at least %d characters, got %d", m.minReasonLength, n)
			}
			return nil
		},
		apply: func(job *entities.Job) {
			job.DisputeReason = reason
		},
	})
}

// MarkRectified resubmits disputed work. The dispute reason is kept until
// the next report or approval.
func (m *Machine) MarkRectified(snap Snapshot, actor entities.Actor) (Outcome, error) {
	return m.run(snap, actor, transition{
		op:     OpMarkRectified,
		from:   []entities.JobStatus{entities.JobStatusWorkDisputed},
		to:     entities.JobStatusWorkRectified,
		actors: companyOnly,
	})
}
