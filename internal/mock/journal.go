package mock

import (
	"time"

	"github.com/numapde/pubfork/internal/app"
)

// Journal mocks app.Journal.
type Journal struct {
	RecordFunc func(p app.Project, createdAt time.Time) error

	Recorded []app.Project
}

// Record stores an entry for given project.
func (m *Journal) Record(p app.Project, createdAt time.Time) error {
	m.Recorded = append(m.Recorded, p)
	if m.RecordFunc != nil {
		return m.RecordFunc(p, createdAt)
	}

	return nil
}
