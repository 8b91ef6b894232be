package jobs

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter struct {
	n   int64
	err error
}

func (s *stubCounter) CountOrphanExpenses() (int64, error) {
	return s.n, s.err
}

func TestSweepWarnsWhenOrphansExist(t *testing.T) {
	log, hook := test.NewNullLogger()
	sweeper := NewOrphanSweeper(&stubCounter{n: 3}, log)

	sweeper.Sweep()

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "3 expenses")
}

func TestSweepLogsCountError(t *testing.T) {
	log, hook := test.NewNullLogger()
	sweeper := NewOrphanSweeper(&stubCounter{err: errors.New("connection refused")}, log)

	sweeper.Sweep()

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	log, _ := test.NewNullLogger()
	sweeper := NewOrphanSweeper(&stubCounter{}, log)

	assert.Error(t, sweeper.Start("not a schedule"))
}
