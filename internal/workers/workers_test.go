// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Prem Dhumal

package workers

import (
	"context"
	"testing"
	"time"
)

// mockJob tracks Start/Stop calls.
type mockJob struct {
	startCount int
	stopCount  int
}

func (m *mockJob) Start(_ context.Context, _ time.Duration) { m.startCount++ }

func (m *mockJob) Stop() { m.stopCount++ }

func TestWorkers_Start_AllJobsStarted(t *testing.T) {
	j1 := &mockJob{}
	j2 := &mockJob{}
	j3 := &mockJob{}

	ws := NewWorkers(j1, j2, j3)
	ws.Start(context.Background(), time.Minute)

	for i, j := range []*mockJob{j1, j2, j3} {
		if j.startCount != 1 {
			t.Errorf("job[%d]: expected startCount=1, got %d", i, j.startCount)
		}
	}
}

func TestWorkers_Stop_AllJobsStopped(t *testing.T) {
	j1 := &mockJob{}
	j2 := &mockJob{}

	ws := NewWorkers(j1, j2)
	ws.Start(context.Background(), time.Minute)
	ws.Stop()

	for i, j := range []*mockJob{j1, j2} {
		if j.stopCount != 1 {
			t.Errorf("job[%d]: expected stopCount=1, got %d", i, j.stopCount)
		}
	}
}

func TestWorkers_Empty_NoPanic(t *testing.T) {
	ws := NewWorkers()

	ws.Start(context.Background(), time.Minute)
	ws.Stop()
}
