package service_test

import (
	"testing"
	"time"

	"github.com/amanshinde1/ai-productivity-dashboard/internal/app/service"

	"github.com/stretchr/testify/require"
)

func TestSchedulerService_ScheduleDaily(t *testing.T) {
	scheduler := service.NewSchedulerService(time.UTC)

	id, err := scheduler.ScheduleDaily("18:00", func() {})
	require.NoError(t, err)
	require.NotZero(t, id)
}

func TestSchedulerService_ScheduleDaily_InvalidTime(t *testing.T) {
	scheduler := service.NewSchedulerService(time.UTC)

	for _, timeStr := range []string{"", "18", "24:00", "12:60", "noon", "18:00:00"} {
		_, err := scheduler.ScheduleDaily(timeStr, func() {})
		require.Error(t, err, "time %q should be rejected", timeStr)
	}
}

func TestSchedulerService_ScheduleInterval(t *testing.T) {
	scheduler := service.NewSchedulerService(time.UTC)

	id, err := scheduler.ScheduleInterval(12*time.Hour, func() {})
	require.NoError(t, err)
	require.NotZero(t, id)

	_, err = scheduler.ScheduleInterval(0, func() {})
	require.Error(t, err)
}

func TestSchedulerService_IntervalJobFires(t *testing.T) {
	scheduler := service.NewSchedulerService(time.UTC)

	fired := make(chan struct{}, 1)
	_, err := scheduler.ScheduleInterval(10*time.Millisecond, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	scheduler.Start()
	defer scheduler.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("interval job did not fire")
	}
}
