package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/alexanderramin/braindump/internal/compression"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/repository"
	"github.com/alexanderramin/braindump/internal/testutil"
)

type testServices struct {
	backend  *testutil.FakeBackend
	plan     PlanService
	tasks    TaskService
	schedule ScheduleService
	day      DayService
	nudges   NudgeService
	taskRepo *repository.SQLiteTaskRepo
	logs     *bytes.Buffer
}

func setupServices(t *testing.T, content string) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	backend := testutil.NewFakeBackend(content)
	logs := &bytes.Buffer{}
	observer := NewLogUseCaseObserver(logs)

	taskRepo := repository.NewSQLiteTaskRepo(database)
	dumpRepo := repository.NewSQLiteDumpRepo(database)
	kvRepo := repository.NewSQLiteKVRepo(database)
	day := NewDayService(kvRepo)

	return &testServices{
		backend:  backend,
		plan:     NewPlanService(compression.NewEngine(backend), dumpRepo, uow, "fake", time.Second, observer),
		tasks:    NewTaskService(taskRepo, uow, observer),
		schedule: NewScheduleService(taskRepo, domain.Preferences{}),
		day:      day,
		nudges:   NewNudgeService(taskRepo, day),
		taskRepo: taskRepo,
		logs:     logs,
	}
}

func capPtr(c domain.AICapacity) *domain.AICapacity { return &c }
