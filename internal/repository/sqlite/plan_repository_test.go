package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
	"github.com/wordspark/echo/internal/repository/sqlite"
	"github.com/wordspark/echo/internal/testutil"
)

type PlanRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.PlanRepository
}

func (s *PlanRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewPlanRepository(s.db)
}

func (s *PlanRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *PlanRepositorySuite) TestGet_Missing() {
	plan, err := s.repo.Get(context.Background(), 1)
	s.Assert().NoError(err)
	s.Assert().Nil(plan)
}

func (s *PlanRepositorySuite) TestSaveAndGet() {
	ctx := context.Background()

	queue := models.EncodeQueue([]int64{5, 6, 7})
	overrides := `{"2025-10-20":3}`
	s.Require().NoError(s.repo.Save(ctx, models.LearningPlan{
		UserID:             1,
		DefaultDailyGoal:   15,
		LearningQueue:      &queue,
		DailyGoalOverrides: &overrides,
	}))

	plan, err := s.repo.Get(ctx, 1)
	s.Require().NoError(err)
	s.Require().NotNil(plan)
	s.Assert().Equal(15, plan.DefaultDailyGoal)
	s.Assert().Equal(3, plan.GoalFor("2025-10-20"))
	got, ok := plan.Queue()
	s.Require().True(ok)
	s.Assert().Equal([]int64{5, 6, 7}, got)

	// Saving again replaces the row.
	s.Require().NoError(s.repo.Save(ctx, models.LearningPlan{UserID: 1, DefaultDailyGoal: 10}))
	plan, err = s.repo.Get(ctx, 1)
	s.Require().NoError(err)
	s.Assert().Equal(10, plan.DefaultDailyGoal)
	s.Assert().Nil(plan.LearningQueue)
}

func (s *PlanRepositorySuite) TestRemoveFromQueue() {
	ctx := context.Background()
	testutil.InsertPlan(s.T(), s.db, 1, 20, []int64{4, 8, 4, 9})

	s.Require().NoError(s.repo.RemoveFromQueue(ctx, 1, 4))

	plan, err := s.repo.Get(ctx, 1)
	s.Require().NoError(err)
	queue, ok := plan.Queue()
	s.Require().True(ok)
	s.Assert().Equal([]int64{8, 9}, queue)
}

func (s *PlanRepositorySuite) TestRemoveFromQueue_MalformedQueueUntouched() {
	ctx := context.Background()
	_, err := s.db.Exec(`INSERT INTO LearningPlans (userId, defaultDailyGoal, learningQueue) VALUES (1, 20, 'not json')`)
	s.Require().NoError(err)

	s.Require().NoError(s.repo.RemoveFromQueue(ctx, 1, 4))

	plan, err := s.repo.Get(ctx, 1)
	s.Require().NoError(err)
	s.Assert().Equal("not json", *plan.LearningQueue)
}

func (s *PlanRepositorySuite) TestRemoveFromQueue_NoPlan() {
	s.Assert().NoError(s.repo.RemoveFromQueue(context.Background(), 1, 4))
}

func (s *PlanRepositorySuite) TestAppendToQueue() {
	ctx := context.Background()
	testutil.InsertPlan(s.T(), s.db, 1, 20, []int64{1, 2})

	added, err := s.repo.AppendToQueue(ctx, 1, []int64{2, 3, 3, 4})
	s.Require().NoError(err)
	s.Assert().Equal(2, added)

	plan, err := s.repo.Get(ctx, 1)
	s.Require().NoError(err)
	queue, ok := plan.Queue()
	s.Require().True(ok)
	s.Assert().Equal([]int64{1, 2, 3, 4}, queue)
}

func (s *PlanRepositorySuite) TestAppendToQueue_NoPlan() {
	added, err := s.repo.AppendToQueue(context.Background(), 1, []int64{1})
	s.Assert().NoError(err)
	s.Assert().Equal(0, added)
}

func TestPlanRepositorySuite(t *testing.T) {
	suite.Run(t, new(PlanRepositorySuite))
}
