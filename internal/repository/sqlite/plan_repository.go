package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/samber/lo"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

type planRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository implementation
func NewPlanRepository(db *sql.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Get(ctx context.Context, userID int64) (*models.LearningPlan, error) {
	log := logger.FromContext(ctx).WithPrefix("plan_repo")
	log.Debug("getting learning plan: user_id=%d", userID)

	var p models.LearningPlan
	err := r.db.QueryRowContext(ctx, `
SELECT userId, defaultDailyGoal, learningQueue, dailyGoalOverrides
FROM LearningPlans
WHERE userId = ?
`, userID).Scan(&p.UserID, &p.DefaultDailyGoal, &p.LearningQueue, &p.DailyGoalOverrides)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no learning plan for user %d", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get learning plan: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *planRepository) Save(ctx context.Context, p models.LearningPlan) error {
	log := logger.FromContext(ctx).WithPrefix("plan_repo")
	log.Debug("saving learning plan: user_id=%d, goal=%d", p.UserID, p.DefaultDailyGoal)

	stmt, args, err := sqlBuilder.Insert("LearningPlans").
		Options("OR REPLACE").
		Columns("userId", "defaultDailyGoal", "learningQueue", "dailyGoalOverrides").
		Values(p.UserID, p.DefaultDailyGoal, p.LearningQueue, p.DailyGoalOverrides).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		log.Error("failed to save learning plan: %v", err)
		return err
	}
	return nil
}

func (r *planRepository) RemoveFromQueue(ctx context.Context, userID, wordID int64) error {
	log := logger.FromContext(ctx).WithPrefix("plan_repo")
	log.Debug("removing word from queue: user_id=%d, word_id=%d", userID, wordID)

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		return removeFromQueue(ctx, tx, userID, wordID)
	})
	if err != nil {
		log.Error("failed to remove word from queue: %v", err)
	}
	return err
}

func (r *planRepository) AppendToQueue(ctx context.Context, userID int64, ids []int64) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("plan_repo")
	log.Debug("appending to queue: user_id=%d, count=%d", userID, len(ids))

	if len(ids) == 0 {
		return 0, nil
	}

	var added int
	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		var plan models.LearningPlan
		err := tx.QueryRowContext(ctx, `SELECT learningQueue FROM LearningPlans WHERE userId = ?`, userID).Scan(&plan.LearningQueue)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}

		queue, ok := plan.Queue()
		if !ok {
			log.Warn("learning queue for user %d is malformed, not modifying it", userID)
			return nil
		}
		fresh := lo.Without(lo.Uniq(ids), queue...)
		if len(fresh) == 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx, `UPDATE LearningPlans SET learningQueue = ? WHERE userId = ?`,
			models.EncodeQueue(append(queue, fresh...)), userID)
		if err == nil {
			added = len(fresh)
		}
		return err
	})
	if err != nil {
		log.Error("failed to append to queue: %v", err)
		return 0, err
	}
	log.Debug("appended %d ids to queue", added)
	return added, nil
}
